package runner

import "testing"

func validConfig() Config {
	return Config{URL: "http://localhost:9000", Threads: 2, Connections: 4}
}

func TestConfigValidateRejectsFewerConnectionsThanThreads(t *testing.T) {
	c := validConfig()
	c.Connections = 1
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error when connections < threads")
	}
}

func TestConfigValidateRejectsZeroThreads(t *testing.T) {
	c := validConfig()
	c.Threads = 0
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for zero threads")
	}
}

func TestConfigValidateRejectsBothCompletionConditions(t *testing.T) {
	c := validConfig()
	c.Duration = 1
	c.NumRequests = 1
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error when both duration and num-requests are set")
	}
}

func TestConfigValidateAcceptsValidConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("pretty"); err != nil || f != FormatPretty {
		t.Fatalf("ParseFormat(pretty) = (%v, %v)", f, err)
	}
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Fatalf("ParseFormat(json) = (%v, %v)", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
