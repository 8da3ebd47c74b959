package cli

import "testing"

func TestHeaderFlagsSetParsesKeyValue(t *testing.T) {
	var h headerFlags
	if err := h.Set("Content-Type=application/json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if len(h.values) != 1 || h.values[0].Key != "Content-Type" || h.values[0].Value != "application/json" {
		t.Fatalf("unexpected values: %+v", h.values)
	}
}

func TestHeaderFlagsSetRejectsMissingEquals(t *testing.T) {
	var h headerFlags
	if err := h.Set("not-a-header"); err == nil {
		t.Fatalf("expected error for header without '='")
	}
}

func TestHeaderFlagsSetAccumulates(t *testing.T) {
	var h headerFlags
	_ = h.Set("a=1")
	_ = h.Set("b=2")
	if len(h.values) != 2 {
		t.Fatalf("len(values) = %d, want 2", len(h.values))
	}
}

func TestNewSimpleCommandRejectsConflictingBodyFlags(t *testing.T) {
	run := &runFlags{url: "http://localhost", threads: 1, connections: 1, format: "pretty"}
	cmd := newSimpleCommand(run)
	cmd.SetArgs([]string{"--body", "hello", "--body-from-file", "/tmp/does-not-matter"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error when --body and --body-from-file are both set")
	}
}
