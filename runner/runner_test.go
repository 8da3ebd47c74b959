package runner

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/loadgen/loaded/worker"
)

func TestRunCompletesOnRequestCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := Config{
		URL:         srv.URL,
		Threads:     2,
		Connections: 2,
		NumRequests: 20,
		Engine:      worker.EngineDescriptor{SimpleMethod: http.MethodGet},
	}

	summary, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.TotalRequests != 20 {
		t.Fatalf("TotalRequests = %d, want 20", summary.TotalRequests)
	}
}

func TestRunReportsErrorsSeparatelyFromRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := Config{
		URL:         srv.URL,
		Threads:     1,
		Connections: 1,
		NumRequests: 5,
		Engine:      worker.EngineDescriptor{SimpleMethod: http.MethodGet},
	}

	summary, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.TotalRequests != 0 {
		t.Fatalf("TotalRequests = %d, want 0 (all requests errored)", summary.TotalRequests)
	}
	if summary.Errors[500] != 5 {
		t.Fatalf("Errors[500] = %d, want 5", summary.Errors[500])
	}
}

func TestRunValidatesConfigBeforeStarting(t *testing.T) {
	cfg := Config{URL: "http://localhost", Threads: 4, Connections: 1}
	if _, err := Run(cfg); err == nil {
		t.Fatalf("expected validation error for connections < threads")
	}
}
