package worker

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestRateLimitHookThrottles(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(50), 1)
	h := NewRateLimitHook(limiter)

	start := time.Now()
	for i := 0; i < 3; i++ {
		h.ShouldIssueRequest()
	}
	elapsed := time.Since(start)

	// At 50/s with burst 1: the first call is admitted, the second waits
	// ~20ms for the next token and declines, the third is admitted, so the
	// three calls take at least ~20ms.
	if elapsed < 20*time.Millisecond {
		t.Fatalf("expected rate limiting to introduce delay, elapsed=%s", elapsed)
	}
}
