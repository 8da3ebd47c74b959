package worker

import (
	"time"

	"golang.org/x/time/rate"
)

// RateLimitHook throttles a connection's request rate against a limiter
// shared by every connection of every worker in the run. Sharing one
// limiter for the whole run rather than one per connection keeps the
// aggregate rate accurate regardless of how load is spread across
// connections.
type RateLimitHook struct {
	NoopLifecycle
	limiter *rate.Limiter
}

// NewRateLimitHook wraps limiter for use in a connection's hook chain.
func NewRateLimitHook(limiter *rate.Limiter) *RateLimitHook {
	return &RateLimitHook{limiter: limiter}
}

// ShouldIssueRequest reserves the limiter's next slot. If it's available
// now, the request proceeds immediately; otherwise it gives the slot back,
// sleeps for the reported delay and declines this iteration, so the connection's run
// loop gets a chance to notice a cleared run flag before retrying rather
// than blocking through it.
func (h *RateLimitHook) ShouldIssueRequest() bool {
	reservation := h.limiter.Reserve()
	if !reservation.OK() {
		return false
	}
	delay := reservation.Delay()
	if delay <= 0 {
		return true
	}
	reservation.Cancel()
	time.Sleep(delay)
	return false
}
