package worker

import (
	"sync/atomic"
	"time"
)

// RequestCountHook ends one connection's run once it alone has issued
// its share of the run's total request budget. The budget is divvied up
// across connections before they start (see cos.Divvy), so each
// connection carries its own target and trips only its own local flag.
type RequestCountHook struct {
	NoopLifecycle
	runFlag        RunFlag
	issued         atomic.Int64
	targetRequests int64
}

// NewRequestCountHook builds a hook that stops its connection after
// targetRequests requests have been issued.
func NewRequestCountHook(runFlag RunFlag, targetRequests int64) *RequestCountHook {
	return &RequestCountHook{runFlag: runFlag, targetRequests: targetRequests}
}

func (h *RequestCountHook) ShouldIssueRequest() bool {
	n := h.issued.Add(1)
	if n > h.targetRequests {
		h.runFlag.StopLocal()
		return false
	}
	if n == h.targetRequests {
		h.runFlag.StopLocal()
	}
	return true
}

// DurationHook ends the entire run once a fixed duration has elapsed
// since setup completed. Only one connection per worker carries this
// hook (worker construction attaches it to connection 0 only), and it
// trips the flag every connection in the run shares.
type DurationHook struct {
	NoopLifecycle
	runFlag  RunFlag
	duration time.Duration
}

// NewDurationHook builds a hook that stops the run after duration has
// elapsed from the moment AfterSetup fires.
func NewDurationHook(runFlag RunFlag, duration time.Duration) *DurationHook {
	return &DurationHook{runFlag: runFlag, duration: duration}
}

func (h *DurationHook) AfterSetup() {
	go func() {
		time.Sleep(h.duration)
		h.runFlag.StopGlobal()
	}()
}
