package worker

import (
	"net/http"
	"time"

	"github.com/loadgen/loaded/stats"
)

// StatsCollectorHook times each request/response round trip and folds the
// result into a worker's shared WorkerStats. It runs first in the hook
// chain so its timing brackets every other hook's work.
type StatsCollectorHook struct {
	NoopLifecycle
	stats *stats.WorkerStats

	reqSize int
	start   time.Time
	ttfb    time.Duration
}

// NewStatsCollectorHook builds a hook writing into the given stats block.
func NewStatsCollectorHook(s *stats.WorkerStats) *StatsCollectorHook {
	return &StatsCollectorHook{stats: s}
}

func (h *StatsCollectorHook) BeforeRequest(req *http.Request, reqSize int) {
	h.start = time.Now()
	h.reqSize = reqSize
}

func (h *StatsCollectorHook) AfterRequest() {
	h.ttfb = time.Since(h.start)
}

func (h *StatsCollectorHook) AfterResponse(resp *http.Response, respLen int) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		rtt := time.Since(h.start)
		h.stats.RecordSuccess(rtt.Nanoseconds(), h.ttfb.Nanoseconds(), h.reqSize, respLen)
		return
	}
	h.stats.RecordError(resp.StatusCode)
}
