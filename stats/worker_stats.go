package stats

import "sync"

// InstantStats is the subset of counters a progress display samples once
// per second: cumulative totals as of the moment they were read.
type InstantStats struct {
	RequestsIssued int64
	BytesWritten   int64
	BytesRead      int64
}

// Changed returns the delta between this snapshot and an earlier one,
// treating a decrease (a counter reset, which never happens here but
// mirrors the source implementation's defensive wraparound handling) as
// the full span since the prior sample.
func (s InstantStats) Changed(since InstantStats) InstantStats {
	return InstantStats{
		RequestsIssued: deltaOrWrapped(since.RequestsIssued, s.RequestsIssued),
		BytesWritten:   deltaOrWrapped(since.BytesWritten, s.BytesWritten),
		BytesRead:      deltaOrWrapped(since.BytesRead, s.BytesRead),
	}
}

func deltaOrWrapped(prev, curr int64) int64 {
	if curr >= prev {
		return curr - prev
	}
	return curr
}

// RunStats accumulates everything the final summary needs: per-status
// error counts and the two latency histograms.
type RunStats struct {
	Errors            map[int]int64
	RTTLatencyHist    *Histogram
	TTFBLatencyHist   *Histogram
}

// NewRunStats builds an empty RunStats with fresh histograms.
func NewRunStats() RunStats {
	return RunStats{
		Errors:          make(map[int]int64),
		RTTLatencyHist:  NewHistogram(HighestTrackableValueNs),
		TTFBLatencyHist: NewHistogram(HighestTrackableValueNs),
	}
}

// WorkerStats is the single stats block a worker's connections all write
// into, guarded by a RWMutex so the progress-sampling loop can read a
// consistent snapshot without pausing request traffic.
type WorkerStats struct {
	mu           sync.RWMutex
	InstantStats InstantStats
	RunStats     RunStats
}

// NewWorkerStats builds an empty WorkerStats.
func NewWorkerStats() *WorkerStats {
	return &WorkerStats{RunStats: NewRunStats()}
}

// RecordSuccess folds one successful request/response cycle into the
// stats: its RTT and TTFB latencies, and its request/response byte
// counts.
func (w *WorkerStats) RecordSuccess(rttNs, ttfbNs int64, bytesWritten, bytesRead int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.RunStats.RTTLatencyHist.Record(rttNs)
	_ = w.RunStats.TTFBLatencyHist.Record(ttfbNs)
	w.InstantStats.RequestsIssued++
	w.InstantStats.BytesWritten += int64(bytesWritten)
	w.InstantStats.BytesRead += int64(bytesRead)
}

// RecordError tallies one failed request by its HTTP status code.
func (w *WorkerStats) RecordError(statusCode int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.RunStats.Errors[statusCode]++
}

// Snapshot returns a copy of the current instant stats, safe to read
// without blocking writers for longer than the copy itself.
func (w *WorkerStats) Snapshot() InstantStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.InstantStats
}

// RunStatsCopy returns the accumulated error map and fresh histograms
// merged from the current ones, for aggregation across workers at the
// end of a run.
func (w *WorkerStats) RunStatsCopy() RunStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	errs := make(map[int]int64, len(w.RunStats.Errors))
	for k, v := range w.RunStats.Errors {
		errs[k] = v
	}
	rtt := NewHistogram(HighestTrackableValueNs)
	rtt.Merge(w.RunStats.RTTLatencyHist)
	ttfb := NewHistogram(HighestTrackableValueNs)
	ttfb.Merge(w.RunStats.TTFBLatencyHist)
	return RunStats{Errors: errs, RTTLatencyHist: rtt, TTFBLatencyHist: ttfb}
}
