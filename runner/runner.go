package runner

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"

	"github.com/loadgen/loaded/cos"
	"github.com/loadgen/loaded/nlog"
	"github.com/loadgen/loaded/stats"
	"github.com/loadgen/loaded/worker"

	"golang.org/x/time/rate"
)

// Run drives one full load-generation run to completion: it starts the
// configured number of worker goroutines, blocks until they all finish
// (or the operator cuts the run short with SIGINT), and returns the
// aggregated summary.
func Run(cfg Config) (stats.SummaryStats, error) {
	if err := cfg.Validate(); err != nil {
		return stats.SummaryStats{}, err
	}

	runFlag := &atomic.Bool{}
	runFlag.Store(true)
	installSignalHandler(runFlag)

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit)
	}

	connCounts := cos.Divvy(cfg.Connections, cfg.Threads)
	completions := buildCompletionConditions(cfg)

	nlog.Infof("Starting %d workers", cfg.Threads)

	workerStats := make([]*stats.WorkerStats, cfg.Threads)
	infos := make([]worker.WorkerInfo, cfg.Threads)
	workerErrs := make([]error, cfg.Threads)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Threads; i++ {
		i := i
		ws := stats.NewWorkerStats()
		workerStats[i] = ws

		w := &worker.Worker{WorkerID: i, RunFlag: runFlag, Stats: ws, RateLimit: limiter}
		nlog.Infof("Starting worker %d", i)

		wg.Add(1)
		go func() {
			defer wg.Done()
			info, err := w.Run(cfg.Engine, cfg.URL, connCounts[i], completions[i])
			infos[i] = info
			workerErrs[i] = err
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	pollProgress(runFlag, done, workerStats)
	<-done

	succeeded := 0
	for i, err := range workerErrs {
		if err != nil {
			nlog.Errorf("worker %d failed: %v", i, err)
			continue
		}
		succeeded++
	}
	if succeeded == 0 {
		return stats.SummaryStats{}, fmt.Errorf("every worker thread failed")
	}

	totalReqs, totalWritten, totalRead := sumFinalStats(workerStats)
	totalRuntime := totalRuntime(infos)
	runStats := mergeRunStats(workerStats)

	return stats.NewSummaryStats(totalRuntime.Nanoseconds(), totalWritten, totalRead, totalReqs, runStats), nil
}

func installSignalHandler(runFlag *atomic.Bool) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		runFlag.Store(false)
	}()
}

func buildCompletionConditions(cfg Config) []*worker.CompletionCondition {
	conditions := make([]*worker.CompletionCondition, cfg.Threads)
	switch {
	case cfg.NumRequests > 0:
		counts := cos.Divvy(int(cfg.NumRequests), cfg.Threads)
		for i, n := range counts {
			conditions[i] = &worker.CompletionCondition{Kind: worker.CompletionNumRequests, NumRequests: int64(n)}
		}
	case cfg.Duration > 0:
		for i := range conditions {
			conditions[i] = &worker.CompletionCondition{Kind: worker.CompletionDuration, Duration: cfg.Duration}
		}
	}
	return conditions
}

// pollProgress prints one line per second summarizing throughput since the
// last sample, until every worker has finished or the run flag clears. It
// exists purely for operator feedback during a run; the final summary's
// totals come from sumFinalStats instead, since a run that completes
// inside the first second would otherwise never cross a tick.
func pollProgress(runFlag *atomic.Bool, done <-chan struct{}, workerStats []*stats.WorkerStats) {
	previous := make([]stats.InstantStats, len(workerStats))
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if !runFlag.Load() {
				return
			}
			var reqs, written, read int64
			for i, ws := range workerStats {
				curr := ws.Snapshot()
				delta := curr.Changed(previous[i])
				previous[i] = curr
				reqs += delta.RequestsIssued
				written += delta.BytesWritten
				read += delta.BytesRead
			}
			fmt.Printf("%d Req/s, Write/s: %s, Read/s: %s\n", reqs, cos.FormatBytesPerSec(float64(written)), cos.FormatBytesPerSec(float64(read)))
		}
	}
}

// sumFinalStats adds up each worker's final instant-stats snapshot,
// taken once every worker has exited, so the summary's totals are exact
// regardless of how many (if any) progress ticks the run lived through.
func sumFinalStats(workerStats []*stats.WorkerStats) (totalReqs, totalWritten, totalRead int64) {
	for _, ws := range workerStats {
		snap := ws.Snapshot()
		totalReqs += snap.RequestsIssued
		totalWritten += snap.BytesWritten
		totalRead += snap.BytesRead
	}
	return
}

func mergeRunStats(workerStats []*stats.WorkerStats) stats.RunStats {
	merged := stats.NewRunStats()
	for _, ws := range workerStats {
		run := ws.RunStatsCopy()
		merged.RTTLatencyHist.Merge(run.RTTLatencyHist)
		merged.TTFBLatencyHist.Merge(run.TTFBLatencyHist)
		for code, count := range run.Errors {
			merged.Errors[code] += count
		}
	}
	return merged
}

// totalRuntime spans the earliest connection start and the latest
// connection end across every worker, so a handful of slow-to-start
// connections don't shrink the reported runtime.
func totalRuntime(infos []worker.WorkerInfo) time.Duration {
	var earliest, latest time.Time
	for _, info := range infos {
		for _, run := range info.RunInfos {
			if earliest.IsZero() || run.StartTime.Before(earliest) {
				earliest = run.StartTime
			}
			if run.EndTime.After(latest) {
				latest = run.EndTime
			}
		}
	}
	if earliest.IsZero() || latest.Before(earliest) {
		return 0
	}
	return latest.Sub(earliest)
}
