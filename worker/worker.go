// Package worker spawns the connection goroutines that actually drive
// HTTP traffic: one OS-pinned worker goroutine per configured thread,
// each owning a slice of the run's total connections.
package worker

import (
	"crypto/rand"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/loadgen/loaded/cos"
	"github.com/loadgen/loaded/engine"
	"github.com/loadgen/loaded/nlog"
	"github.com/loadgen/loaded/stats"
	"github.com/loadgen/loaded/stream"

	"golang.org/x/time/rate"
)

// CompletionKind distinguishes the two completion-condition shapes a run
// can be configured with.
type CompletionKind int

const (
	CompletionNone CompletionKind = iota
	CompletionNumRequests
	CompletionDuration
)

// CompletionCondition is the (possibly absent) condition that ends a run,
// already divvied down to one worker's share by the time a worker sees it;
// the worker splits a request count again across its own connections.
type CompletionCondition struct {
	Kind        CompletionKind
	NumRequests int64
	Duration    time.Duration
}

// EngineDescriptor carries everything needed to build a fresh engine
// instance for one connection — each connection gets its own engine so
// per-connection state (URI counters, entropy buffers) never crosses
// goroutine boundaries.
type EngineDescriptor struct {
	// Simple engine fields.
	SimpleMethod  string
	SimpleHeaders []engine.KeyValue
	SimpleBody    []byte

	// S3 engine fields.
	IsS3                    bool
	S3Bucket                string
	S3ObjPrefix             string
	S3PrefixFolderDepth     int
	S3NumObjsPerPrefix      int
	S3NumBranchesPerDepth   int
	S3ObjectSize            int
	S3ChecksumAlgo          stream.ChecksumAlgo
	S3TrafficPattern        engine.TrafficPattern
}

func (d EngineDescriptor) buildEngine(targetURL string) (engine.Engine, error) {
	if !d.IsS3 {
		return &engine.SimpleEngine{
			Method:  d.SimpleMethod,
			Headers: d.SimpleHeaders,
			Body:    d.SimpleBody,
		}, nil
	}

	buf := make([]byte, 128*1024)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("reading entropy buffer: %w", err)
	}

	uris := engine.NewUriProvider(targetURL, d.S3Bucket, d.S3ObjPrefix, d.S3PrefixFolderDepth, d.S3NumObjsPerPrefix, d.S3NumBranchesPerDepth)
	traffic := engine.NewTrafficStateMachine(d.S3TrafficPattern, uris)

	var supplier *stream.PerpetualByteStreamSupplier
	if d.S3ChecksumAlgo != "" {
		supplier = stream.NewPerpetualByteStreamSupplierWithChecksums(buf, 0, d.S3ObjectSize, []stream.ChecksumAlgo{d.S3ChecksumAlgo})
	} else {
		supplier = stream.NewPerpetualByteStreamSupplier(buf, 0, d.S3ObjectSize)
	}

	return engine.NewS3Engine(supplier, traffic, d.S3ObjectSize, d.S3ChecksumAlgo), nil
}

// Worker pins itself to one OS thread and runs numConnections connection
// goroutines against that thread's share of the target.
type Worker struct {
	WorkerID  int
	RunFlag   *atomic.Bool
	Stats     *stats.WorkerStats
	RateLimit *rate.Limiter
}

// WorkerInfo is what a worker reports back once every connection exits.
type WorkerInfo struct {
	WorkerID int
	RunInfos []ConnectionRunInfo
}

// Run pins the calling goroutine to its OS thread, then spawns
// numConnections connection goroutines against url, waits for all of
// them to finish, and returns their timing.
func (w *Worker) Run(desc EngineDescriptor, targetURL string, numConnections int, completion *CompletionCondition) (WorkerInfo, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	nlog.Infof("Running worker %d with %d connections", w.WorkerID, numConnections)

	barrier := NewBarrier(numConnections)

	perConnRequests := perConnectionCompletionCounts(completion, numConnections)

	var wg sync.WaitGroup
	runInfos := make([]ConnectionRunInfo, numConnections)
	errs := make([]error, numConnections)

	for i := 0; i < numConnections; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()

			localRun := &atomic.Bool{}
			localRun.Store(true)
			runFlag := NewRunFlag(w.RunFlag, localRun)

			hooks := w.buildHooks(i, runFlag, completion, perConnRequests)

			eng, err := desc.buildEngine(targetURL)
			if err != nil {
				errs[i] = err
				return
			}

			conn := &Connection{ID: i, RunFlag: runFlag, SetupBarrier: barrier, Hooks: hooks}
			info, err := conn.Run(eng, targetURL)
			if err != nil {
				errs[i] = err
				return
			}
			runInfos[i] = info
		}()
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return WorkerInfo{}, err
		}
	}

	nlog.Infof("Worker %d completed", w.WorkerID)
	return WorkerInfo{WorkerID: w.WorkerID, RunInfos: runInfos}, nil
}

func (w *Worker) buildHooks(connID int, runFlag RunFlag, completion *CompletionCondition, perConnRequests []int64) []ConnectionLifecycle {
	hooks := []ConnectionLifecycle{NewStatsCollectorHook(w.Stats)}

	if w.RateLimit != nil {
		hooks = append(hooks, NewRateLimitHook(w.RateLimit))
	}

	if completion != nil {
		switch completion.Kind {
		case CompletionNumRequests:
			hooks = append(hooks, NewRequestCountHook(runFlag, perConnRequests[connID]))
		case CompletionDuration:
			if connID == 0 {
				hooks = append(hooks, NewDurationHook(runFlag, completion.Duration))
			}
		}
	}

	return hooks
}

func perConnectionCompletionCounts(completion *CompletionCondition, numConnections int) []int64 {
	counts := make([]int64, numConnections)
	if completion == nil || completion.Kind != CompletionNumRequests {
		return counts
	}
	divvied := cos.Divvy(int(completion.NumRequests), numConnections)
	for i, n := range divvied {
		counts[i] = int64(n)
	}
	return counts
}
