package worker

import "sync/atomic"

// RunFlag is the pair of stop signals a connection's request loop checks
// every iteration: a run-wide flag any connection's DurationHook can
// trip to end the whole run, and a connection-local flag its own
// RequestCountHook trips once that connection alone has issued its share
// of requests. The loop keeps going only while both are still true.
type RunFlag struct {
	global *atomic.Bool
	local  *atomic.Bool
}

// NewRunFlag pairs a shared global flag with a connection's own local one.
func NewRunFlag(global, local *atomic.Bool) RunFlag {
	return RunFlag{global: global, local: local}
}

// Load reports whether the connection's request loop should keep running.
func (f RunFlag) Load() bool {
	return f.global.Load() && f.local.Load()
}

// StopLocal trips only this connection's local flag.
func (f RunFlag) StopLocal() {
	f.local.Store(false)
}

// StopGlobal trips the flag shared by every connection in the run.
func (f RunFlag) StopGlobal() {
	f.global.Store(false)
}
