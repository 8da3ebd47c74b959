package worker

import (
	"sync/atomic"
	"testing"
)

func TestRunFlagLoadRequiresBoth(t *testing.T) {
	global := &atomic.Bool{}
	local := &atomic.Bool{}
	global.Store(true)
	local.Store(true)

	f := NewRunFlag(global, local)
	if !f.Load() {
		t.Fatalf("expected Load() true when both flags are true")
	}

	f.StopLocal()
	if f.Load() {
		t.Fatalf("expected Load() false after StopLocal()")
	}

	local.Store(true)
	f.StopGlobal()
	if f.Load() {
		t.Fatalf("expected Load() false after StopGlobal()")
	}
}

func TestRunFlagStopGlobalAffectsSharedFlag(t *testing.T) {
	global := &atomic.Bool{}
	global.Store(true)
	local1 := &atomic.Bool{}
	local1.Store(true)
	local2 := &atomic.Bool{}
	local2.Store(true)

	f1 := NewRunFlag(global, local1)
	f2 := NewRunFlag(global, local2)

	f1.StopGlobal()
	if f2.Load() {
		t.Fatalf("expected stopping global flag to affect every connection sharing it")
	}
}
