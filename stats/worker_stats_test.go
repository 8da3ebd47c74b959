package stats

import "testing"

func TestWorkerStatsRecordSuccessAccumulates(t *testing.T) {
	w := NewWorkerStats()
	w.RecordSuccess(1_000_000, 500_000, 128, 256)
	w.RecordSuccess(2_000_000, 600_000, 128, 256)

	snap := w.Snapshot()
	if snap.RequestsIssued != 2 {
		t.Fatalf("RequestsIssued = %d, want 2", snap.RequestsIssued)
	}
	if snap.BytesWritten != 256 || snap.BytesRead != 512 {
		t.Fatalf("got bytes written=%d read=%d, want 256/512", snap.BytesWritten, snap.BytesRead)
	}

	run := w.RunStatsCopy()
	if run.RTTLatencyHist.TotalCount() != 2 {
		t.Fatalf("rtt hist count = %d, want 2", run.RTTLatencyHist.TotalCount())
	}
}

func TestWorkerStatsRecordErrorTalliesByStatus(t *testing.T) {
	w := NewWorkerStats()
	w.RecordError(500)
	w.RecordError(500)
	w.RecordError(503)

	run := w.RunStatsCopy()
	if run.Errors[500] != 2 || run.Errors[503] != 1 {
		t.Fatalf("got errors %+v, want {500:2, 503:1}", run.Errors)
	}
}

func TestInstantStatsChanged(t *testing.T) {
	prev := InstantStats{RequestsIssued: 10, BytesWritten: 100, BytesRead: 200}
	curr := InstantStats{RequestsIssued: 15, BytesWritten: 150, BytesRead: 250}

	delta := curr.Changed(prev)
	if delta.RequestsIssued != 5 || delta.BytesWritten != 50 || delta.BytesRead != 50 {
		t.Fatalf("got delta %+v, want {5,50,50}", delta)
	}
}

func TestRunStatsCopyIsIndependent(t *testing.T) {
	w := NewWorkerStats()
	w.RecordSuccess(1, 1, 1, 1)
	copy1 := w.RunStatsCopy()
	w.RecordSuccess(2, 2, 2, 2)
	if copy1.RTTLatencyHist.TotalCount() != 1 {
		t.Fatalf("expected snapshot to be unaffected by later writes")
	}
}
