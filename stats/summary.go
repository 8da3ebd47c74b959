package stats

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/loadgen/loaded/cos"
)

// LatencyStats is the rendered view of one histogram: the handful of
// moments and quantiles an operator actually looks at.
type LatencyStats struct {
	Mean  float64 `json:"mean"`
	Min   int64   `json:"min"`
	Max   int64   `json:"max"`
	P50   int64   `json:"p50"`
	P95   int64   `json:"p95"`
	P99   int64   `json:"p99"`
	P999  int64   `json:"p999"`
	P9999 int64   `json:"p9999"`
}

func newLatencyStats(h *Histogram) LatencyStats {
	return LatencyStats{
		Mean:  h.Mean(),
		Min:   h.Min(),
		Max:   h.Max(),
		P50:   h.ValueAtQuantile(0.50),
		P95:   h.ValueAtQuantile(0.95),
		P99:   h.ValueAtQuantile(0.99),
		P999:  h.ValueAtQuantile(0.999),
		P9999: h.ValueAtQuantile(0.9999),
	}
}

func (l LatencyStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mean: %s, Min: %s, Max: %s\n", cos.FormatDurationF64(l.Mean), cos.FormatDuration(uint64(l.Min)), cos.FormatDuration(uint64(l.Max)))
	fmt.Fprintf(&b, "p50: %s\n", cos.FormatDuration(uint64(l.P50)))
	fmt.Fprintf(&b, "p95: %s\n", cos.FormatDuration(uint64(l.P95)))
	fmt.Fprintf(&b, "p99: %s\n", cos.FormatDuration(uint64(l.P99)))
	fmt.Fprintf(&b, "p999: %s\n", cos.FormatDuration(uint64(l.P999)))
	fmt.Fprintf(&b, "p9999: %s\n", cos.FormatDuration(uint64(l.P9999)))
	return b.String()
}

// SummaryStats is the end-of-run report aggregated across every worker.
type SummaryStats struct {
	TotalRuntimeNs             int64         `json:"total_runtime_ns"`
	TotalBytesWritten          int64         `json:"total_bytes_written"`
	TotalBytesRead             int64         `json:"total_bytes_read"`
	TotalRequests              int64         `json:"total_requests"`
	MeanRequestsPerSecond      float64       `json:"mean_requests_per_second"`
	MeanBytesWrittenPerSecond  float64       `json:"mean_bytes_written_per_second"`
	MeanBytesReadPerSecond     float64       `json:"mean_bytes_read_per_second"`
	Errors                     map[int]int64 `json:"errors"`
	RoundTripTimeLatency       LatencyStats  `json:"round_trip_time_latency"`
	TimeToFirstByteLatency     LatencyStats  `json:"time_to_first_byte_latency"`
}

// NewSummaryStats builds the final report from a run's wall-clock runtime
// and the merged RunStats across all workers.
func NewSummaryStats(totalRuntimeNs, totalBytesWritten, totalBytesRead, totalRequests int64, run RunStats) SummaryStats {
	runtimeSec := float64(totalRuntimeNs) / 1e9

	var meanReqs, meanWritten, meanRead float64
	if runtimeSec > 0 {
		meanReqs = float64(totalRequests) / runtimeSec
		meanWritten = float64(totalBytesWritten) / runtimeSec
		meanRead = float64(totalBytesRead) / runtimeSec
	}

	return SummaryStats{
		TotalRuntimeNs:            totalRuntimeNs,
		TotalBytesWritten:         totalBytesWritten,
		TotalBytesRead:            totalBytesRead,
		TotalRequests:             totalRequests,
		MeanRequestsPerSecond:     meanReqs,
		MeanBytesWrittenPerSecond: meanWritten,
		MeanBytesReadPerSecond:    meanRead,
		Errors:                    run.Errors,
		RoundTripTimeLatency:      newLatencyStats(run.RTTLatencyHist),
		TimeToFirstByteLatency:    newLatencyStats(run.TTFBLatencyHist),
	}
}

func (s SummaryStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Runtime: %.3fs\n", float64(s.TotalRuntimeNs)/1e9)
	fmt.Fprintf(&b, "Total Requests: %d, Total Bytes Written: %s, Total Bytes Read: %s\n",
		s.TotalRequests, cos.FormatBytesPerSec(float64(s.TotalBytesWritten)), cos.FormatBytesPerSec(float64(s.TotalBytesRead)))
	fmt.Fprintf(&b, "Mean Requests/s: %.2f, Mean Bytes Written/s: %s, Mean Bytes Read/s: %s\n",
		s.MeanRequestsPerSecond, cos.FormatBytesPerSec(s.MeanBytesWrittenPerSecond), cos.FormatBytesPerSec(s.MeanBytesReadPerSecond))

	var totalErrors int64
	for _, v := range s.Errors {
		totalErrors += v
	}
	fmt.Fprintf(&b, "Errors: %d\n", totalErrors)
	if len(s.Errors) > 0 {
		codes := make([]int, 0, len(s.Errors))
		for k := range s.Errors {
			codes = append(codes, k)
		}
		sort.Ints(codes)
		for _, code := range codes {
			fmt.Fprintf(&b, "\t%d (%s): %d\n", code, http.StatusText(code), s.Errors[code])
		}
	}

	b.WriteString("Time to First Byte (TTFB) Latency Statistics:\n")
	b.WriteString(s.TimeToFirstByteLatency.String())
	b.WriteString("\n")
	b.WriteString("Round Trip Time (RTT) Latency Statistics:\n")
	b.WriteString(s.RoundTripTimeLatency.String())

	return b.String()
}
