// Package stats tracks per-worker throughput and latency and summarizes
// them across a run, the Go-native stand-in for the hdrhistogram-backed
// stats the source implementation keeps. No HDR histogram library turned
// up anywhere in the retrieved pack, so Histogram below is a reduced,
// stdlib-only log-linear bucketed histogram, hand-rolled the same way
// AIStore's own stats package (target_stats.go, proxy_stats.go) hand-rolls
// its metrics rather than reaching for a third-party stats library. See
// DESIGN.md.
package stats

import (
	"fmt"
	"math"
	"math/bits"
)

// HighestTrackableValueNs is the ceiling latency histograms track: one
// hour in nanoseconds, far beyond any sane single-request latency.
const HighestTrackableValueNs = 3600 * 1_000_000_000

// significantFigures fixes the histogram's relative precision to 3
// decimal digits, matching the source implementation's Histogram::new(3).
const significantFigures = 3

// Histogram is a log-linear bucketed latency histogram: values are
// grouped into buckets whose width doubles every subBucketCount entries,
// giving roughly constant relative error (~0.1% at 3 significant
// figures) across a wide dynamic range without the memory cost of a
// purely linear histogram. It records nanosecond-denominated int64
// values and is not safe for concurrent use — callers serialize access
// the way WorkerStats does, under its own RWMutex.
type Histogram struct {
	lowestTrackableValue        int64
	highestTrackableValue       int64
	unitMagnitude                int32
	subBucketHalfCountMagnitude  int32
	subBucketCount               int32
	subBucketHalfCount           int32
	subBucketMask                int64
	bucketCount                  int32
	counts                       []int64
	totalCount                   int64
	minValue                     int64
	maxValue                     int64
}

// NewHistogram builds a histogram tracking values in
// [1, highestTrackableValue] at 3 significant figures of precision.
func NewHistogram(highestTrackableValue int64) *Histogram {
	h := &Histogram{
		lowestTrackableValue:  1,
		highestTrackableValue: highestTrackableValue,
		minValue:              math.MaxInt64,
		maxValue:              0,
	}

	largestValueWithSingleUnitResolution := int64(2 * pow10(significantFigures))

	h.unitMagnitude = int32(math.Floor(math.Log2(float64(h.lowestTrackableValue))))

	subBucketCountMagnitude := int32(math.Ceil(math.Log2(float64(largestValueWithSingleUnitResolution))))
	if subBucketCountMagnitude < 1 {
		subBucketCountMagnitude = 1
	}
	h.subBucketHalfCountMagnitude = subBucketCountMagnitude - 1
	h.subBucketCount = 1 << uint(subBucketCountMagnitude)
	h.subBucketHalfCount = h.subBucketCount / 2
	h.subBucketMask = int64(h.subBucketCount-1) << uint(h.unitMagnitude)

	smallestUntrackableValue := int64(h.subBucketCount) << uint(h.unitMagnitude)
	bucketsNeeded := int32(1)
	for smallestUntrackableValue < highestTrackableValue {
		if smallestUntrackableValue > (math.MaxInt64 >> 1) {
			bucketsNeeded++
			break
		}
		smallestUntrackableValue <<= 1
		bucketsNeeded++
	}
	h.bucketCount = bucketsNeeded

	countsLen := (h.bucketCount + 1) * (h.subBucketCount / 2)
	h.counts = make([]int64, countsLen)

	return h
}

func pow10(n int) int64 {
	r := int64(1)
	for i := 0; i < n; i++ {
		r *= 10
	}
	return r
}

// Record adds value (in nanoseconds) to the histogram.
func (h *Histogram) Record(value int64) error {
	if value < 0 {
		return fmt.Errorf("stats: negative value %d", value)
	}
	idx := h.countsIndexFor(value)
	if idx < 0 || int(idx) >= len(h.counts) {
		return fmt.Errorf("stats: value %d exceeds highest trackable value %d", value, h.highestTrackableValue)
	}
	h.counts[idx]++
	h.totalCount++
	if value < h.minValue {
		h.minValue = value
	}
	if value > h.maxValue {
		h.maxValue = value
	}
	return nil
}

func (h *Histogram) countsIndexFor(value int64) int32 {
	bucketIdx := h.bucketIndexOf(value)
	subBucketIdx := h.subBucketIndexOf(value, bucketIdx)
	bucketBaseIdx := (bucketIdx + 1) << uint(h.subBucketHalfCountMagnitude)
	return bucketBaseIdx + (subBucketIdx - h.subBucketHalfCount)
}

func (h *Histogram) bucketIndexOf(value int64) int32 {
	v := value | h.subBucketMask
	if v == 0 {
		return 0
	}
	pow2Ceiling := int32(64 - bits.LeadingZeros64(uint64(v)))
	return pow2Ceiling - h.unitMagnitude - (h.subBucketHalfCountMagnitude + 1)
}

func (h *Histogram) subBucketIndexOf(value int64, bucketIdx int32) int32 {
	return int32(value >> uint(bucketIdx+h.unitMagnitude))
}

// valueFromIndex returns the lowest value mapped into counts index idx.
func (h *Histogram) valueFromIndex(idx int32) int64 {
	bucketIdx := (idx >> uint(h.subBucketHalfCountMagnitude)) - 1
	subBucketIdx := (idx & (h.subBucketHalfCount - 1)) + h.subBucketHalfCount
	if bucketIdx < 0 {
		subBucketIdx -= h.subBucketHalfCount
		bucketIdx = 0
	}
	return int64(subBucketIdx) << uint(bucketIdx+h.unitMagnitude)
}

// TotalCount is the number of values recorded.
func (h *Histogram) TotalCount() int64 { return h.totalCount }

// Min is the smallest value recorded, or 0 if none have been.
func (h *Histogram) Min() int64 {
	if h.totalCount == 0 {
		return 0
	}
	return h.minValue
}

// Max is the largest value recorded.
func (h *Histogram) Max() int64 { return h.maxValue }

// Mean is the arithmetic mean of every value recorded, reconstructed from
// bucket counts rather than a running sum — consistent with the histogram
// only ever storing counts, never individual samples.
func (h *Histogram) Mean() float64 {
	if h.totalCount == 0 {
		return 0
	}
	var sum float64
	for i, c := range h.counts {
		if c == 0 {
			continue
		}
		sum += float64(c) * float64(h.valueFromIndex(int32(i)))
	}
	return sum / float64(h.totalCount)
}

// ValueAtQuantile returns the value at or below which the given fraction
// (0.0-1.0) of recorded values fall.
func (h *Histogram) ValueAtQuantile(q float64) int64 {
	if h.totalCount == 0 {
		return 0
	}
	if q > 1 {
		q = 1
	}
	if q < 0 {
		q = 0
	}
	target := int64(q*float64(h.totalCount) + 0.5)
	if target < 1 {
		target = 1
	}
	var cumulative int64
	for i, c := range h.counts {
		cumulative += c
		if cumulative >= target {
			return h.valueFromIndex(int32(i))
		}
	}
	return h.maxValue
}

// Merge folds other's recorded values into h. Both histograms must have
// been constructed with the same highestTrackableValue.
func (h *Histogram) Merge(other *Histogram) {
	if len(h.counts) != len(other.counts) {
		panic("stats: cannot merge histograms with different bucket layouts")
	}
	for i, c := range other.counts {
		h.counts[i] += c
	}
	h.totalCount += other.totalCount
	if other.totalCount == 0 {
		return
	}
	if other.minValue < h.minValue {
		h.minValue = other.minValue
	}
	if other.maxValue > h.maxValue {
		h.maxValue = other.maxValue
	}
}
