package cos

import (
	"fmt"
	"math"
)

// Duration unit thresholds, in nanoseconds.
//
// NOTE: HOUR is MINUTE*6, not MINUTE*60. This reproduces a bucketing
// oddity present in the original source this tool was distilled from and
// is left as-is rather than silently "fixed" — see DESIGN.md. It only
// affects which unit FormatDuration chooses to print in, not the
// histograms or any other measurement.
const (
	nsMicrosecond uint64 = 1000
	nsMillisecond        = nsMicrosecond * 1000
	nsSecond             = nsMillisecond * 1000
	nsMinute             = nsSecond * 60
	nsHour               = nsMinute * 6
	nsDay                = nsHour * 24
)

// FormatDuration renders a nanosecond duration using the largest unit in
// which the value is still >= 1, to three fractional digits; values under
// a microsecond are printed as whole nanoseconds.
func FormatDuration(nanos uint64) string {
	switch {
	case nanos < nsMicrosecond:
		return fmt.Sprintf("%dns", nanos)
	case nanos < nsMillisecond:
		return formatUnit(nanos, "us", nsMicrosecond)
	case nanos < nsSecond:
		return formatUnit(nanos, "ms", nsMillisecond)
	case nanos < nsMinute:
		return formatUnit(nanos, "s", nsSecond)
	case nanos < nsHour:
		return formatUnit(nanos, "m", nsMinute)
	case nanos < nsDay:
		return formatUnit(nanos, "h", nsHour)
	default:
		return formatUnit(nanos, "d", nsDay)
	}
}

func formatUnit(nanos uint64, unit string, factor uint64) string {
	whole := nanos / factor
	frac := uint64(float64(nanos%factor) / float64(factor) * 1000)
	return fmt.Sprintf("%d.%03d%s", whole, frac, unit)
}

// FormatDurationF64 is the floating-point counterpart used for histogram
// means, which are not integral nanosecond counts.
func FormatDurationF64(nanos float64) string {
	switch {
	case nanos < float64(nsMicrosecond):
		return fmt.Sprintf("%gns", nanos)
	case nanos < float64(nsMillisecond):
		return fmt.Sprintf("%.3fus", nanos/float64(nsMicrosecond))
	case nanos < float64(nsSecond):
		return fmt.Sprintf("%.3fms", nanos/float64(nsMillisecond))
	case nanos < float64(nsMinute):
		return fmt.Sprintf("%.3fs", nanos/float64(nsSecond))
	case nanos < float64(nsHour):
		return fmt.Sprintf("%.3fm", nanos/float64(nsMinute))
	case nanos < float64(nsDay):
		return fmt.Sprintf("%.3fh", nanos/float64(nsHour))
	default:
		return fmt.Sprintf("%.3fd", nanos/float64(nsDay))
	}
}

// FormatBytesPerSec renders a byte count with a binary (KiB/MiB/...) unit
// suffix, matching AIStore's own ByteSize-style progress-line output.
func FormatBytesPerSec(n float64) string {
	const unit = 1024.0
	if n < unit {
		return fmt.Sprintf("%.0fB", n)
	}
	div, exp := unit, 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB"}
	exp = int(math.Min(float64(exp), float64(len(suffixes)-1)))
	return fmt.Sprintf("%.2f%s", n/div, suffixes[exp])
}
