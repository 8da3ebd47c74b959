// Package cos provides small, dependency-light utilities shared by every
// package in loaded: integer apportionment, duration/byte formatting, and
// ID generation. It plays the same role AIStore's own cmn/cos package
// plays — a grab-bag of leaf helpers with no upward dependencies.
package cos

// Divvy splits toDivvy into numItems non-negative parts that differ by at
// most one, with the larger parts first. It is used to apportion connection
// counts across worker threads and request-count completion quotas across
// connections.
func Divvy(toDivvy, numItems int) []int {
	out := make([]int, numItems)
	if numItems == 0 {
		return out
	}
	base := toDivvy / numItems
	rem := toDivvy % numItems
	for i := range out {
		if i < rem {
			out[i] = base + 1
		} else {
			out[i] = base
		}
	}
	return out
}
