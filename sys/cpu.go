// Package sys reports host CPU information, reduced from AIStore's sys
// package to the one fact loaded needs: how many threads to default to.
package sys

import "runtime"

// NumCPU returns the number of logical CPUs usable by the process, the
// default for --threads when the operator does not override it. Unlike
// AIStore's sys.NumCPU, this does not probe cgroup/container quotas —
// that container-awareness exists to size a long-running cluster daemon's
// goroutine pools correctly, which is out of scope for a CLI whose thread
// count is always operator-overridable per run.
func NumCPU() int {
	return runtime.NumCPU()
}
