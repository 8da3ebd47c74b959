package cos

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// NewUUID returns a fresh UUIDv4 string, used as the default run seed and
// the default S3 object-key prefix when the operator supplies neither.
func NewUUID() string {
	return uuid.NewString()
}

var (
	userAgentOnce sync.Once
	userAgent     string
)

// UserAgent returns the process-wide user-agent string sent on every S3
// PUT, computed once and cached — mirroring the original's once-initialized
// user-agent composition, minus its /proc system-name lookup.
func UserAgent() string {
	userAgentOnce.Do(func() {
		userAgent = fmt.Sprintf("loaded/1.0 (%s; %s)", runtime.GOOS, runtime.Version())
	})
	return userAgent
}
