// Package nlog is loaded's process-wide logger: leveled, timestamped,
// safe for concurrent use from every worker and connection goroutine.
// It is a deliberately small reduction of AIStore's cmn/nlog, which
// buffers and rotates full log files for a long-running cluster daemon;
// loaded is a short-lived CLI run, so this keeps only what that shape of
// tool needs — leveled writes to stderr (or to a writer installed with
// SetOutput) with no buffering/rotation machinery.
package nlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type severity int

const (
	sevInfo severity = iota
	sevWarn
	sevErr
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects all subsequent log lines; tests use this to capture
// output instead of writing to the real stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func logf(sev severity, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	ts := time.Now().Format("2006-01-02T15:04:05.000Z07:00")
	fmt.Fprintf(out, "%s %s %s\n", ts, sevTag(sev), fmt.Sprintf(format, args...))
}

func sevTag(sev severity) string {
	switch sev {
	case sevWarn:
		return "W"
	case sevErr:
		return "E"
	default:
		return "I"
	}
}

func Infof(format string, args ...any)    { logf(sevInfo, format, args...) }
func Warningf(format string, args ...any) { logf(sevWarn, format, args...) }
func Errorf(format string, args ...any)   { logf(sevErr, format, args...) }

func Infoln(args ...any)    { logf(sevInfo, "%s", fmt.Sprintln(args...)) }
func Warningln(args ...any) { logf(sevWarn, "%s", fmt.Sprintln(args...)) }
func Errorln(args ...any)   { logf(sevErr, "%s", fmt.Sprintln(args...)) }
