// Package engine generates the HTTP requests a connection sends and
// consumes the responses it receives. Swapping engines changes the
// traffic shape a run produces without touching the worker/connection
// plumbing that drives it.
package engine

import (
	"io"
	"net/http"
)

// Engine builds requests and consumes responses for one connection.
// A Connection (see package worker) calls Setup once, then Request/Response
// once per iteration of its request loop, then Cleanup once when the run
// winds down. An Engine is owned by exactly one connection and is never
// called concurrently.
type Engine interface {
	// Name identifies the engine in logs.
	Name() string

	// Setup performs any work needed before the first request, such as
	// priming a payload stream.
	Setup() error

	// Request populates method, URL, headers and body on req for the next
	// iteration, and reports the number of bytes the request body will
	// carry (used for throughput accounting independent of what the wire
	// actually sends).
	Request(req *http.Request) (bodyLen int, err error)

	// Response drains resp's body and reports how many bytes were read.
	Response(resp *http.Response) (bytesRead int, err error)

	// Cleanup releases any resources Setup acquired.
	Cleanup() error
}

// drain reads b to completion and returns the number of bytes seen,
// discarding the content — engines only need the byte count for stats.
func drain(b io.Reader) (int, error) {
	n, err := io.Copy(io.Discard, b)
	return int(n), err
}
