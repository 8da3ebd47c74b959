package engine

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/loadgen/loaded/cos"
	"github.com/loadgen/loaded/nlog"
	"github.com/loadgen/loaded/stream"
)

// S3Engine hand-crafts PUT and GET requests against an S3-compatible
// object store. It does not use any S3 SDK client: building requests by
// hand keeps full control over the payload stream and header set, and
// avoids a client's own buffering/retry behavior from masking the
// server's real latency.
type S3Engine struct {
	streams         *stream.PerpetualByteStreamSupplier
	traffic         *TrafficStateMachine
	payload         int
	checksum        stream.ChecksumAlgo
	hasCksum        bool
	lastTrafficKind string
}

// NewS3Engine builds an engine that reads payload bytes from streams and
// decides PUT/GET/URI via traffic. When checksum is non-empty, every PUT
// carries the corresponding checksum header alongside its body.
func NewS3Engine(streams *stream.PerpetualByteStreamSupplier, traffic *TrafficStateMachine, payloadLen int, checksum stream.ChecksumAlgo) *S3Engine {
	return &S3Engine{
		streams:  streams,
		traffic:  traffic,
		payload:  payloadLen,
		checksum: checksum,
		hasCksum: checksum != "",
	}
}

func (e *S3Engine) Name() string { return "s3" }

func (e *S3Engine) Setup() error { return nil }

func (e *S3Engine) Request(req *http.Request) (int, error) {
	state := e.traffic.Next()

	u, err := url.Parse(state.URI)
	if err != nil {
		return 0, err
	}
	req.URL = u
	req.Method = state.Method
	req.Header.Set("User-Agent", cos.UserAgent())
	e.lastTrafficKind = state.Method

	if state.Method == "GET" {
		req.Header.Set("Accept", "application/octet-stream")
		req.Body = http.NoBody
		req.ContentLength = 0
		return 0, nil
	}

	var body io.Reader
	if e.hasCksum {
		s, digest := e.streams.NewStreamWithChecksum(e.checksum)
		req.Header.Set(e.checksum.Header(), digest)
		body = s
	} else {
		body = e.streams.NewStream()
	}

	req.Body = io.NopCloser(body)
	req.ContentLength = int64(e.payload)
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Amz-Date", time.Now().UTC().Format("20060102T150405Z"))
	return e.payload, nil
}

func (e *S3Engine) Response(resp *http.Response) (int, error) {
	read, err := drain(resp.Body)
	if err != nil {
		return read, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 && e.lastTrafficKind == "GET" && read != e.payload {
		nlog.Warningf("unexpected object size %d, expected %d", read, e.payload)
	}
	return read, nil
}

func (e *S3Engine) Cleanup() error { return nil }
