package engine

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/loadgen/loaded/nlog"
	"github.com/loadgen/loaded/stream"
)

func newTestS3Engine(pattern TrafficPattern, checksum stream.ChecksumAlgo) *S3Engine {
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = byte(i % 256)
	}
	streams := stream.NewPerpetualByteStreamSupplier(buf, 0, 128)
	uris := NewUriProvider("http://127.0.0.1:9000", "bucket", "obj", 0, 1000, 0)
	traffic := NewTrafficStateMachine(pattern, uris)
	return NewS3Engine(streams, traffic, 128, checksum)
}

func TestS3EnginePutSetsBodyAndLength(t *testing.T) {
	e := newTestS3Engine(TrafficPut, "")
	req := &http.Request{Header: http.Header{}}

	n, err := e.Request(req)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if n != 128 || req.ContentLength != 128 {
		t.Fatalf("got bodyLen=%d contentLength=%d, want 128", n, req.ContentLength)
	}
	if req.Method != "PUT" {
		t.Fatalf("Method = %q, want PUT", req.Method)
	}
	if req.Header.Get("Content-Type") != "application/octet-stream" {
		t.Fatalf("missing Content-Type header")
	}
	if req.Header.Get("X-Amz-Date") == "" {
		t.Fatalf("missing X-Amz-Date header")
	}
}

func TestS3EngineGetHasNoBody(t *testing.T) {
	e := newTestS3Engine(TrafficGet, "")
	req := &http.Request{Header: http.Header{}}

	n, err := e.Request(req)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if n != 0 || req.ContentLength != 0 {
		t.Fatalf("got bodyLen=%d contentLength=%d, want 0", n, req.ContentLength)
	}
	if req.Body != http.NoBody {
		t.Fatalf("expected http.NoBody for GET")
	}
	if req.Header.Get("Accept") != "application/octet-stream" {
		t.Fatalf("missing Accept header")
	}
}

func TestS3EngineResponseWarnsOnShortGet(t *testing.T) {
	e := newTestS3Engine(TrafficGet, "")
	req := &http.Request{Header: http.Header{}}
	if _, err := e.Request(req); err != nil {
		t.Fatalf("Request: %v", err)
	}

	var logs bytes.Buffer
	nlog.SetOutput(&logs)
	defer nlog.SetOutput(os.Stderr)

	resp := &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader("short"))}
	n, err := e.Response(resp)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}
	if n != len("short") {
		t.Fatalf("bytes read = %d, want %d", n, len("short"))
	}
	if !strings.Contains(logs.String(), "unexpected object size") {
		t.Fatalf("expected a size-mismatch warning, got log output %q", logs.String())
	}
}

func TestS3EngineResponseSkipsCheckOnPut(t *testing.T) {
	e := newTestS3Engine(TrafficPut, "")
	req := &http.Request{Header: http.Header{}}
	if _, err := e.Request(req); err != nil {
		t.Fatalf("Request: %v", err)
	}

	var logs bytes.Buffer
	nlog.SetOutput(&logs)
	defer nlog.SetOutput(os.Stderr)

	resp := &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(""))}
	if _, err := e.Response(resp); err != nil {
		t.Fatalf("Response: %v", err)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no size warning for a PUT, got log output %q", logs.String())
	}
}

func TestS3EnginePutWithChecksumSetsHeader(t *testing.T) {
	e := newTestS3Engine(TrafficPut, stream.ChecksumCRC32C)
	req := &http.Request{Header: http.Header{}}

	if _, err := e.Request(req); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if req.Header.Get("x-amz-checksum-crc32c") == "" {
		t.Fatalf("expected checksum header to be set")
	}
}

func TestS3EngineName(t *testing.T) {
	e := newTestS3Engine(TrafficPut, "")
	if e.Name() != "s3" {
		t.Fatalf("Name() = %q, want s3", e.Name())
	}
}
