package engine

import (
	"bytes"
	"io"
	"net/http"
)

// SimpleEngine reissues a single fixed request — method, headers, and an
// optional body — against the target URL every iteration. It is the
// engine for exercising any HTTP/1.1 server, not just an object store.
type SimpleEngine struct {
	Method  string
	Headers []KeyValue
	Body    []byte
}

// KeyValue is one header pair; a slice instead of a map preserves the
// operator's header ordering and allows repeated header names.
type KeyValue struct {
	Key   string
	Value string
}

func (e *SimpleEngine) Name() string { return "simple" }

func (e *SimpleEngine) Setup() error { return nil }

func (e *SimpleEngine) Request(req *http.Request) (int, error) {
	req.Method = e.Method
	for _, kv := range e.Headers {
		req.Header.Add(kv.Key, kv.Value)
	}
	if e.Body == nil {
		req.Body = http.NoBody
		req.ContentLength = 0
		return 0, nil
	}
	req.Body = io.NopCloser(bytes.NewReader(e.Body))
	req.ContentLength = int64(len(e.Body))
	return len(e.Body), nil
}

func (e *SimpleEngine) Response(resp *http.Response) (int, error) {
	return drain(resp.Body)
}

func (e *SimpleEngine) Cleanup() error { return nil }
