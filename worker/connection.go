package worker

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/loadgen/loaded/engine"
	"github.com/loadgen/loaded/nlog"
)

// Connection owns one long-lived TCP socket and repeatedly issues HTTP/1.1
// requests over it, shaped by an Engine and gated by a chain of lifecycle
// hooks. It never migrates to another goroutine once started, and nothing
// inside it is safe for concurrent use by more than one goroutine.
type Connection struct {
	ID           int
	RunFlag      RunFlag
	SetupBarrier *Barrier
	Hooks        []ConnectionLifecycle
}

// ConnectionRunInfo brackets a connection's active request loop, used by
// the worker to derive overall run duration.
type ConnectionRunInfo struct {
	StartTime time.Time
	EndTime   time.Time
}

// Run drives the connection's request loop against targetURL using eng to
// build requests and consume responses, until the run flag clears.
func (c *Connection) Run(eng engine.Engine, targetURL string) (ConnectionRunInfo, error) {
	nlog.Infof("Starting %s engine (%d)", eng.Name(), c.ID)
	if err := eng.Setup(); err != nil {
		return ConnectionRunInfo{}, fmt.Errorf("engine setup: %w", err)
	}

	c.SetupBarrier.Wait()

	for _, h := range c.Hooks {
		h.AfterSetup()
	}

	u, err := url.Parse(targetURL)
	if err != nil {
		return ConnectionRunInfo{}, fmt.Errorf("parsing target url: %w", err)
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		if u.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}

	conn, err := net.Dial("tcp", net.JoinHostPort(host, port))
	if err != nil {
		return ConnectionRunInfo{}, fmt.Errorf("dialing %s: %w", targetURL, err)
	}
	defer conn.Close()
	reader := bufio.NewReader(conn)

	startTime := time.Now()

runLoop:
	for c.RunFlag.Load() {
		for _, h := range c.Hooks {
			if !h.ShouldIssueRequest() {
				continue runLoop
			}
		}

		req, err := http.NewRequest(http.MethodGet, targetURL, nil)
		if err != nil {
			return ConnectionRunInfo{}, fmt.Errorf("building request: %w", err)
		}
		req.Host = u.Host
		req.Header.Set("Host", u.Host)

		reqLen, err := eng.Request(req)
		if err != nil {
			return ConnectionRunInfo{}, fmt.Errorf("engine request: %w", err)
		}

		for _, h := range c.Hooks {
			h.BeforeRequest(req, reqLen)
		}

		if err := req.Write(conn); err != nil {
			return ConnectionRunInfo{}, fmt.Errorf("writing request: %w", err)
		}

		for _, h := range c.Hooks {
			h.AfterRequest()
		}

		resp, err := http.ReadResponse(reader, req)
		if err != nil {
			return ConnectionRunInfo{}, fmt.Errorf("reading response: %w", err)
		}

		respLen, err := eng.Response(resp)
		if err != nil {
			return ConnectionRunInfo{}, fmt.Errorf("engine response: %w", err)
		}
		resp.Body.Close()

		for _, h := range c.Hooks {
			h.AfterResponse(resp, respLen)
		}
	}

	endTime := time.Now()

	nlog.Infof("Cleaning up %s engine (%d)", eng.Name(), c.ID)
	if err := eng.Cleanup(); err != nil {
		return ConnectionRunInfo{}, fmt.Errorf("engine cleanup: %w", err)
	}

	return ConnectionRunInfo{StartTime: startTime, EndTime: endTime}, nil
}
