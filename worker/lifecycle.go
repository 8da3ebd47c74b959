package worker

import "net/http"

// ConnectionLifecycle hooks into a Connection's request loop at five
// fixed points:
//
//	                 after_setup
//	                      |
//	                      v
//	   +----> should_issue_request ----+
//	   |                               v
//	after_response               before_request
//	   ^                               |
//	   +--------- after_request <------+
//
// A Connection runs its hooks in a fixed order: StatsCollector, then
// RateLimit, then RequestsCompletion, then DurationCompletion. Embed
// NoopLifecycle to pick up no-op defaults for whichever hooks a type
// doesn't need to implement.
type ConnectionLifecycle interface {
	AfterSetup()
	ShouldIssueRequest() bool
	BeforeRequest(req *http.Request, reqSize int)
	AfterRequest()
	AfterResponse(resp *http.Response, respLen int)
}

// NoopLifecycle implements every ConnectionLifecycle method as a no-op;
// hooks embed it and override only the points they care about.
type NoopLifecycle struct{}

func (NoopLifecycle) AfterSetup()                                    {}
func (NoopLifecycle) ShouldIssueRequest() bool                        { return true }
func (NoopLifecycle) BeforeRequest(req *http.Request, reqSize int)    {}
func (NoopLifecycle) AfterRequest()                                   {}
func (NoopLifecycle) AfterResponse(resp *http.Response, respLen int)  {}
