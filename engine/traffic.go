package engine

// TrafficPattern selects which HTTP methods an S3 engine cycles through.
type TrafficPattern int

const (
	TrafficPut TrafficPattern = iota
	TrafficGet
	TrafficBoth
)

func (p TrafficPattern) String() string {
	switch p {
	case TrafficPut:
		return "put"
	case TrafficGet:
		return "get"
	case TrafficBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseTrafficPattern validates an operator-supplied traffic pattern name.
func ParseTrafficPattern(s string) (TrafficPattern, bool) {
	switch s {
	case "put":
		return TrafficPut, true
	case "get":
		return TrafficGet, true
	case "both":
		return TrafficBoth, true
	default:
		return 0, false
	}
}

// TrafficState is the request a TrafficStateMachine has decided to issue
// next: a method plus the URI it applies to.
type TrafficState struct {
	Method string
	URI    string
}

// TrafficStateMachine decides, request after request, whether to PUT or
// GET and against which URI. In Both mode it alternates PUT/GET pairs
// against the same object, so every GET targets an object the run just
// wrote — a run only ever GETs objects it created.
//
// Not safe for concurrent use; each connection owns one.
type TrafficStateMachine struct {
	pattern TrafficPattern
	uris    *UriProvider
	state   TrafficState
}

// NewTrafficStateMachine builds a machine that starts on PUT for Put and
// Both patterns (so Both always writes an object before reading it back),
// and on GET for the Get pattern.
func NewTrafficStateMachine(pattern TrafficPattern, uris *UriProvider) *TrafficStateMachine {
	var state TrafficState
	switch pattern {
	case TrafficGet:
		state = TrafficState{Method: "GET", URI: uris.Next()}
	default:
		state = TrafficState{Method: "PUT", URI: uris.Next()}
	}
	return &TrafficStateMachine{pattern: pattern, uris: uris, state: state}
}

// Next returns the state to issue now and advances the machine to the
// state that will be issued on the following call.
func (m *TrafficStateMachine) Next() TrafficState {
	var newState TrafficState
	switch m.pattern {
	case TrafficPut:
		newState = TrafficState{Method: "PUT", URI: m.uris.Next()}
	case TrafficGet:
		newState = TrafficState{Method: "GET", URI: m.uris.Next()}
	case TrafficBoth:
		if m.state.Method == "PUT" {
			newState = TrafficState{Method: "GET", URI: m.state.URI}
		} else {
			newState = TrafficState{Method: "PUT", URI: m.uris.Next()}
		}
	}
	current := m.state
	m.state = newState
	return current
}
