package services

import (
	"fmt"
	"net/http"
)

// UpstreamOutcome tags what the gateway should do with an upstream answer.
type UpstreamOutcome int

const (
	// UpstreamFallthrough means the upstream could not give a usable answer
	// (not reachable, transport error, unexpected status, unreadable body).
	UpstreamFallthrough UpstreamOutcome = iota
	// UpstreamFound means a 2xx whose body is a JSON object.
	UpstreamFound
	// UpstreamMissing means the upstream answered 404.
	UpstreamMissing
)

func (o UpstreamOutcome) String() string {
	switch o {
	case UpstreamFound:
		return "found"
	case UpstreamMissing:
		return "missing"
	default:
		return "fallthrough"
	}
}

// UpstreamResult is the tagged outcome of a single upstream call.
type UpstreamResult struct {
	Outcome    UpstreamOutcome
	StatusCode int
	Err        error
}

func found(statusCode int) UpstreamResult {
	return UpstreamResult{Outcome: UpstreamFound, StatusCode: statusCode}
}

func missing() UpstreamResult {
	return UpstreamResult{Outcome: UpstreamMissing, StatusCode: http.StatusNotFound}
}

func fallthroughOn(statusCode int, err error) UpstreamResult {
	return UpstreamResult{Outcome: UpstreamFallthrough, StatusCode: statusCode, Err: err}
}

// Reason describes why a fallthrough happened, for logs.
func (r UpstreamResult) Reason() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case r.StatusCode != 0:
		return fmt.Sprintf("upstream returned status %d", r.StatusCode)
	default:
		return r.Outcome.String()
	}
}
