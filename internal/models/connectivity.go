package models

import "strconv"

// ConnectivityResult is the outcome of one upstream probe. Reachable means a
// server answered at all; the status code is recorded but not interpreted.
type ConnectivityResult struct {
	Reachable  bool   `json:"connected"`
	StatusCode int    `json:"status,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Detail returns the status code, the transport error or the reason the probe was skipped.
func (r ConnectivityResult) Detail() string {
	switch {
	case r.Reachable:
		return strconv.Itoa(r.StatusCode)
	case r.Error != "":
		return r.Error
	default:
		return r.Reason
	}
}
