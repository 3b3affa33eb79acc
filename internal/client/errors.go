package client

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed is matched by every error the client returns: transport
	// failures, non-2xx statuses and undecodable list bodies alike.
	ErrRequestFailed = errors.New("client: request failed")
	// ErrDecode marks a 2xx response whose body could not be decoded.
	ErrDecode = errors.New("client: undecodable response")
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("client: %s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

// Is makes StatusError match ErrRequestFailed.
func (e *StatusError) Is(target error) bool {
	return target == ErrRequestFailed
}
