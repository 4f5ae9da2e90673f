package models

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuth is returned when credentials are missing or rejected.
	ErrAuth = errors.New("authentication failed")
	// ErrUpstream is returned on transport failures and malformed payloads.
	ErrUpstream = errors.New("upstream failure")
	// ErrModelNotFound is returned when a model isn't in the known set.
	ErrModelNotFound = errors.New("model not found")
	// ErrUnsupportedCapability is returned at startup when a backend can't serve
	// the selected injection strategy.
	ErrUnsupportedCapability = errors.New("unsupported capability")

	ErrTurnInProgress = errors.New("a turn is already in progress")
	ErrSessionStopped = errors.New("session is stopped")
)

// ErrFromStatus classifies a non-200 response from an upstream.
func ErrFromStatus(status int, body string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status: %v, body: %v", ErrAuth, status, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: status: %v, body: %v", ErrModelNotFound, status, body)
	default:
		return fmt.Errorf("%w: unexpected status code: %v, body: %v", ErrUpstream, status, body)
	}
}

// UpstreamErr wraps err as an upstream failure, unless it's already classified.
func UpstreamErr(msg string, err error) error {
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrUpstream) || errors.Is(err, ErrModelNotFound) {
		return fmt.Errorf("%v: %w", msg, err)
	}
	return fmt.Errorf("%v: %w: %w", msg, ErrUpstream, err)
}
