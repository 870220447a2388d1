package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying failures with errors.Is.
var (
	ErrAuth       = errors.New("authentication error")
	ErrFetch      = errors.New("fetch error")
	ErrSave       = errors.New("save error")
	ErrValidation = errors.New("validation error")
)

// AuthError reports a failed login: bad credentials, a missing token in
// the response, or a transport failure reaching the login endpoint.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

func (e *AuthError) Is(target error) bool { return target == ErrAuth }

// FetchError reports a failed list or search call. Status is 0 when the
// request never produced an HTTP response (transport failure); Err then
// carries the underlying cause.
type FetchError struct {
	Status  int
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

func (e *FetchError) Unwrap() error { return e.Err }

// Transport reports whether the failure happened before any HTTP
// response was received.
func (e *FetchError) Transport() bool { return e.Status == 0 }

// SaveError reports a failed create or update call.
type SaveError struct {
	Status  int
	Message string
	Err     error
}

func (e *SaveError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *SaveError) Is(target error) bool { return target == ErrSave }

func (e *SaveError) Unwrap() error { return e.Err }

// ValidationError reports a local pre-submit rejection: required fields
// missing or malformed. It never involves the network.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid supplier data"
	}
	return fmt.Sprintf("invalid supplier data: check %v", e.Fields)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
