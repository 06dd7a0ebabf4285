package cloud

import (
	"errors"
	"fmt"
)

// Kind is the error-kind enumeration for failed API invocations.
//
// The kind is computed exactly once at the API boundary; downstream code
// switches on it and never re-inspects provider error strings.
type Kind int

const (
	// KindUnknown covers failures no other kind matches.
	KindUnknown Kind = iota

	// KindAccessDenied indicates the caller lacks permission.
	KindAccessDenied

	// KindNotSubscribed indicates the service is unavailable for this
	// account or region (opt-in required, unsupported operation).
	KindNotSubscribed

	// KindThrottled indicates the request was rate limited.
	KindThrottled

	// KindValidation indicates a malformed request or an unexpectedly
	// required parameter, usually a catalog heuristic gap.
	KindValidation

	// KindTransport indicates a network or connection failure.
	KindTransport
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindAccessDenied:
		return "access_denied"
	case KindNotSubscribed:
		return "not_subscribed"
	case KindThrottled:
		return "throttled"
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// APIError is the tagged result of a failed invocation.
type APIError struct {
	// Service, Region, Operation identify the call that failed.
	Service   string
	Region    string
	Operation string

	// Code is the provider error code, when one was returned.
	Code string

	// Message is the provider error message.
	Message string

	// Kind is the classified error kind.
	Kind Kind
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s %s: %s: %s", e.Service, e.Region, e.Operation, e.Code, e.Message)
	}
	return fmt.Sprintf("%s %s %s: %s", e.Service, e.Region, e.Operation, e.Message)
}

// KindOf returns the classified kind of err, or KindUnknown for errors
// that did not originate at the API boundary.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsAccessDenied reports whether err classifies as a permission failure.
func IsAccessDenied(err error) bool {
	return KindOf(err) == KindAccessDenied
}

// IsNotSubscribed reports whether err classifies as service unavailability.
func IsNotSubscribed(err error) bool {
	return KindOf(err) == KindNotSubscribed
}

// IsThrottled reports whether err classifies as rate limiting.
func IsThrottled(err error) bool {
	return KindOf(err) == KindThrottled
}
