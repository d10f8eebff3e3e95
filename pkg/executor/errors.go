package executor

import (
	"fmt"
	"strings"
)

// Kind classifies how a call failed.
type Kind int

const (
	// KindTransport covers failures before any HTTP response existed:
	// unreachable host, timeout, canceled context.
	KindTransport Kind = iota + 1
	// KindHTTP covers non-2xx replies that carried no SOAP fault.
	KindHTTP
	// KindFault covers SOAP faults, whatever HTTP status delivered them.
	KindFault
	// KindStatus covers well-formed responses whose application status
	// code signals failure.
	KindStatus
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	case KindFault:
		return "fault"
	case KindStatus:
		return "status"
	}
	return "unknown"
}

// maxSnippetSize bounds the envelope excerpt attached to errors.
const maxSnippetSize = 2000

// OpError is the failure of one executed operation, carrying enough
// context to diagnose it without replaying the call.
type OpError struct {
	Kind       Kind
	Operation  string
	Service    string
	URL        string
	SOAPAction string
	Message    string

	// StatusCode is set for KindStatus failures.
	StatusCode *int
	// FaultCode is set for KindFault failures.
	FaultCode string
	// HTTPStatus is set when an HTTP response existed.
	HTTPStatus int
	// Snippet is a truncated excerpt of the request envelope.
	Snippet string

	Err error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s error", e.Operation, e.Service, e.Kind)
	if e.StatusCode != nil {
		fmt.Fprintf(&b, " (status %d)", *e.StatusCode)
	}
	if e.FaultCode != "" {
		fmt.Fprintf(&b, " (%s)", e.FaultCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *OpError) Unwrap() error { return e.Err }

// invalidSessionMarkers are the phrasings the remote side uses when a
// token has expired or been logged out elsewhere.
var invalidSessionMarkers = []string{
	"invalid session",
	"session is invalid",
	"session expired",
	"not logged in",
}

// isInvalidSession reports whether a fault or status message means the
// session token is no longer accepted.
func isInvalidSession(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range invalidSessionMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
