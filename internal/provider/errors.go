package provider

import (
	"errors"
	"fmt"
)

// DefaultUpstreamMessage is used when the provider gives no readable reason.
const DefaultUpstreamMessage = "Cloudflare API request failed."

// UpstreamError means the provider answered and rejected the request.
type UpstreamError struct {
	// Status is the provider's HTTP status code.
	Status int
	// Message is the provider's own human-readable reason.
	Message string
	// RawBody is the decoded response body: json.RawMessage when the body was
	// JSON, a string otherwise, nil when empty.
	RawBody any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("cloudflare api error (status %d): %s", e.Status, e.Message)
}

// TransportError means no response was received (dial, TLS, timeout, cancel).
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Outcome tags the result of a gateway call.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeUpstream  Outcome = "upstream_error"
	OutcomeTransport Outcome = "transport_error"
	OutcomeInternal  Outcome = "internal_error"
)

// OutcomeOf classifies err into one of the Outcome tags.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return OutcomeUpstream
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return OutcomeTransport
	}
	return OutcomeInternal
}
