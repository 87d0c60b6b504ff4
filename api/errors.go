package api

import (
	"fmt"

	"github.com/dfirlabs/velocli/internal/errorsx"
)

// ErrEmptyResult returned when an operation that structurally requires at
// least one row received none.
const ErrEmptyResult = errorsx.String("unexpected empty result")

// ConfigError credential material could not be parsed.
type ConfigError struct {
	error
}

// Unwrap ...
func (t ConfigError) Unwrap() error {
	return t.error
}

// TransportError the session with the service could not be established.
type TransportError struct {
	error
}

// Unwrap ...
func (t TransportError) Unwrap() error {
	return t.error
}

// CallError the service rejected or aborted a call.
type CallError struct {
	error
}

// Unwrap ...
func (t CallError) Unwrap() error {
	return t.error
}

// DecodeError a row batch was not valid json.
type DecodeError struct {
	error
}

// Unwrap ...
func (t DecodeError) Unwrap() error {
	return t.error
}

// QueryFailure the service reported a failed query through the log
// stream. carries the full log text.
type QueryFailure struct {
	Log string
}

func (t QueryFailure) Error() string {
	return fmt.Sprintf("query failed: %s", t.Log)
}

// FlowFailure the flow's logs contained an error level entry.
type FlowFailure struct {
	ClientID string
	FlowID   string
}

func (t FlowFailure) Error() string {
	return fmt.Sprintf("flow %s/%s failed", t.ClientID, t.FlowID)
}
