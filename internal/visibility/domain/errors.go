package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRunNotFound   = errors.New("analysis run not found")
	ErrNoRuns        = errors.New("no runs recorded for brand")
	ErrNoPreviousRun = errors.New("no previous run for brand")
)

// ValidationError rejects a malformed request before any external call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// OracleError is a transport-level or non-2xx failure from the
// text-completion oracle.
type OracleError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *OracleError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("oracle %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("oracle %s: %v", e.Op, e.Err)
}

func (e *OracleError) Unwrap() error { return e.Err }

// SchemaError marks an oracle response that arrived but did not match the
// JSON shape the caller asked for. Callers discard the sub-result.
type SchemaError struct {
	Op  string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("oracle %s: malformed response: %v", e.Op, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// PublishError is surfaced verbatim to the caller; a failed publish never
// invalidates the computed analysis.
type PublishError struct {
	Reason     string
	StatusCode int
	Err        error
}

func (e *PublishError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("publish failed: %s (status %d)", e.Reason, e.StatusCode)
	}
	return fmt.Sprintf("publish failed: %s", e.Reason)
}

func (e *PublishError) Unwrap() error { return e.Err }
