package pricefeed_errors

import (
	"fmt"
)

// ErrInvalidArgument is returned when a request carries a ticker or date
// the query surface does not accept.
type ErrInvalidArgument struct {
	Field   string
	Message string
}

func (e ErrInvalidArgument) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

type ErrNotFound struct {
	Ticker string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("No prices found for ticker '%s'", e.Ticker)
}

// ErrNetwork covers transport failures and non-2xx responses from the
// upstream price source. StatusCode is 0 when no response was received.
type ErrNetwork struct {
	Ticker     string
	StatusCode int
	Err        error
}

func (e ErrNetwork) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("index price request for %s failed with status %d: %v", e.Ticker, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("index price request for %s failed: %v", e.Ticker, e.Err)
}

func (e ErrNetwork) Unwrap() error {
	return e.Err
}

type ErrParse struct {
	Ticker string
	Field  string
	Err    error
}

func (e ErrParse) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("could not parse %s from index price response for %s: %v", e.Field, e.Ticker, e.Err)
	}
	return fmt.Sprintf("could not parse index price response for %s: %v", e.Ticker, e.Err)
}

func (e ErrParse) Unwrap() error {
	return e.Err
}

// ErrPersistence wraps any failure reading from or writing to the price store.
type ErrPersistence struct {
	Op  string
	Err error
}

func (e ErrPersistence) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e ErrPersistence) Unwrap() error {
	return e.Err
}
