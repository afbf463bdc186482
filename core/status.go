package core

import "errors"

// Status is the outcome taxonomy shared by store operations.
type Status int8

const (
	// StatusError the call was rejected, nothing changed
	StatusError Status = iota - 1
	// StatusOK the call succeeded unchanged
	StatusOK
	// StatusChanged the call succeeded but the content was altered (truncated)
	StatusChanged
	// StatusEmpty no data was available to satisfy a read
	StatusEmpty
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusError:
		return "Error"
	case StatusOK:
		return "Ok"
	case StatusChanged:
		return "Changed"
	case StatusEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

var (
	// ErrInvalidLevel is returned for a severity outside the valid range
	ErrInvalidLevel = errors.New("invalid severity level")
	// ErrEmpty is returned when a read finds nothing to return
	ErrEmpty = errors.New("log empty")
	// ErrNoSession is returned by a read when no read session is open
	ErrNoSession = errors.New("no read session open")
	// ErrInvalidAlphabet is returned for a digit alphabet that cannot form a radix
	ErrInvalidAlphabet = errors.New("invalid digit alphabet")
)

// StatusOf maps an error returned by a store operation back onto the
// status taxonomy. A nil error maps to StatusOK.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrEmpty):
		return StatusEmpty
	default:
		return StatusError
	}
}
