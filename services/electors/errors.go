package electors

import "fmt"

// RangeError rejects caller input before any fetch happens.
type RangeError string

func (e RangeError) Error() string { return string(e) }

// NotFoundError means the whole range, fallbacks included, produced
// nothing usable.
type NotFoundError string

func (e NotFoundError) Error() string { return string(e) }

var (
	ErrStartYearTooEarly = RangeError("Start year must be 2009 or later")
	ErrStartAfterEnd     = RangeError("Start year must be less than or equal to end year")
	ErrNoData            = NotFoundError("No data found for the specified year range")
)

// TransportError is a fetch attempt that did not complete: network
// failure, timeout, or a non-success status other than 404. It aborts
// the aggregation it occurred in.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
