package tables

import (
	"errors"
	"fmt"
)

var (
	// ErrNoItems is returned when rolling a table with no rows.
	ErrNoItems = errors.New("table has no items")

	// ErrZeroWeight is returned when rolling a table whose rows cover no faces.
	ErrZeroWeight = errors.New("table items carry no weight")

	// ErrUnresolvedDie is returned when rolling a table whose header never
	// produced a die size.
	ErrUnresolvedDie = errors.New("table die size unresolved")

	// ErrDepthExceeded is returned when inline tables nest deeper than the
	// parser allows.
	ErrDepthExceeded = errors.New("inline table nested too deep")

	// ErrNoDie is returned when inline parsing finds no die marker.
	ErrNoDie = errors.New("no die marker found")

	// ErrBackwardsRange marks a row range whose end precedes its start.
	ErrBackwardsRange = errors.New("range ends before it starts")
)

// RangeError describes a row range that could not be turned into a weight.
type RangeError struct {
	Text string
	Err  error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bad range %q: %v", e.Text, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}
