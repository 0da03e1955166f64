package domain

import (
	"errors"
	"fmt"
)

// ErrZeroTotalWeight is returned when the combined empty and loaded weight
// is zero, leaving the centre of gravity undefined.
var ErrZeroTotalWeight = errors.New("total weight is zero; centre of gravity is undefined")

// ErrUnknownAircraft is returned when no profile exists for a registration.
var ErrUnknownAircraft = errors.New("unknown aircraft registration")

// ValidationError reports a load sheet that cannot be reconciled with the
// selected aircraft profile.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid load sheet: %s: %s", e.Field, e.Reason)
}

// RenderError reports a failure to produce the output artifact.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
