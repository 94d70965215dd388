package spotlight

import "errors"

var (
	// ErrDegenerateGeometry is returned when no enclosing shape can be
	// solved, e.g. zero-width text on the edge path or collinear landmarks.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrInvalidTransition is returned when an event is not accepted in the
	// prompt's current state.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrConfigurationMissing is returned by Show when the layout lacks a
	// target or text rectangle.
	ErrConfigurationMissing = errors.New("configuration missing")
)
