package colorconv

import "errors"

var (
	// ErrInvalidFormat is returned when a hex string is not 3 or 6 hex digits long
	// (ignoring a leading '#') or contains something other than a hex digit.
	ErrInvalidFormat = errors.New("invalid hex color format")

	// ErrInvalidChannelValue is returned when a channel does not render as one or two hex digits.
	ErrInvalidChannelValue = errors.New("invalid color channel value")
)
