package colorconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type hexOptions struct {
	prependPound bool
}

// HexOption configures FormatHex and HslToHex.
type HexOption func(*hexOptions)

// WithPound controls whether the rendered hex string starts with '#'. The
// default is true.
func WithPound(prepend bool) HexOption {
	return func(o *hexOptions) {
		o.prependPound = prepend
	}
}

// ParseHex parses a 3 or 6 digit hex color, with or without a leading '#'.
// In the short form every digit is doubled, so "f80" is "ff8800".
func ParseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")

	var r, g, b string
	switch len(digits) {
	case 3:
		r = strings.Repeat(digits[0:1], 2)
		g = strings.Repeat(digits[1:2], 2)
		b = strings.Repeat(digits[2:3], 2)
	case 6:
		r = digits[0:2]
		g = digits[2:4]
		b = digits[4:6]
	default:
		return RGB{}, fmt.Errorf("%w: %q must have 3 or 6 hex digits", ErrInvalidFormat, hex)
	}

	var rgb RGB
	for _, ch := range []struct {
		digits string
		dst    *float64
	}{
		{r, &rgb.R},
		{g, &rgb.G},
		{b, &rgb.B},
	} {
		v, err := strconv.ParseUint(ch.digits, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q is not a hex color", ErrInvalidFormat, hex)
		}
		*ch.dst = float64(v)
	}

	return rgb, nil
}

// HexToHsl parses a hex color and converts it to HSL.
func HexToHsl(hex string) (HSL, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return RgbToHsl(rgb.R, rgb.G, rgb.B), nil
}

// FormatHex rounds each channel to the nearest integer and renders the
// color as lowercase hex, "#rrggbb" by default.
func FormatHex(rgb RGB, opts ...HexOption) (string, error) {
	o := hexOptions{prependPound: true}
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	if o.prependPound {
		sb.WriteByte('#')
	}

	for _, v := range []float64{rgb.R, rgb.G, rgb.B} {
		pair, err := hexPair(v)
		if err != nil {
			return "", err
		}
		sb.WriteString(pair)
	}

	return sb.String(), nil
}

// HslToHex converts HSL in display units to a hex string.
func HslToHex(h, s, l float64, opts ...HexOption) (string, error) {
	return FormatHex(HslToRgb(h, s, l), opts...)
}

func hexPair(v float64) (string, error) {
	rounded := math.Round(v)
	if math.IsNaN(rounded) || math.IsInf(rounded, 0) || rounded < 0 || rounded > math.MaxUint32 {
		return "", fmt.Errorf("%w: %v", ErrInvalidChannelValue, v)
	}

	digits := strconv.FormatInt(int64(rounded), 16)
	switch len(digits) {
	case 1:
		return "0" + digits, nil
	case 2:
		return digits, nil
	}
	return "", fmt.Errorf("%w: %v renders as %q", ErrInvalidChannelValue, v, digits)
}
