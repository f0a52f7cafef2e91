package colorconv

const (
	hueDegrees = 360.0
	percent    = 100.0
	channelMax = 255.0
)

// normalizedHSL holds hue, saturation and lightness as fractions in [0,1].
// It only exists for the math and is never returned to callers.
type normalizedHSL struct {
	h, s, l float64
}

// toDisplay scales normalized values into degrees and percentages. h is in
// sextants (the raw hue from RgbToHsl) and may be negative.
func toDisplay(h, s, l float64) HSL {
	h *= 60
	if h < 0 {
		h += hueDegrees
	}

	return HSL{
		H: h,
		S: s * percent,
		L: l * percent,
	}
}

// normalize is the inverse of toDisplay.
func (c HSL) normalize() normalizedHSL {
	return normalizedHSL{
		h: c.H / hueDegrees,
		s: c.S / percent,
		l: c.L / percent,
	}
}
