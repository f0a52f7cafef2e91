package colorconv

import (
	"fmt"
	"math"
)

// HSL is a color in display units: hue in degrees [0,360), saturation and
// lightness in percent [0,100].
type HSL struct {
	H float64
	S float64
	L float64
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.2f, %.2f%%, %.2f%%)", c.H, c.S, c.L)
}

// RgbToHsl converts channels on the 0-255 scale to HSL.
func RgbToHsl(r, g, b float64) HSL {
	red := r / channelMax
	green := g / channelMax
	blue := b / channelMax

	max := math.Max(red, math.Max(green, blue))
	min := math.Min(red, math.Min(green, blue))

	var h, s float64
	l := (max + min) / 2

	if max == min {
		// greyscale, hue and saturation stay 0
		return toDisplay(h, s, l)
	}

	delta := max - min
	if l < 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2 - max - min)
	}

	// ties resolve in R, G, B order
	if red == max {
		h = (green - blue) / delta
	} else if green == max {
		h = (blue-red)/delta + 2
	} else {
		h = (red-green)/delta + 4
	}

	return toDisplay(h, s, l)
}

// HslToRgb converts HSL in display units to channels on the 0-255 scale.
// The channels are not rounded.
func HslToRgb(h, s, l float64) RGB {
	n := HSL{H: h, S: s, L: l}.normalize()

	if n.s == 0 {
		v := n.l * channelMax
		return RGB{R: v, G: v, B: v}
	}

	var temp2 float64
	if n.l < 0.5 {
		temp2 = n.l * (1 + n.s)
	} else {
		temp2 = n.l + n.s - n.s*n.l
	}
	temp1 := 2*n.l - temp2

	return RGB{
		R: channelMax * hueChannel(temp1, temp2, n.h+1.0/3.0),
		G: channelMax * hueChannel(temp1, temp2, n.h),
		B: channelMax * hueChannel(temp1, temp2, n.h-1.0/3.0),
	}
}

// hueChannel returns a single channel in [0,1] for a hue shifted by the
// channel's offset. hue is expected in [-1,2).
func hueChannel(temp1, temp2, hue float64) float64 {
	if hue < 0 {
		hue += 1
	}
	if hue > 1 {
		hue -= 1
	}

	switch {
	case 6*hue < 1:
		return temp1 + (temp2-temp1)*6*hue
	case 2*hue < 1:
		return temp2
	case 3*hue < 2:
		return temp1 + (temp2-temp1)*(2.0/3.0-hue)*6
	}
	return temp1
}
