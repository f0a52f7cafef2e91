package colorconv

import (
	"image/color"
	"math"
)

// RGB holds red, green and blue on the 0-255 scale. Values produced by
// HslToRgb are not rounded.
type RGB struct {
	R float64
	G float64
	B float64
}

// Color rounds the channels into an opaque color.RGBA, clamping anything
// outside [0,255].
func (c RGB) Color() color.RGBA {
	return color.RGBA{
		R: toUint8(c.R),
		G: toUint8(c.G),
		B: toUint8(c.B),
		A: 0xFF,
	}
}

// RgbFromColor returns the 8-bit channels of c. Alpha is ignored.
func RgbFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{
		R: float64(n.R),
		G: float64(n.G),
		B: float64(n.B),
	}
}

func toUint8(v float64) uint8 {
	return uint8(math.Min(channelMax, math.Max(0, math.Round(v))))
}
