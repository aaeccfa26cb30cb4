package cpu

import (
	"image/color"
)

// ExpandColor expands a packed RRRGGGBB color into opaque RGBA.
// Only the upper two green bits contribute, so green tops out at 108.
func ExpandColor(v uint8) color.RGBA {
	return color.RGBA{
		R: 36 * ((v >> 5) & 0b111),
		G: 36 * ((v & 0b00011100) >> 3),
		B: 85 * (v & 0b11),
		A: 255,
	}
}
