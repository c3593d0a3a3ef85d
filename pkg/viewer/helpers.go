package viewer

import (
	"image/color"
	"math"
)

// circleColor spreads n circles evenly around the hue circle.
func circleColor(i, n int) color.NRGBA {
	c := HSVtoRGB(360*float64(i)/float64(max(n, 1)), 0.6, 1.0)
	c.A = 2 * circleAlpha

	return c
}

// HSVtoRGB maps h ∈ [0, 360), s, v ∈ [0,1] to an opaque colour
func HSVtoRGB(h, s, v float64) color.NRGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	case h < 360:
		r, g, b = c, 0, x
	default:
		r, g, b = 0, 0, 0
	}

	return color.NRGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}
