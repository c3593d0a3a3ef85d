// Package circlex extracts circle coordinates from line-oriented SVG diagrams.
//
// Two kinds of lines are understood: <path> elements, whose bounding box is
// turned into an approximate circle, and circle-like elements carrying
// cx/cy/r attributes, which are collected into fixed-size groups according
// to a repeating stride of input lines.
package circlex

import (
	"fmt"
	"math"
)

// Circle is a single extracted circle.
type Circle struct {
	X float64 `json:"cx"`
	Y float64 `json:"cy"`
	R float64 `json:"r"`
}

// Circ is a shorthand for Circle{x, y, r}.
func Circ(x, y, r float64) Circle {
	return Circle{X: x, Y: y, R: r}
}

// CircleFromBounds approximates a circle from a bounding box.
// The radius is the average of half-width and half-height; this is not
// a fit, just what the diagrams need.
func CircleFromBounds(b Rect) Circle {
	return Circle{
		X: (b.MinX + b.MaxX) / 2,
		Y: (b.MinY + b.MaxY) / 2,
		R: (abs(b.MaxX-b.MinX) + abs(b.MaxY-b.MinY)) / 4,
	}
}

// Tag returns c as an SVG circle element with 4 decimal places.
func (c Circle) Tag() string {
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s"/>`, fixed4(c.X), fixed4(c.Y), fixed4(c.R))
}

// fixed4 is %.4f, spelling non-finite values nan, inf and -inf.
func fixed4(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return fmt.Sprintf("%.4f", v)
}

// Group is a set of circles collected from one stride of input lines.
type Group []Circle

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
