// Package preview renders extracted circles to images for a quick visual check.
package preview

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	circlex "github.com/gucio321/circlex/pkg"
)

var ErrNoCanvas = errors.New("document has no usable viewBox or size")

// Canvas is the user-space area a preview shows.
type Canvas struct {
	X, Y, W, H float64
}

// CanvasFromSVG reads the viewBox, or failing that width and height, of the
// document's root <svg> element.
func CanvasFromSVG(r io.Reader) (Canvas, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return Canvas{}, fmt.Errorf("reading document: %w", err)
	}

	root := doc.SelectElement("svg")
	if root == nil {
		return Canvas{}, fmt.Errorf("%w: no <svg> root", ErrNoCanvas)
	}

	if vb := root.SelectAttrValue("viewBox", ""); vb != "" {
		fields := strings.FieldsFunc(vb, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})

		if len(fields) == 4 {
			var v [4]float64
			ok := true
			for i, f := range fields {
				n, err := strconv.ParseFloat(f, 64)
				if err != nil {
					ok = false
					break
				}

				v[i] = n
			}

			if ok && v[2] > 0 && v[3] > 0 {
				return Canvas{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
			}
		}
	}

	w, errW := parseLength(root.SelectAttrValue("width", ""))
	h, errH := parseLength(root.SelectAttrValue("height", ""))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return Canvas{}, ErrNoCanvas
	}

	return Canvas{W: w, H: h}, nil
}

// parseLength accepts plain numbers and px lengths.
func parseLength(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
}

// CanvasFromCircles returns the smallest canvas showing every circle plus margin on each side.
func CanvasFromCircles(circles []circlex.Circle, margin float64) Canvas {
	if len(circles) == 0 {
		return Canvas{W: 1, H: 1}
	}

	box := circlex.EmptyRect()
	for _, c := range circles {
		r := math.Abs(c.R)
		box.AddPoint(c.X-r, c.Y-r)
		box.AddPoint(c.X+r, c.Y+r)
	}

	return Canvas{
		X: box.MinX - margin,
		Y: box.MinY - margin,
		W: box.MaxX - box.MinX + 2*margin,
		H: box.MaxY - box.MinY + 2*margin,
	}
}

// Pixels returns the image size of c at the given scale, at least 1x1.
func (c Canvas) Pixels(scale float64) (w, h int) {
	return max(1, int(math.Ceil(c.W*scale))), max(1, int(math.Ceil(c.H*scale)))
}
