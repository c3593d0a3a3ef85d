package preview

import (
	"fmt"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"

	circlex "github.com/gucio321/circlex/pkg"
)

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n, err := e.w.Write(p)
	e.err = err

	return n, err
}

// WriteSVG writes every circle as an SVG document of canvas c at the given scale.
// svgo works in integer coordinates, so pick a scale that keeps small circles visible.
func WriteSVG(w io.Writer, c Canvas, circles []circlex.Circle, scale float64) error {
	ew := &errWriter{w: w}
	width, height := c.Pixels(scale)

	canvas := svgo.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+hex(background))
	canvas.Gstyle(fmt.Sprintf("fill:none;stroke-width:%g", strokeWidth))

	for i, circle := range circles {
		canvas.Circle(
			int(math.Round((circle.X-c.X)*scale)),
			int(math.Round((circle.Y-c.Y)*scale)),
			int(math.Round(math.Abs(circle.R)*scale)),
			"stroke:"+hex(ColorOf(i)),
		)
	}

	canvas.Gend()
	canvas.End()

	return ew.err
}

func hex(c interface{ RGBA() (r, g, b, a uint32) }) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
