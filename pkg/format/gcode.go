package format

import (
	"fmt"
	"io"
	"math"

	"github.com/kpango/glg"

	circlex "github.com/gucio321/circlex/pkg"
	"github.com/gucio321/circlex/pkg/gcb"
)

var _ Sink = &gcodeSink{}

// plotMargin keeps circles off the edge of the work area.
const plotMargin = 1.0

// gcodeSink plots every circle once input is complete. The drawing is moved
// so that its top-left extent sits plotMargin away from the work area origin.
type gcodeSink struct {
	w       io.Writer
	opts    Options
	circles []circlex.Circle
}

func (s *gcodeSink) PathCircle(c circlex.Circle) error {
	s.circles = append(s.circles, c)
	return nil
}

func (s *gcodeSink) Group(g circlex.Group) error {
	s.circles = append(s.circles, g...)
	return nil
}

func (s *gcodeSink) Close() error {
	builder, err := Plot(s.circles, s.opts.Scale)
	if err != nil {
		return err
	}

	_, err = io.WriteString(s.w, builder.Code(s.opts.LineComments))

	return err
}

// Plot builds GCode drawing every circle, scaled by scale.
func Plot(circles []circlex.Circle, scale float64) (*gcb.GCodeBuilder, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %f", scale)
	}

	minX, minY := math.Inf(1), math.Inf(1)
	for _, c := range circles {
		minX = math.Min(minX, c.X-math.Abs(c.R))
		minY = math.Min(minY, c.Y-math.Abs(c.R))
	}

	builder := gcb.NewGCodeBuilder()
	builder.Commentf("%d circles, scale %f", len(circles), scale)

	for i, c := range circles {
		center := gcb.BetterPt(
			gcb.AbsolutePos((c.X-minX)*scale+plotMargin),
			gcb.AbsolutePos((c.Y-minY)*scale+plotMargin),
		)

		if err := builder.DrawCircle(center, math.Abs(c.R)*scale); err != nil {
			return builder, fmt.Errorf("circle %d: %w", i, err)
		}
	}

	glg.Debugf("plotted %d circles", len(circles))

	return builder, nil
}
