package circlex

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// segmentLog records compiled segments as strings.
type segmentLog []string

func (l *segmentLog) Start(p [2]float64) { *l = append(*l, fmt.Sprintf("M%v", p)) }
func (l *segmentLog) Line(p [2]float64)  { *l = append(*l, fmt.Sprintf("L%v", p)) }

func (l *segmentLog) QuadBezier(c, p [2]float64) {
	*l = append(*l, fmt.Sprintf("Q%v%v", c, p))
}

func (l *segmentLog) CubeBezier(c1, c2, p [2]float64) {
	*l = append(*l, fmt.Sprintf("C%v%v%v", c1, c2, p))
}

func TestCompilePath(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want segmentLog
	}{
		{"implicit lineto", "M 0 0 10 0 10 10", segmentLog{"M[0 0]", "L[10 0]", "L[10 10]"}},
		{"relative implicit lineto", "m 1 1 2 0 0 2", segmentLog{"M[1 1]", "L[3 1]", "L[3 3]"}},
		{"horizontal and vertical", "M1 1 H 5 V 4 h -2 v -1", segmentLog{"M[1 1]", "L[5 1]", "L[5 4]", "L[3 4]", "L[3 3]"}},
		{"compact numbers", "M0.5.5L1e1-2", segmentLog{"M[0.5 0.5]", "L[10 -2]"}},
		{"relative cubic", "M1 1c1 1 2 2 3 3", segmentLog{"M[1 1]", "C[2 2][3 3][4 4]"}},
		{
			"smooth cubic reflects the last control point",
			"M0 0 C0 -5 5 -5 5 0 S10 5 10 0",
			segmentLog{"M[0 0]", "C[0 -5][5 -5][5 0]", "C[5 5][10 5][10 0]"},
		},
		{"smooth cubic after a line", "M0 0 L2 0 S4 2 6 0", segmentLog{"M[0 0]", "L[2 0]", "C[2 0][4 2][6 0]"}},
		{
			"smooth quadratic",
			"M0 0 Q5 10 10 0 T20 0 t10 0",
			segmentLog{"M[0 0]", "Q[5 10][10 0]", "Q[15 -10][20 0]", "Q[25 10][30 0]"},
		},
		{"close returns to the subpath start", "M1 1 L5 1 Z l1 1", segmentLog{"M[1 1]", "L[5 1]", "L[2 2]"}},
		{"zero radius arc is a line", "M0 0 A0 5 0 0 1 10 0", segmentLog{"M[0 0]", "L[10 0]"}},
		{"arc to the current point is dropped", "M3 3 A5 5 0 0 1 3 3", segmentLog{"M[3 3]"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got segmentLog
			require.NoError(t, compilePath(tc.d, &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPathBounds(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want Rect
	}{
		{"relative square", "m 10 10 h 5 v 5 h -5 z", Rect{MinX: 10, MinY: 10, MaxX: 15, MaxY: 15}},
		{"cubic", "M0 0 C0 10 10 10 10 0", Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 7.5}},
		{"relative cubic", "M10 10 c0 10 10 10 10 0", Rect{MinX: 10, MinY: 10, MaxX: 20, MaxY: 17.5}},
		{"quadratic", "M 0 0 Q 5 10 10 0", Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}},
		{"smooth quadratic", "M0 0 Q5 10 10 0 T20 0", Rect{MinX: 0, MinY: -5, MaxX: 20, MaxY: 5}},
		{"smooth cubic", "M0 0 C0 -5 5 -5 5 0 S10 5 10 0", Rect{MinX: 0, MinY: -3.75, MaxX: 10, MaxY: 3.75}},
		{"half circle arc", "M 0 0 A 5 5 0 0 1 10 0", Rect{MinX: 0, MinY: -5, MaxX: 10, MaxY: 0}},
		{"half circle arc, other sweep", "M 0 0 A 5 5 0 0 0 10 0", Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}},
		{"compact arc flags", "M0 0a5 5 0 0110 0", Rect{MinX: 0, MinY: -5, MaxX: 10, MaxY: 0}},
		{"large arc", "M 0 0 A 5 5 0 1 1 5 5", Rect{MinX: 0, MinY: -5, MaxX: 10, MaxY: 5}},
		{"radii scaled up to fit", "M 0 0 A 1 1 0 0 1 10 0", Rect{MinX: 0, MinY: -5, MaxX: 10, MaxY: 0}},
		{"rotated ellipse", "M -10 0 A 20 10 90 0 1 10 0", Rect{MinX: -10, MinY: -20, MaxX: 10, MaxY: 0}},
		{"full circle from two arcs", "M 10 5 A 5 5 0 0 1 0 5 A 5 5 0 0 1 10 5 Z", Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PathBounds(tc.d)
			require.NoError(t, err)
			diff(t, tc.want, got, cmpopts.EquateApprox(0, 1e-6))
		})
	}
}

func TestPathBoundsCircleTag(t *testing.T) {
	box, err := PathBounds("M 0 0 A 5 5 0 0 1 10 0")
	require.NoError(t, err)
	assert.Equal(t, `<circle cx="5.0000" cy="-2.5000" r="3.7500"/>`, CircleFromBounds(box).Tag())
}

func TestPathBoundsMalformed(t *testing.T) {
	for _, d := range []string{
		"M 0 0 L 5 5 Z 3",
		"M 0 0 c 1 2 3",
		"M 0 0 Q 5 5",
		"L 5 5",
		"5 5",
		"M 0 0 X 1 2",
		"M 0 0 L 1 # 2",
		"M 0 0 A 5 5 0 2 1 10 0",
		"M 0 0 A 5 5 0 0",
		"M 1e999 0",
		"M . 0",
		"M - 0",
	} {
		_, err := PathBounds(d)
		assert.ErrorIs(t, err, ErrPathGeometry, "%q", d)
	}
}

func TestPathBoundsLongPathWithTruncatedCurve(t *testing.T) {
	d := "M 0 0" + strings.Repeat(" L 1 1", 300) + " Q 5 5 6"
	for i := 0; i < 100; i++ {
		_, err := PathBounds(d)
		require.ErrorIs(t, err, ErrPathGeometry)
	}
}
