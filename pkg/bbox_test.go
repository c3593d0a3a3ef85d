package circlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyRect(t *testing.T) {
	r := EmptyRect()
	assert.True(t, r.Empty())

	r.AddPoint(3, -1)
	assert.False(t, r.Empty())
	assert.Equal(t, Rect{MinX: 3, MinY: -1, MaxX: 3, MaxY: -1}, r)
}

func TestAddCubicIncludesExtrema(t *testing.T) {
	r := EmptyRect()
	r.AddCubic([2]float64{0, 0}, [2]float64{0, 10}, [2]float64{10, 10}, [2]float64{10, 0})

	assert.InDelta(t, 0, r.MinX, 1e-9)
	assert.InDelta(t, 0, r.MinY, 1e-9)
	assert.InDelta(t, 10, r.MaxX, 1e-9)
	// the curve peaks at t=0.5, well below its control points
	assert.InDelta(t, 7.5, r.MaxY, 1e-9)
}

func TestAddCubicStraight(t *testing.T) {
	r := EmptyRect()
	r.AddCubic([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2}, [2]float64{3, 3})
	assert.Equal(t, Rect{MaxX: 3, MaxY: 3}, r)
}

func TestCircleFromBounds(t *testing.T) {
	tests := []struct {
		box  Rect
		want Circle
	}{
		{Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}, Circ(1, 1, 1)},
		{Rect{MinX: 10, MinY: 20, MaxX: 14, MaxY: 22}, Circ(12, 21, 1.5)},
		{Rect{MinX: -1, MinY: -1, MaxX: -1, MaxY: -1}, Circ(-1, -1, 0)},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, CircleFromBounds(tc.box))
	}
}

func TestCircleTagPrecision(t *testing.T) {
	c := CircleFromBounds(Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 2.0 / 3})
	assert.Equal(t, `<circle cx="0.5000" cy="0.3333" r="0.4167"/>`, c.Tag())
}

func TestPathBoundsPolygon(t *testing.T) {
	box, err := PathBounds("M0.000 0.000 L10.000 0.000 L10.000 20.000 L0.000 20.000 Z")
	require.NoError(t, err)
	assert.Equal(t, Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 20}, box)

	c := CircleFromBounds(box)
	assert.Equal(t, `<circle cx="5.0000" cy="10.0000" r="7.5000"/>`, c.Tag())
}

func TestPathBoundsEmpty(t *testing.T) {
	for _, d := range []string{"", "  \n\t, "} {
		_, err := PathBounds(d)
		assert.ErrorIs(t, err, ErrEmptyPath, "%q", d)
	}
}

func TestAddQuad(t *testing.T) {
	r := EmptyRect()
	r.AddQuad([2]float64{0, 0}, [2]float64{5, 10}, [2]float64{10, 0})
	assert.Equal(t, Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}, r)

	// no extremum between the end points
	r = EmptyRect()
	r.AddQuad([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2})
	assert.Equal(t, Rect{MaxX: 2, MaxY: 2}, r)
}
