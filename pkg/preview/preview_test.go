package preview

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	circlex "github.com/gucio321/circlex/pkg"
)

func TestCanvasFromSVG(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Canvas
	}{
		{
			"viewBox",
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="10 20 300 400" width="1" height="1"></svg>`,
			Canvas{X: 10, Y: 20, W: 300, H: 400},
		},
		{
			"comma separated viewBox",
			`<svg viewBox="0,0,50,60"/>`,
			Canvas{W: 50, H: 60},
		},
		{
			"size fallback",
			`<?xml version="1.0"?>` + "\n" + `<svg width="120px" height="80"><circle cx="1" cy="1" r="1"/></svg>`,
			Canvas{W: 120, H: 80},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CanvasFromSVG(strings.NewReader(tc.doc))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanvasFromSVGErrors(t *testing.T) {
	_, err := CanvasFromSVG(strings.NewReader(`<svg viewBox="0 0 0 0"/>`))
	assert.ErrorIs(t, err, ErrNoCanvas)

	_, err = CanvasFromSVG(strings.NewReader(`<html/>`))
	assert.ErrorIs(t, err, ErrNoCanvas)
}

func TestCanvasFromCircles(t *testing.T) {
	c := CanvasFromCircles([]circlex.Circle{circlex.Circ(0, 0, 1), circlex.Circ(10, 5, 2)}, 1)
	assert.Equal(t, Canvas{X: -2, Y: -2, W: 15, H: 10}, c)

	assert.Equal(t, Canvas{W: 1, H: 1}, CanvasFromCircles(nil, 5))
}

func TestPixels(t *testing.T) {
	w, h := Canvas{W: 10.2, H: 0}.Pixels(2)
	assert.Equal(t, 21, w)
	assert.Equal(t, 1, h)
}

func TestWritePNG(t *testing.T) {
	canvas := Canvas{W: 20, H: 10}
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, canvas, []circlex.Circle{circlex.Circ(10, 5, 4)}, 2))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	// the center is not on the stroke
	r, g, b, _ := img.At(20, 10).RGBA()
	br, bg, bb, _ := colornames.Black.RGBA()
	assert.Equal(t, [3]uint32{br, bg, bb}, [3]uint32{r, g, b})
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	canvas := Canvas{X: -5, Y: -5, W: 20, H: 20}
	require.NoError(t, WriteSVG(&buf, canvas, []circlex.Circle{circlex.Circ(0, 0, 2.4)}, 10))

	out := buf.String()
	assert.Contains(t, out, `<svg width="200" height="200"`)
	assert.Contains(t, out, `<circle cx="50" cy="50" r="24"`)
	assert.Contains(t, out, "stroke:"+hex(ColorOf(0)))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff4500", hex(colornames.Orangered))
}
