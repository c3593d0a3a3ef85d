package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/fixed"

	circlex "github.com/gucio321/circlex/pkg"
)

var (
	background = colornames.Black
	palette    = []color.RGBA{
		colornames.Orangered,
		colornames.Gold,
		colornames.Limegreen,
		colornames.Deepskyblue,
		colornames.Violet,
	}
)

const strokeWidth = 1.5

// ColorOf returns the palette colour for the i-th circle.
func ColorOf(i int) color.RGBA {
	return palette[i%len(palette)]
}

// Raster strokes every circle into a new image of canvas c at the given scale.
func Raster(c Canvas, circles []circlex.Circle, scale float64) *image.RGBA {
	w, h := c.Pixels(scale)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	dasher.SetStroke(fixed.Int26_6(strokeWidth*64), 4*64, rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.Round, nil, 0)

	for i, circle := range circles {
		dasher.Clear()
		rasterx.AddCircle(
			(circle.X-c.X)*scale,
			(circle.Y-c.Y)*scale,
			math.Abs(circle.R)*scale,
			dasher,
		)
		dasher.Scanner.SetColor(ColorOf(i))
		dasher.Draw()
	}

	return img
}

// WritePNG encodes Raster's result as PNG.
func WritePNG(w io.Writer, c Canvas, circles []circlex.Circle, scale float64) error {
	return png.Encode(w, Raster(c, circles, scale))
}
