package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/circlex/pkg/format"
	"github.com/gucio321/circlex/pkg/viewer"
)

func main() {
	inputFile := flag.String("i", "", "Input file (circlex -format json output)")
	extent := flag.Float64("extent", viewer.DefaultExtent, "half-width of the visible area")
	colored := flag.Bool("colored", false, "colour circles")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	file, err := os.Open(*inputFile)
	if err != nil {
		glg.Fatal(err)
	}

	collected, err := format.ReadJSON(file)
	file.Close()
	if err != nil {
		glg.Fatal(err)
	}

	if len(collected.Groups) == 0 {
		glg.Fatalf("%s contains no groups", *inputFile)
	}

	glg.Infof("viewing %d groups", len(collected.Groups))

	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowTitle("Circles")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(viewer.NewViewer(collected.Groups).Extent(*extent).Colored(*colored)); err != nil {
		glg.Fatal(err)
	}
}
