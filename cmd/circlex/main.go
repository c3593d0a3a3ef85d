package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/goccy/go-json"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"
	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"

	circlex "github.com/gucio321/circlex/pkg"
	"github.com/gucio321/circlex/pkg/format"
	"github.com/gucio321/circlex/pkg/layout"
	"github.com/gucio321/circlex/pkg/preview"
	"github.com/gucio321/circlex/pkg/viewer"
)

const defaultInput = "a250001_all_tweaked.svg"

type Flags struct {
	InputFilePath  string
	OutputFilePath string
	Format         string
	Layout         string
	Stride         int
	Skip           int
	FlushPartial   bool
	Charset        string
	Inkscape       bool
	Scale          float64
	NoLineComments bool
	PNGPath        string
	SVGPath        string
	PreviewScale   float64
	View           bool
	Colored        bool
	Quiet          bool
	Debug          bool
	preset         string
	makePreset     bool
	listLayouts    bool
}

func main() {
	var f Flags
	flag.StringVar(&f.InputFilePath, "i", defaultInput, "input file path")
	flag.StringVar(&f.OutputFilePath, "o", "", "output file path (default stdout)")
	flag.StringVar(&f.Format, "format", string(format.List), "output format: list, c, json or gcode")
	flag.StringVar(&f.Layout, "layout", layout.Default, "input layout (see -list-layouts)")
	flag.IntVar(&f.Stride, "stride", 0, "lines per group, overrides the layout")
	flag.IntVar(&f.Skip, "skip", -1, "leading lines skipped in every group, overrides the layout")
	flag.BoolVar(&f.FlushPartial, "flush-partial", false, "emit a trailing incomplete group instead of dropping it")
	flag.StringVar(&f.Charset, "charset", "", "input encoding label, e.g. latin1 (default utf-8)")
	flag.BoolVar(&f.Inkscape, "inkscape", false, "convert objects to paths with inkscape first")
	flag.Float64Var(&f.Scale, "s", 1.0, "Scale factor (gcode)")
	flag.BoolVar(&f.NoLineComments, "nlc", false, "no line comments (gcode)")
	flag.StringVar(&f.PNGPath, "png", "", "write a PNG preview to this path")
	flag.StringVar(&f.SVGPath, "svg", "", "write an SVG preview to this path")
	flag.Float64Var(&f.PreviewScale, "preview-scale", 4, "preview pixels per diagram unit")
	flag.BoolVar(&f.View, "v", false, "view")
	flag.BoolVar(&f.Colored, "colored", false, "colour circles in the viewer")
	flag.BoolVar(&f.Quiet, "q", false, "no logs")
	flag.BoolVar(&f.Debug, "debug", false, "debug logs")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.BoolVar(&f.listLayouts, "list-layouts", false, "list known layouts and exit")
	flag.Parse()

	// stdout carries the output, logs go elsewhere
	glg.Get().SetWriter(os.Stderr).SetMode(glg.WRITER)

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		glg.Infof("Presets generated")
		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}

		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	switch {
	case f.Quiet:
		glg.Get().SetMode(glg.NONE)
	case !f.Debug:
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	if f.listLayouts {
		printLayouts()
		return
	}

	l, err := resolveLayout(f)
	if err != nil {
		glg.Fatalf("Invalid layout: %v", err)
	}

	if _, err := os.Stat(f.InputFilePath); os.IsNotExist(err) {
		flag.Usage()
		glg.Fatalf("Input file %s does not exist", f.InputFilePath)
	}

	inputPath := f.InputFilePath
	if f.Inkscape {
		inputPath, err = convertToPaths(f.InputFilePath, f.Debug)
		if err != nil {
			glg.Fatalf("Cannot run inkscape: %v", err)
		}
	}

	var out io.Writer = os.Stdout
	if f.OutputFilePath != "" {
		file, err := os.Create(f.OutputFilePath)
		if err != nil {
			glg.Fatalf("Cannot create file %s: %v", f.OutputFilePath, err)
		}

		defer file.Close()
		out = file
	}

	opts := format.DefaultOptions()
	opts.Scale = f.Scale
	opts.LineComments = !f.NoLineComments

	sink, err := format.New(format.Format(f.Format), out, opts)
	if err != nil {
		glg.Fatalf("Cannot create output: %v (known formats: %v)", err, format.Formats())
	}

	collected := &circlex.Collector{}
	stats, err := extract(inputPath, f, l, circlex.Tee(sink, collected))
	if err != nil {
		glg.Fatalf("Cannot extract circles from %s: %v", inputPath, err)
	}

	if err := sink.Close(); err != nil {
		glg.Fatalf("Cannot write %s output: %v", f.Format, err)
	}

	glg.Infof("%d lines: %d path circles, %d groups, %d skipped, %d discarded",
		stats.Lines, stats.PathCircles, stats.Groups, stats.Skipped, stats.Discarded)

	if err := writePreviews(inputPath, f, collected.Circles()); err != nil {
		glg.Fatalf("Cannot write preview: %v", err)
	}

	if f.View {
		if len(collected.Groups) == 0 {
			glg.Fatal("Nothing to view: no groups extracted")
		}

		ebiten.SetWindowSize(800, 600)
		ebiten.SetWindowTitle("Circles")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		if err := ebiten.RunGame(viewer.NewViewer(collected.Groups).Colored(f.Colored)); err != nil {
			glg.Fatalf("Cannot run viewer: %v", err)
		}
	}
}

func printLayouts() {
	layouts, err := layout.List()
	if err != nil {
		glg.Fatalf("Cannot load layouts: %v", err)
	}

	for _, l := range layouts {
		fmt.Printf("%-10s stride %d, skip %d\t%s\n", l.Name, l.Stride, l.Skip, l.Description)
	}
}

// resolveLayout applies -stride and -skip on top of the named layout.
func resolveLayout(f Flags) (*layout.Layout, error) {
	l, err := layout.Get(f.Layout)
	if err != nil {
		return nil, err
	}

	if f.Stride != 0 {
		l.Stride = f.Stride
	}

	if f.Skip >= 0 {
		l.Skip = f.Skip
	}

	return l, l.Validate()
}

func extract(path string, f Flags, l *layout.Layout, sink circlex.Sink) (circlex.Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return circlex.Stats{}, err
	}

	defer file.Close()

	var r io.Reader = file
	if f.Charset != "" {
		if r, err = charset.NewReaderLabel(f.Charset, file); err != nil {
			return circlex.Stats{}, fmt.Errorf("charset %q: %w", f.Charset, err)
		}
	}

	return circlex.NewExtractor().
		Layout(l.Stride, l.Skip).
		FlushPartial(f.FlushPartial).
		Extract(r, sink)
}

func convertToPaths(input string, verbose bool) (string, error) {
	inkscapeProxy := inkscape.NewProxy(inkscape.Verbose(verbose))
	if err := inkscapeProxy.Run(); err != nil {
		return "", err
	}

	defer inkscapeProxy.Close()

	glg.Infof("running inkscape pre-processing")
	convertedFile := strings.TrimSuffix(input, ".svg") + ".circlex.svg"
	inkscapeProxy.RawCommands(
		fmt.Sprintf("file-open:%s", input),
		fmt.Sprintf("export-filename:%s", convertedFile),
		"export-type:svg",
		"select-all",
		"object-to-path",
		"export-do",
	)

	glg.Info("inkscape done.")

	if _, err := os.Stat(convertedFile); err != nil {
		return "", fmt.Errorf("inkscape produced no output: %w", err)
	}

	return convertedFile, nil
}

func writePreviews(input string, f Flags, circles []circlex.Circle) error {
	if f.PNGPath == "" && f.SVGPath == "" {
		return nil
	}

	canvas, err := canvasOf(input)
	if err != nil {
		glg.Warnf("%s: %v; fitting preview to circles", input, err)
		canvas = preview.CanvasFromCircles(circles, 1)
	}

	var g errgroup.Group

	if f.PNGPath != "" {
		g.Go(func() error {
			return writeFile(f.PNGPath, func(w io.Writer) error {
				return preview.WritePNG(w, canvas, circles, f.PreviewScale)
			})
		})
	}

	if f.SVGPath != "" {
		g.Go(func() error {
			return writeFile(f.SVGPath, func(w io.Writer) error {
				return preview.WriteSVG(w, canvas, circles, f.PreviewScale)
			})
		})
	}

	return g.Wait()
}

func canvasOf(path string) (preview.Canvas, error) {
	file, err := os.Open(path)
	if err != nil {
		return preview.Canvas{}, err
	}

	defer file.Close()

	return preview.CanvasFromSVG(file)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if err := write(file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	glg.Infof("preview written to %s", path)

	return nil
}
