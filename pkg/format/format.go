// Package format writes extracted circles in the supported output formats.
package format

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	circlex "github.com/gucio321/circlex/pkg"
)

// Format names an output format.
type Format string

const (
	// List prints path circles as circle tags and groups as nested list literals.
	List Format = "list"
	// C writes a C array initializer of all groups.
	C Format = "c"
	// JSON writes one JSON object per line.
	JSON Format = "json"
	// GCode plots every circle.
	GCode Format = "gcode"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{List, C, JSON, GCode}
}

// Sink is a circlex.Sink that has to be closed to finish its output.
type Sink interface {
	circlex.Sink
	Close() error
}

// Options tune the formats that need them.
type Options struct {
	// Scale multiplies coordinates (gcode).
	Scale float64
	// LineComments keeps comments in the output (gcode).
	LineComments bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Scale:        1,
		LineComments: true,
	}
}

// New creates a Sink writing f to w.
func New(f Format, w io.Writer, opts Options) (Sink, error) {
	switch f {
	case List:
		return &listSink{w: w}, nil
	case C:
		return &cSink{w: w}, nil
	case JSON:
		return newJSONSink(w), nil
	case GCode:
		return &gcodeSink{w: w, opts: opts}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// PyFloat formats v the way Python's repr does: shortest round-trip
// representation, always with a fractional part or an exponent.
func PyFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if a := math.Abs(v); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// PyList formats a group as a nested list literal, e.g. [[0.0, 0.0, 1.0], [1.0, 1.0, 1.0]].
func PyList(g circlex.Group) string {
	items := make([]string, len(g))
	for i, c := range g {
		items[i] = "[" + PyFloat(c.X) + ", " + PyFloat(c.Y) + ", " + PyFloat(c.R) + "]"
	}

	return "[" + strings.Join(items, ", ") + "]"
}
