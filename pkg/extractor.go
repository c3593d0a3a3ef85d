package circlex

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kpango/glg"
)

const (
	// DefaultStride is the number of lines the diagram's authoring tool
	// writes per group of circles.
	DefaultStride = 6
	// DefaultSkip is the number of leading lines in every stride that carry no circle.
	DefaultSkip = 2
	// DefaultMaxLineSize bounds a single input line; path data can be long.
	DefaultMaxLineSize = 16 << 20

	pathPrefix = "<path"
)

// ValidateStride checks that a stride of the given size with skip leading
// lines leaves at least one data line.
func ValidateStride(stride, skip int) error {
	switch {
	case stride < 1:
		return fmt.Errorf("%w: stride must be positive, got %d", ErrInvalidStride, stride)
	case skip < 0:
		return fmt.Errorf("%w: skip must not be negative, got %d", ErrInvalidStride, skip)
	case skip >= stride:
		return fmt.Errorf("%w: skip (%d) must be less than stride (%d)", ErrInvalidStride, skip, stride)
	}

	return nil
}

// Stats summarizes an extraction run.
type Stats struct {
	Lines       int
	PathCircles int
	Groups      int
	Skipped     int
	// Discarded counts circles of a trailing incomplete stride that were not emitted.
	Discarded int
}

// Extractor reads diagram lines and turns them into circles.
type Extractor struct {
	stride, skip int
	flushPartial bool
	maxLineSize  int
	bounds       func(d string) (Rect, error)
}

// NewExtractor creates an Extractor with the default layout.
func NewExtractor() *Extractor {
	return &Extractor{
		stride:      DefaultStride,
		skip:        DefaultSkip,
		maxLineSize: DefaultMaxLineSize,
		bounds:      PathBounds,
	}
}

// Layout sets the stride and the number of leading lines skipped in each stride.
func (e *Extractor) Layout(stride, skip int) *Extractor {
	e.stride, e.skip = stride, skip
	return e
}

// FlushPartial makes the extractor emit a trailing incomplete group instead of dropping it.
func (e *Extractor) FlushPartial(flush bool) *Extractor {
	e.flushPartial = flush
	return e
}

// MaxLineSize sets the longest accepted input line in bytes.
func (e *Extractor) MaxLineSize(n int) *Extractor {
	e.maxLineSize = n
	return e
}

// Extract reads r line by line and delivers circles to sink.
// The first error aborts the run; whatever was delivered before stays delivered.
func (e *Extractor) Extract(r io.Reader, sink Sink) (stats Stats, err error) {
	if err := ValidateStride(e.stride, e.skip); err != nil {
		return stats, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), e.maxLineSize)

	var group Group

	for lineIdx := 0; scanner.Scan(); lineIdx++ {
		line := scanner.Text()
		stats.Lines++

		if strings.HasPrefix(line, pathPrefix) {
			c, err := e.pathCircle(line)
			if err != nil {
				return stats, fmt.Errorf("line %d: %w", lineIdx+1, err)
			}

			if err := sink.PathCircle(c); err != nil {
				return stats, fmt.Errorf("line %d: %w", lineIdx+1, err)
			}

			stats.PathCircles++

			continue
		}

		pos := lineIdx % e.stride
		if pos < e.skip {
			stats.Skipped++
			continue
		}

		c, err := ParseCircleAttributes(strings.TrimSpace(line))
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", lineIdx+1, err)
		}

		group = append(group, c)

		if pos == e.stride-1 {
			if err := sink.Group(group); err != nil {
				return stats, fmt.Errorf("line %d: %w", lineIdx+1, err)
			}

			glg.Debugf("group %d: %d circles", stats.Groups, len(group))
			stats.Groups++
			group = nil
		}
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading input: %w", err)
	}

	if len(group) > 0 {
		if !e.flushPartial {
			glg.Warnf("input ended inside a stride; discarding %d circle(s)", len(group))
			stats.Discarded = len(group)

			return stats, nil
		}

		if err := sink.Group(group); err != nil {
			return stats, err
		}

		stats.Groups++
	}

	return stats, nil
}

func (e *Extractor) pathCircle(line string) (Circle, error) {
	d, err := pathData(line)
	if err != nil {
		return Circle{}, err
	}

	box, err := e.bounds(d)
	if err != nil {
		return Circle{}, err
	}

	return CircleFromBounds(box), nil
}
