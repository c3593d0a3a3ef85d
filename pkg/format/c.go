package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	circlex "github.com/gucio321/circlex/pkg"
)

var _ Sink = &cSink{}

// cSink buffers everything because the array dimensions precede the data.
type cSink struct {
	w      io.Writer
	paths  []circlex.Circle
	groups []circlex.Group
}

func (s *cSink) PathCircle(c circlex.Circle) error {
	s.paths = append(s.paths, c)
	return nil
}

func (s *cSink) Group(g circlex.Group) error {
	s.groups = append(s.groups, g)
	return nil
}

func (s *cSink) Close() error {
	w := bufio.NewWriter(s.w)

	for _, c := range s.paths {
		fmt.Fprintf(w, "/* %s */\n", c.Tag())
	}

	perGroup := 0
	for _, g := range s.groups {
		perGroup = max(perGroup, len(g))
	}

	fmt.Fprintf(w, "#define NUM_GROUPS %d\n\n", len(s.groups))
	fmt.Fprintf(w, "double circleGroups[NUM_GROUPS][%d][3] = {\n", perGroup)

	for i, g := range s.groups {
		circles := make([]string, len(g))
		for j, c := range g {
			circles[j] = fmt.Sprintf("{%s, %s, %s}", PyFloat(c.X), PyFloat(c.Y), PyFloat(c.R))
		}

		sep := ","
		if i == len(s.groups)-1 {
			sep = ""
		}

		fmt.Fprintf(w, "\t{%s}%s\n", strings.Join(circles, ", "), sep)
	}

	fmt.Fprintln(w, "};")

	return w.Flush()
}
