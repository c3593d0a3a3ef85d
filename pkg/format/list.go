package format

import (
	"fmt"
	"io"

	circlex "github.com/gucio321/circlex/pkg"
)

var _ Sink = &listSink{}

type listSink struct {
	w io.Writer
}

func (s *listSink) PathCircle(c circlex.Circle) error {
	_, err := fmt.Fprintln(s.w, c.Tag())
	return err
}

func (s *listSink) Group(g circlex.Group) error {
	_, err := fmt.Fprintln(s.w, PyList(g))
	return err
}

func (s *listSink) Close() error {
	return nil
}
