package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	circlex "github.com/gucio321/circlex/pkg"
)

var _ Sink = &jsonSink{}

const (
	kindPath  = "path"
	kindGroup = "group"
)

// Record is one line of the json format.
type Record struct {
	Kind    string          `json:"kind"`
	Circle  *circlex.Circle `json:"circle,omitempty"`
	Circles circlex.Group   `json:"circles,omitempty"`
}

type jsonSink struct {
	enc *json.Encoder
}

func newJSONSink(w io.Writer) *jsonSink {
	return &jsonSink{enc: json.NewEncoder(w)}
}

func (s *jsonSink) PathCircle(c circlex.Circle) error {
	return s.enc.Encode(Record{Kind: kindPath, Circle: &c})
}

func (s *jsonSink) Group(g circlex.Group) error {
	return s.enc.Encode(Record{Kind: kindGroup, Circles: g})
}

func (s *jsonSink) Close() error {
	return nil
}

// ReadJSON reads output of the json format back into a Collector.
func ReadJSON(r io.Reader) (*circlex.Collector, error) {
	result := &circlex.Collector{}
	dec := json.NewDecoder(r)

	for n := 1; ; n++ {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return result, nil
			}

			return nil, fmt.Errorf("record %d: %w", n, err)
		}

		switch rec.Kind {
		case kindPath:
			if rec.Circle == nil {
				return nil, fmt.Errorf("record %d: path record without circle", n)
			}

			result.Paths = append(result.Paths, *rec.Circle)
		case kindGroup:
			result.Groups = append(result.Groups, rec.Circles)
		default:
			return nil, fmt.Errorf("record %d: unknown kind %q", n, rec.Kind)
		}
	}
}
