package circlex

// Sink receives everything the Extractor produces, in input order.
type Sink interface {
	// PathCircle is called for every <path> line, as soon as it is read.
	PathCircle(c Circle) error
	// Group is called at the end of every stride.
	Group(g Group) error
}

var (
	_ Sink = &Collector{}
	_ Sink = tee{}
)

// Collector is a Sink that keeps everything in memory.
type Collector struct {
	Paths  []Circle
	Groups []Group
}

func (c *Collector) PathCircle(circle Circle) error {
	c.Paths = append(c.Paths, circle)
	return nil
}

func (c *Collector) Group(g Group) error {
	c.Groups = append(c.Groups, g)
	return nil
}

// Circles returns path circles followed by grouped circles.
func (c *Collector) Circles() []Circle {
	result := append([]Circle(nil), c.Paths...)
	for _, g := range c.Groups {
		result = append(result, g...)
	}

	return result
}

type tee []Sink

// Tee returns a Sink that forwards to every sink in order and stops at the first error.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

func (t tee) PathCircle(c Circle) error {
	for _, s := range t {
		if err := s.PathCircle(c); err != nil {
			return err
		}
	}

	return nil
}

func (t tee) Group(g Group) error {
	for _, s := range t {
		if err := s.Group(g); err != nil {
			return err
		}
	}

	return nil
}
