package circlex

import "fmt"

var _ segmentAdder = &boxAdder{}

// boxAdder folds path segments into a tight bounding box.
type boxAdder struct {
	box Rect
	cur [2]float64
}

func (b *boxAdder) Start(p [2]float64) {
	b.box.AddPoint(p[0], p[1])
	b.cur = p
}

func (b *boxAdder) Line(p [2]float64) {
	b.box.AddPoint(p[0], p[1])
	b.cur = p
}

func (b *boxAdder) QuadBezier(c, p [2]float64) {
	b.box.AddQuad(b.cur, c, p)
	b.cur = p
}

func (b *boxAdder) CubeBezier(c1, c2, p [2]float64) {
	b.box.AddCubic(b.cur, c1, c2, p)
	b.cur = p
}

// PathBounds parses SVG path data and returns the tight bounding box of the
// geometry it describes. Control points only count where the curve reaches them.
func PathBounds(d string) (Rect, error) {
	adder := &boxAdder{box: EmptyRect()}
	if err := compilePath(d, adder); err != nil {
		return Rect{}, fmt.Errorf("%w: %w", ErrPathGeometry, err)
	}

	if adder.box.Empty() {
		return Rect{}, ErrEmptyPath
	}

	return adder.box, nil
}
