package circlex

import "math"

// Rect is an axis aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyRect returns a Rect that contains nothing; adding a point makes it
// the degenerate box around that point.
func EmptyRect() Rect {
	return Rect{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// Empty reports whether no point has been added to r.
func (r Rect) Empty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// AddPoint grows r to contain (x, y).
func (r *Rect) AddPoint(x, y float64) {
	r.MinX = math.Min(r.MinX, x)
	r.MinY = math.Min(r.MinY, y)
	r.MaxX = math.Max(r.MaxX, x)
	r.MaxY = math.Max(r.MaxY, y)
}

// AddCubic grows r to contain the cubic Bézier p0 c1 c2 p3.
// End points and the curve's extrema are considered, so the result is tight.
func (r *Rect) AddCubic(p0, c1, c2, p3 [2]float64) {
	r.AddPoint(p0[0], p0[1])
	r.AddPoint(p3[0], p3[1])

	for axis := 0; axis < 2; axis++ {
		a, b, c := cubicDerivative(p0[axis], c1[axis], c2[axis], p3[axis])
		for _, t := range quadraticRoots(a, b, c) {
			if !(0 <= t && t <= 1) {
				continue
			}

			r.AddPoint(
				bezierSpline(p0[0], c1[0], c2[0], p3[0], t),
				bezierSpline(p0[1], c1[1], c2[1], p3[1], t),
			)
		}
	}
}

// AddQuad grows r to contain the quadratic Bézier p0 c p1, including its extremum.
func (r *Rect) AddQuad(p0, c, p1 [2]float64) {
	r.AddPoint(p0[0], p0[1])
	r.AddPoint(p1[0], p1[1])

	for axis := 0; axis < 2; axis++ {
		// derivative 2(c-p0) + 2t(p0-2c+p1) vanishes at t
		den := p0[axis] - 2*c[axis] + p1[axis]
		if den == 0 {
			continue
		}

		t := (p0[axis] - c[axis]) / den
		if !(0 < t && t < 1) {
			continue
		}

		mt := 1 - t
		r.AddPoint(
			mt*mt*p0[0]+2*mt*t*c[0]+t*t*p1[0],
			mt*mt*p0[1]+2*mt*t*c[1]+t*t*p1[1],
		)
	}
}

// cubic polynomial
// x = At^3 + Bt^2 + Ct + D
// A = p3 - 3p2 + 3p1 - p0
// B = 3p2 - 6p1 + 3p0
// C = 3p1 - 3p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// derivative of bezierSpline as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}

		return []float64{-c / b}
	}

	d := b*b - 4*a*c
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{-b / (2 * a)}
	}

	sq := math.Sqrt(d)

	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
