package circlex

import "math"

// maxArcSpan is the widest parametric angle one cubic may approximate.
const maxArcSpan = math.Pi / 8

// arcTo adds the SVG elliptical arc from p0 to p as a run of cubic Béziers.
// Out-of-range radii are handled the SVG way: zero radius draws a line,
// too small radii are scaled up until the arc fits.
func arcTo(a segmentAdder, p0 [2]float64, rx, ry, rotation float64, large, sweep bool, p [2]float64) {
	if p0 == p {
		return
	}

	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		a.Line(p)
		return
	}

	// endpoint to center parameterization
	sinPhi, cosPhi := math.Sincos(rotation * math.Pi / 180)
	dx, dy := (p0[0]-p[0])/2, (p0[1]-p[1])/2
	x1, y1 := cosPhi*dx+sinPhi*dy, -sinPhi*dx+cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, rx*rx*ry*ry-den) / den)
	if large == sweep {
		coef = -coef
	}

	cx1, cy1 := coef*rx*y1/ry, -coef*ry*x1/rx
	cx := cosPhi*cx1 - sinPhi*cy1 + (p0[0]+p[0])/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0[1]+p[1])/2

	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	theta := vectorAngle(1, 0, ux, uy)
	delta := vectorAngle(ux, uy, vx, vy)

	switch {
	case !sweep && delta > 0:
		delta -= 2 * math.Pi
	case sweep && delta < 0:
		delta += 2 * math.Pi
	}

	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	segs := int(math.Abs(delta)/maxArcSpan) + 1
	step := delta / float64(segs)
	t := math.Tan(step / 2)
	alpha := math.Sin(step) * (math.Sqrt(4+3*t*t) - 1) / 3

	last := p0
	ldx, ldy := ellipsePrime(rx, ry, sinPhi, cosPhi, theta)

	for i := 1; i <= segs; i++ {
		eta := theta + step*float64(i)

		next := p
		if i < segs {
			next = ellipsePointAt(rx, ry, sinPhi, cosPhi, eta, cx, cy)
		}

		edx, edy := ellipsePrime(rx, ry, sinPhi, cosPhi, eta)
		a.CubeBezier(
			[2]float64{last[0] + alpha*ldx, last[1] + alpha*ldy},
			[2]float64{next[0] - alpha*edx, next[1] - alpha*edy},
			next,
		)

		last, ldx, ldy = next, edx, edy
	}
}

// ellipsePrime is the tangent of the ellipse with radii a, b rotated by theta, at parameter eta.
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	sinEta, cosEta := math.Sincos(eta)
	return -a*sinEta*cosTheta - b*cosEta*sinTheta, -a*sinEta*sinTheta + b*cosEta*cosTheta
}

func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) [2]float64 {
	sinEta, cosEta := math.Sincos(eta)
	return [2]float64{
		cx + a*cosEta*cosTheta - b*sinEta*sinTheta,
		cy + a*cosEta*sinTheta + b*sinEta*cosTheta,
	}
}

// vectorAngle is the signed angle from u to v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	l := math.Hypot(ux, uy) * math.Hypot(vx, vy)
	if l == 0 {
		return 0
	}

	angle := math.Acos(math.Max(-1, math.Min(1, (ux*vx+uy*vy)/l)))
	if ux*vy-uy*vx < 0 {
		angle = -angle
	}

	return angle
}
