package transition

import "math"

// Curve is a CSS-style cubic Bézier timing function anchored at (0,0) and (1,1)
type Curve struct {
	x1, y1, x2, y2 float64
}

// EaseOut is the deck's slide curve, cubic-bezier(0.33, 1, 0.68, 1)
var EaseOut = NewCurve(0.33, 1, 0.68, 1)

// NewCurve creates a timing function from its two control points
func NewCurve(x1, y1, x2, y2 float64) Curve {
	return Curve{x1: x1, y1: y1, x2: x2, y2: y2}
}

// At maps linear progress t in [0,1] to eased progress
func (c Curve) At(t float64) float64 {
	switch {
	case math.IsNaN(t) || t <= 0:
		return 0
	case t >= 1:
		return 1
	}

	return bezier(c.solveX(t), c.y1, c.y2)
}

// solveX finds the curve parameter whose x coordinate equals x
func (c Curve) solveX(x float64) float64 {
	const (
		epsilon    = 1e-7
		iterations = 8
	)

	s := x
	for range iterations {
		dx := bezier(s, c.x1, c.x2) - x
		if math.Abs(dx) < epsilon {
			return s
		}

		d := bezierSlope(s, c.x1, c.x2)
		if math.Abs(d) < epsilon {
			break
		}

		s -= dx / d
	}

	lo, hi := 0.0, 1.0
	s = x

	for lo < hi {
		v := bezier(s, c.x1, c.x2)
		if math.Abs(v-x) < epsilon {
			return s
		}

		if v < x {
			lo = s
		} else {
			hi = s
		}

		next := (lo + hi) / 2
		if next == s {
			break
		}

		s = next
	}

	return s
}

func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}
