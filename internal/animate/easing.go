package animate

import (
	"fmt"
	"math"
	"strings"
)

// Easing maps linear progress in [0, 1] onto eased progress in [0, 1].
type Easing func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 { return t }

var (
	// EaseInOut is cubic-bezier(0.42, 0, 0.58, 1): slow start, slow finish.
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
	// Ease is cubic-bezier(0.25, 0.1, 0.25, 1).
	Ease = CubicBezier(0.25, 0.1, 0.25, 1)
)

// CubicBezier returns a timing function with control points (x1, y1) and
// (x2, y2), endpoints fixed at (0, 0) and (1, 1). x1 and x2 must be within
// [0, 1] so x(s) is monotonic.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	// Polynomial coefficients for x(s) and y(s).
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	const epsilon = 1e-7

	solve := func(x float64) float64 {
		// Newton first; it converges in a handful of steps away from flat
		// regions.
		s := x
		for i := 0; i < 8; i++ {
			err := sampleX(s) - x
			if math.Abs(err) < epsilon {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= err / d
		}
		// Fall back to bisection.
		lo, hi := 0.0, 1.0
		s = x
		for lo < hi {
			v := sampleX(s)
			if math.Abs(v-x) < epsilon {
				return s
			}
			if x > v {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
			if hi-lo < epsilon {
				break
			}
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}

// ParseEasing resolves a configured easing name.
func ParseEasing(name string) (Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ease-in-out", "easeinout":
		return EaseInOut, nil
	case "ease":
		return Ease, nil
	case "linear":
		return Linear, nil
	default:
		return nil, fmt.Errorf("unknown easing %q (want ease-in-out, ease or linear)", name)
	}
}
