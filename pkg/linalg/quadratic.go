package linalg

import "github.com/chewxy/math32"

// SolveQuadratic finds the real roots of a*t^2 + b*t + c = 0.
// The sign of the square root term follows the sign of b so that the
// two roots are never computed by subtracting nearly equal values.
func SolveQuadratic(a, b, c float32) (x0, x1 float32, ok bool) {
	discr := b*b - 4*a*c
	if discr < 0 {
		return 0, 0, false
	}

	if discr == 0 {
		x0 = -0.5 * b / a
		return x0, x0, true
	}

	sign := float32(-1)
	if b > 0 {
		sign = 1
	}
	q := -0.5 * (b + sign*math32.Sqrt(discr))
	return q / a, c / q, true
}
