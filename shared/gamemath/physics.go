package gamemath

import "math"

// MoveToward moves current toward target by at most maxDelta without
// overshooting.
func MoveToward(current, target, maxDelta float64) float64 {
	if current < target {
		return math.Min(current+maxDelta, target)
	}
	return math.Max(current-maxDelta, target)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Damp approaches target with an exponential decay of the given rate. The
// result for two steps of dt equals one step of 2*dt, so convergence does
// not depend on frame rate.
func Damp(current, target, rate, dt float64) float64 {
	return Lerp(current, target, 1-math.Exp(-rate*dt))
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Normalize returns the unit vector of (x, y). A zero vector is returned
// unchanged.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}
