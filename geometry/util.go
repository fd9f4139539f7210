package geometry

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
// Coordinates that survive a few arithmetic steps rarely compare exactly
// equal.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat the vertex slice as a circular buffer. This gives
// the modular index given length n, but unlike the raw modulo operator, it
// only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
