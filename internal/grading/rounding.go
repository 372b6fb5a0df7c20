package grading

import "math"

// RoundHalfEven rounds x to the nearest whole number, breaking ties towards
// the even neighbour: 87.5 -> 88, 86.5 -> 86.
func RoundHalfEven(x float64) int {
	return int(math.RoundToEven(x))
}
