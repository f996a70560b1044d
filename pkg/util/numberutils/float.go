package numberutils

import "math"

// RoundFloat rounds the given number to the given number of decimal places.
// Exact halves go to the even neighbour (2.5 -> 2, 0.25 -> 0.2).
func RoundFloat(number float64, places int) float64 {
	if places <= 0 {
		return math.RoundToEven(number)
	}
	factor := math.Pow(10, float64(places))
	return math.RoundToEven(number*factor) / factor
}

// RoundToInt rounds the given number to the nearest integer, halves to even.
func RoundToInt(number float64) int {
	return int(math.RoundToEven(number))
}

// ValueOrZero dereferences number, returning 0 when it is nil.
func ValueOrZero[T ~int | ~float64](number *T) T {
	if number == nil {
		return 0
	}
	return *number
}
