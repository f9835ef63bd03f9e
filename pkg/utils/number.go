package utils

import "math"

// RoundWithTwoDecimalPlace rounds half away from zero to two decimal places.
// All monetary aggregates go through here so repeated computations stay
// bit-identical.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
