package automix

import "math"

func nan() float64 {
	return math.NaN()
}

func isNaNOrInf(v float32) bool {
	x := float64(v)
	return math.IsNaN(x) || math.IsInf(x, 0)
}
