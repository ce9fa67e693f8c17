// core/detect/stats.go
package detect

import "math"

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// stdDev is the population standard deviation.
func stdDev(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	m := mean(v)
	var ss float64
	for _, x := range v {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(v)))
}

// maxOf returns -Inf for an empty slice so a compared center always wins.
func maxOf(v []float64) float64 {
	m := math.Inf(-1)
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}

// minOf returns +Inf for an empty slice, mirroring maxOf.
func minOf(v []float64) float64 {
	m := math.Inf(1)
	for _, x := range v {
		if x < m {
			m = x
		}
	}
	return m
}
