// core/detect/dedupe.go
package detect

import "sort"

// DedupeTimes sorts timestamps ascending and drops any that falls within
// minGap seconds of its kept predecessor. Segments never overlap in this
// pipeline, but the guard protects boundary duplicates all the same.
func DedupeTimes(ts []float64, minGap float64) []float64 {
	if len(ts) == 0 {
		return nil
	}
	sorted := make([]float64, len(ts))
	copy(sorted, ts)
	sort.Float64s(sorted)

	out := make([]float64, 0, len(sorted))
	out = append(out, sorted[0])
	for _, t := range sorted[1:] {
		if t-out[len(out)-1] >= minGap {
			out = append(out, t)
		}
	}
	return out
}
