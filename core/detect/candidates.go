// core/detect/candidates.go
package detect

import "math"

// Candidate is a potential QRS index inside a segment, carrying the absolute
// normalized voltage used for amplitude ranking.
type Candidate struct {
	Index int
	Amp   float64
}

// FindCandidates scans a mean-removed segment for local extrema that dominate
// a +/- WindowSec neighborhood and whose magnitude exceeds SigmaFactor times
// the segment's standard deviation. Both polarities qualify: a positive
// candidate must be >= the maximum of both neighbor windows, a negative one
// <= the minimum. The comparisons allow equality, so every index of a
// plateau qualifies; the refractory pass resolves such runs by amplitude.
// Indices closer than one window to either edge are never considered.
func FindCandidates(v []float64, fs float64, cfg Config) []Candidate {
	w := int(cfg.WindowSec * fs)
	if w <= 0 || len(v) <= 2*w {
		return nil
	}
	threshold := cfg.SigmaFactor * stdDev(v)

	var cands []Candidate
	for i := w; i < len(v)-w; i++ {
		x := v[i]
		if math.Abs(x) <= threshold {
			continue
		}
		switch {
		case x > 0 && x >= maxOf(v[i-w:i]) && x >= maxOf(v[i+1:i+w]):
			cands = append(cands, Candidate{Index: i, Amp: x})
		case x < 0 && x <= minOf(v[i-w:i]) && x <= minOf(v[i+1:i+w]):
			cands = append(cands, Candidate{Index: i, Amp: -x})
		}
	}
	return cands
}
