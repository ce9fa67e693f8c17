// core/detect/refine.go
package detect

import (
	"math"

	"ecgqrs-core/ecg"
)

// RefinePeaks snaps each selected index onto the true R or S sample: within
// +/- floor(RefineSec*fs) samples of the index it finds the sample of
// maximum absolute voltage (first occurrence on ties) and emits that
// sample's timestamp. It reads the original, non-normalized segment, so the
// winner is the genuine extremum regardless of sign or baseline offset.
func RefinePeaks(seg []ecg.Sample, idxs []int, fs float64, cfg Config) []float64 {
	r := int(cfg.RefineSec * fs)
	out := make([]float64, 0, len(idxs))
	for _, i := range idxs {
		s := i - r
		if s < 0 {
			s = 0
		}
		e := i + r
		if e > len(seg) {
			e = len(seg)
		}
		if s >= e {
			continue
		}
		best := s
		bestAbs := math.Abs(seg[s].Voltage)
		for k := s + 1; k < e; k++ {
			if a := math.Abs(seg[k].Voltage); a > bestAbs {
				best, bestAbs = k, a
			}
		}
		out = append(out, seg[best].Time)
	}
	return out
}
