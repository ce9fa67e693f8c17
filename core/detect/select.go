// core/detect/select.go
package detect

import "sort"

// SelectByRefractory ranks candidates by amplitude (largest first, stable on
// ties) and greedily keeps each one that lies strictly more than the
// refractory distance of floor(RefractorySec*fs) samples from every already
// kept index. The kept indices are returned in ascending order.
func SelectByRefractory(cands []Candidate, fs float64, cfg Config) []int {
	minDist := int(cfg.RefractorySec * fs)

	ranked := make([]Candidate, len(cands))
	copy(ranked, cands)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Amp > ranked[j].Amp })

	var kept []int
	for _, c := range ranked {
		isolated := true
		for _, j := range kept {
			d := c.Index - j
			if d < 0 {
				d = -d
			}
			if d <= minDist {
				isolated = false
				break
			}
		}
		if isolated {
			kept = append(kept, c.Index)
		}
	}
	sort.Ints(kept)
	return kept
}
