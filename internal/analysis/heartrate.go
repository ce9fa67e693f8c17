// internal/analysis/heartrate.go

// Package analysis derives heart-rate statistics from detected QRS
// timestamps: instantaneous BPM from RR intervals plus RMSSD, the usual
// short-term variability measure.
package analysis

import (
	"fmt"
	"io"
	"math"
)

// Summary aggregates heart-rate statistics over one detection run.
type Summary struct {
	Beats   int
	MeanBPM float64
	MinBPM  float64
	MaxBPM  float64
	RMSSD   float64 // root mean square of successive RR differences, seconds
}

// Summarize converts detection timestamps into RR intervals and heart-rate
// statistics. The input must be strictly increasing, which the detector
// guarantees. Fewer than two detections yield a zero Summary with only the
// beat count filled in.
func Summarize(positions []float64) Summary {
	s := Summary{Beats: len(positions)}
	if len(positions) < 2 {
		return s
	}

	rr := make([]float64, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		rr[i-1] = positions[i] - positions[i-1]
	}

	s.MinBPM = math.Inf(1)
	s.MaxBPM = math.Inf(-1)
	sum := 0.0
	for _, d := range rr {
		bpm := 60.0 / d
		sum += bpm
		if bpm < s.MinBPM {
			s.MinBPM = bpm
		}
		if bpm > s.MaxBPM {
			s.MaxBPM = bpm
		}
	}
	s.MeanBPM = sum / float64(len(rr))

	if len(rr) > 1 {
		var ss float64
		for i := 1; i < len(rr); i++ {
			d := rr[i] - rr[i-1]
			ss += d * d
		}
		s.RMSSD = math.Sqrt(ss / float64(len(rr)-1))
	}
	return s
}

// FprintSummary renders a one-line human-readable heart-rate report.
func FprintSummary(w io.Writer, positions []float64) {
	s := Summarize(positions)
	if s.Beats < 2 {
		fmt.Fprintf(w, "Heart rate: n/a (%d beats)\n", s.Beats)
		return
	}
	fmt.Fprintf(w, "Heart rate: mean %.1f bpm (min %.1f, max %.1f), RMSSD %.0f ms over %d beats\n",
		s.MeanBPM, s.MinBPM, s.MaxBPM, s.RMSSD*1000, s.Beats)
}
