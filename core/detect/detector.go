// core/detect/detector.go

// Package detect implements offline QRS detection over a single-lead ECG
// series. The signal is cut into 30 s segments, each segment is mean-removed
// and scanned for local extrema that dominate a 150 ms neighborhood above an
// adaptive 2-sigma threshold, survivors of a 500 ms refractory pass are
// snapped onto the raw R/S sample within 80 ms, and the per-segment results
// are merged under a 200 ms duplicate guard. Thresholds are derived from the
// data, so detection is invariant to voltage scale and offset.
package detect

import (
	"context"

	"ecgqrs-core/ecg"
)

// Detector runs the detection pipeline with a fixed Config. It is stateless
// between calls and safe for concurrent use on independent inputs.
type Detector struct {
	cfg Config
}

// New creates a Detector.
func New(cfg Config) *Detector { return &Detector{cfg: cfg} }

// Rate reports the sampling frequency Detect would use for series.
func (d *Detector) Rate(series []ecg.Sample) float64 {
	return SampleRate(series, d.cfg.DefaultRate)
}

// Detect returns the timestamps of detected QRS complexes, strictly
// increasing with at least MinGapSec between neighbors. Every returned value
// is the Time field of some input sample; nothing is interpolated. An empty
// series yields an empty result.
func (d *Detector) Detect(series []ecg.Sample) []float64 {
	out, _ := d.DetectCtx(context.Background(), series)
	return out
}

// DetectCtx is Detect with cancellation between segments.
func (d *Detector) DetectCtx(ctx context.Context, series []ecg.Sample) ([]float64, error) {
	if len(series) == 0 {
		return nil, nil
	}
	fs := SampleRate(series, d.cfg.DefaultRate)
	segLen := int(d.cfg.SegmentSec * fs)
	minLen := int(d.cfg.MinSegmentSec * fs)

	var all []float64
	for _, b := range segmentBounds(len(series), segLen, minLen) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seg := series[b[0]:b[1]]
		v := normalize(seg)
		cands := FindCandidates(v, fs, d.cfg)
		idxs := SelectByRefractory(cands, fs, d.cfg)
		all = append(all, RefinePeaks(seg, idxs, fs, d.cfg)...)
	}
	return DedupeTimes(all, d.cfg.MinGapSec), nil
}

// normalize returns seg's voltages with the segment mean removed. The
// normalized array feeds candidate detection and thresholding only;
// refinement reads the original voltages.
func normalize(seg []ecg.Sample) []float64 {
	v := ecg.Voltages(seg)
	m := mean(v)
	for i := range v {
		v[i] -= m
	}
	return v
}
