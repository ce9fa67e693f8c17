// core/detect/rate.go
package detect

import "ecgqrs-core/ecg"

// SampleRate infers the sampling frequency from the first two timestamps.
// Series shorter than two samples fall back to def (Hz). Later intervals are
// not validated; the series is assumed uniformly sampled, and non-uniform
// input is neither detected nor interpolated.
func SampleRate(series []ecg.Sample, def float64) float64 {
	if len(series) < 2 {
		return def
	}
	return 1.0 / (series[1].Time - series[0].Time)
}
