// core/detect/config.go
package detect

// Config holds the detection constants. All durations are in seconds and are
// converted to sample counts against the inferred sampling frequency, with
// truncation. The zero value is not useful; start from DefaultConfig.
type Config struct {
	DefaultRate   float64 // assumed fs (Hz) when the series has fewer than two samples
	SegmentSec    float64 // analysis window length
	MinSegmentSec float64 // segments shorter than this are skipped
	WindowSec     float64 // neighborhood half-width a candidate must dominate
	SigmaFactor   float64 // amplitude threshold = SigmaFactor * stddev(segment)
	RefractorySec float64 // minimum spacing between selected peaks
	RefineSec     float64 // half-width of the R/S refinement window
	MinGapSec     float64 // cross-segment duplicate gap on final timestamps
}

// DefaultConfig returns the physiological defaults: 30 s segments with a 2 s
// floor (stable mean/sigma estimates without pathological short tails), a
// 150 ms dominance window at 2 sigma, a 500 ms refractory, an 80 ms
// refinement window, and a 200 ms duplicate gap.
func DefaultConfig() Config {
	return Config{
		DefaultRate:   200,
		SegmentSec:    30,
		MinSegmentSec: 2,
		WindowSec:     0.15,
		SigmaFactor:   2,
		RefractorySec: 0.5,
		RefineSec:     0.08,
		MinGapSec:     0.2,
	}
}
