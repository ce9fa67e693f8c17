// internal/analysis/heartrate_test.go
package analysis

import (
	"math"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		positions []float64
		want      Summary
	}{
		{"none", nil, Summary{Beats: 0}},
		{"single beat", []float64{1.0}, Summary{Beats: 1}},
		{
			"steady 60 bpm",
			[]float64{0, 1, 2, 3},
			Summary{Beats: 4, MeanBPM: 60, MinBPM: 60, MaxBPM: 60, RMSSD: 0},
		},
		{
			"irregular",
			[]float64{0, 0.5, 1.5},
			Summary{Beats: 3, MeanBPM: 90, MinBPM: 60, MaxBPM: 120, RMSSD: 0.5},
		},
	}
	for _, tc := range tests {
		got := Summarize(tc.positions)
		if got.Beats != tc.want.Beats {
			t.Errorf("%s: beats: got %d, want %d", tc.name, got.Beats, tc.want.Beats)
		}
		if tc.want.Beats < 2 {
			continue
		}
		for _, f := range []struct {
			label     string
			got, want float64
		}{
			{"mean", got.MeanBPM, tc.want.MeanBPM},
			{"min", got.MinBPM, tc.want.MinBPM},
			{"max", got.MaxBPM, tc.want.MaxBPM},
			{"rmssd", got.RMSSD, tc.want.RMSSD},
		} {
			if math.Abs(f.got-f.want) > 1e-9 {
				t.Errorf("%s: %s: got %v, want %v", tc.name, f.label, f.got, f.want)
			}
		}
	}
}

func TestFprintSummary(t *testing.T) {
	var out strings.Builder
	FprintSummary(&out, []float64{0, 1, 2})
	if !strings.Contains(out.String(), "mean 60.0 bpm") {
		t.Fatalf("unexpected report: %q", out.String())
	}

	out.Reset()
	FprintSummary(&out, []float64{1.0})
	if !strings.Contains(out.String(), "n/a") {
		t.Fatalf("short input should report n/a, got %q", out.String())
	}
}
