// core/ecg/sample.go
package ecg

// Sample is one ECG data point: a timestamp in seconds and a voltage in
// whatever units the recorder produced (raw ADC counts or millivolts). The
// detector never assumes a scale, so the units are opaque.
type Sample struct {
	Time    float64
	Voltage float64
}

// Voltages extracts the voltage column of a series.
func Voltages(series []Sample) []float64 {
	v := make([]float64, len(series))
	for i, s := range series {
		v[i] = s.Voltage
	}
	return v
}
