// core/edf/print.go
package edf

import (
	"fmt"
	"io"
	"strconv"
)

// DefaultPreview is how many decoded samples Fprint shows per signal.
const DefaultPreview = 10

// Fprint renders the fixed header, one line per signal, and a bounded
// preview of the decoded record data in physical units.
func Fprint(w io.Writer, f *File, preview int) error {
	h := f.Header
	records := "unknown"
	if h.RecordCount >= 0 {
		records = strconv.Itoa(h.RecordCount)
	}
	_, err := fmt.Fprintf(w, `version:    %s
patient:    %s
recording:  %s
records:    %s x %gs
signals:    %d
`, h.Version, h.Patient, h.Recording, records, h.RecordSec, h.SignalCount)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "Start datetime: %s\n", h.StartDatetime()); err != nil {
		return err
	}

	for i := range f.Signals {
		s := &f.Signals[i]
		_, err = fmt.Fprintf(w, "signal %d: %s [%s] %g..%g (digital %d..%d) %d samples/record\n",
			i, s.Label, s.PhysicalDim, s.PhysicalMin, s.PhysicalMax,
			s.DigitalMin, s.DigitalMax, s.SamplesPerRecord)
		if err != nil {
			return err
		}
	}
	if preview <= 0 {
		return nil
	}

	if _, err = fmt.Fprintln(w, "##data"); err != nil {
		return err
	}
	for i := range f.Signals {
		s := &f.Signals[i]
		n := preview
		if n > len(s.Samples) {
			n = len(s.Samples)
		}
		if _, err = fmt.Fprintf(w, "%s:", s.Label); err != nil {
			return err
		}
		for k := 0; k < n; k++ {
			if _, err = fmt.Fprintf(w, " %.2f", s.Physical(s.Samples[k])); err != nil {
				return err
			}
		}
		suffix := "\n"
		if len(s.Samples) > n {
			suffix = " ...\n"
		}
		if _, err = fmt.Fprint(w, suffix); err != nil {
			return err
		}
	}
	return nil
}
