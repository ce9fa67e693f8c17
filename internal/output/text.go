// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// WriteText prints one detection per line with exactly six fractional
// digits, the positions.txt contract.
func WriteText(w io.Writer, positions []float64) error {
	for _, p := range positions {
		if _, err := fmt.Fprintf(w, "%.6f\n", p); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is the channel-fed form of WriteText. It returns on the first
// write error; callers drain the channel.
func StreamText(w io.Writer, in <-chan float64) error {
	for p := range in {
		if _, err := fmt.Fprintf(w, "%.6f\n", p); err != nil {
			return err
		}
	}
	return nil
}
