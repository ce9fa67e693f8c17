// internal/writers/detections.go
package writers

import (
	"fmt"
	"io"

	"ecgqrs/internal/output"
)

// StartDetectionWriter spins up a writer goroutine for detected timestamps.
// The returned channel accepts timestamps in output order; the error channel
// yields the first write error after the input channel is closed. The
// goroutine always drains its input, so producers never block on a failed
// writer.
func StartDetectionWriter(out io.Writer, format string, bufSize int) (chan<- float64, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan float64, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []float64
			for p := range in {
				buf = append(buf, p)
			}
			err = output.WriteJSON(out, buf)
		case "text":
			err = output.StreamText(out, in)
		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
