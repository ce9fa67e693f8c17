// internal/writers/detections_test.go
package writers

import (
	"strings"
	"testing"
)

func TestStartDetectionWriterText(t *testing.T) {
	var out strings.Builder
	in, errCh := StartDetectionWriter(&out, "text", 4)
	in <- 1.0
	in <- 2.5
	close(in)

	if err := <-errCh; err != nil {
		t.Fatalf("writer error: %v", err)
	}
	if out.String() != "1.000000\n2.500000\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestStartDetectionWriterJSON(t *testing.T) {
	var out strings.Builder
	in, errCh := StartDetectionWriter(&out, "json", 4)
	in <- 0.5
	close(in)

	if err := <-errCh; err != nil {
		t.Fatalf("writer error: %v", err)
	}
	if !strings.Contains(out.String(), `"time": 0.5`) {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestStartDetectionWriterUnknownFormatDrains(t *testing.T) {
	var out strings.Builder
	in, errCh := StartDetectionWriter(&out, "xml", 1)
	// More sends than the channel buffers: the goroutine must keep draining
	// even though the format is rejected, or this would deadlock.
	for i := 0; i < 16; i++ {
		in <- float64(i)
	}
	close(in)

	if err := <-errCh; err == nil {
		t.Fatal("expected error for unknown format")
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be written, got %q", out.String())
	}
}
