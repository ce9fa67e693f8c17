// core/ecg/reader.go
package ecg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ctxCheckEvery bounds how many lines are scanned between cancellation checks.
const ctxCheckEvery = 4096

var errNonFinite = errors.New("value is not finite")

// ReadCSV parses "(time,voltage)" rows from r.
//
// The first line is a header and is discarded without inspection. Every later
// line with exactly two comma-separated fields contributes a Sample; fields
// are trimmed of surrounding whitespace and parsed as decimals. Lines with
// any other field count are silently skipped. A parse failure on a kept line
// (including NaN or infinite values) is fatal and names the line number.
func ReadCSV(r io.Reader) ([]Sample, error) {
	return ReadCSVCtx(context.Background(), r)
}

// ReadCSVCtx is the cancelable variant of ReadCSV.
func ReadCSVCtx(ctx context.Context, r io.Reader) ([]Sample, error) {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, 8*1024*1024)

	var data []Sample
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header, never inspected
		}
		if lineNo%ctxCheckEvery == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		parts := strings.Split(sc.Text(), ",")
		if len(parts) != 2 {
			continue
		}
		t, err := parseField(parts[0])
		if err != nil {
			return nil, fmt.Errorf("ecg: line %d: bad time %q: %w", lineNo, strings.TrimSpace(parts[0]), err)
		}
		v, err := parseField(parts[1])
		if err != nil {
			return nil, fmt.Errorf("ecg: line %d: bad voltage %q: %w", lineNo, strings.TrimSpace(parts[1]), err)
		}
		data = append(data, Sample{Time: t, Voltage: v})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ecg: scan: %w", err)
	}
	return data, nil
}

func parseField(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNonFinite
	}
	return f, nil
}
