// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// Detection is the JSON shape for one detected complex.
type Detection struct {
	Index int     `json:"index"`
	Time  float64 `json:"time"`
}

// WriteJSON writes detections as an indented JSON array.
func WriteJSON(w io.Writer, positions []float64) error {
	list := make([]Detection, len(positions))
	for i, p := range positions {
		list[i] = Detection{Index: i, Time: p}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
