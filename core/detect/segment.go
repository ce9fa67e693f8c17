// core/detect/segment.go
package detect

// segmentBounds partitions [0,n) into consecutive [start,end) windows of
// segLen samples. The tail remainder becomes its own window; any window
// shorter than minLen samples is dropped rather than emitted.
func segmentBounds(n, segLen, minLen int) [][2]int {
	if n <= 0 || segLen <= 0 {
		return nil
	}
	var out [][2]int
	for start := 0; start < n; start += segLen {
		end := start + segLen
		if end > n {
			end = n
		}
		if end-start < minLen {
			continue
		}
		out = append(out, [2]int{start, end})
	}
	return out
}
