// core/edf/edf.go

// Package edf reads European Data Format files: the fixed 256-byte header,
// the per-signal header block, and the 16-bit little-endian data records.
package edf

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Header is the fixed part of an EDF file header. The textual fields are
// stored as written, trimmed of padding.
type Header struct {
	Version     string
	Patient     string
	Recording   string
	StartDate   string // dd.mm.yy
	StartTime   string // hh.mm.ss
	HeaderBytes int
	Reserved    string
	RecordCount int // -1 when the writer did not know
	RecordSec   float64
	SignalCount int
}

// StartDatetime joins the raw date and time header fields.
func (h Header) StartDatetime() string { return h.StartDate + " " + h.StartTime }

// Signal is one channel's header plus its decoded samples, concatenated
// across all data records.
type Signal struct {
	Label            string
	Transducer       string
	PhysicalDim      string
	PhysicalMin      float64
	PhysicalMax      float64
	DigitalMin       int
	DigitalMax       int
	Prefilter        string
	SamplesPerRecord int
	Samples          []int16
}

// Physical converts a digital sample to physical units using the signal's
// calibration range. A degenerate digital range returns the raw value.
func (s *Signal) Physical(v int16) float64 {
	den := float64(s.DigitalMax - s.DigitalMin)
	if den == 0 {
		return float64(v)
	}
	scale := (s.PhysicalMax - s.PhysicalMin) / den
	return s.PhysicalMin + (float64(v)-float64(s.DigitalMin))*scale
}

// File is a fully decoded EDF file.
type File struct {
	Header  Header
	Signals []Signal
}

// ReadFile opens and decodes path.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	f, err := Read(bufio.NewReader(fh))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Read decodes an EDF stream. When the header declares an unknown record
// count (-1), records are read until EOF.
func Read(r io.Reader) (*File, error) {
	var hdr [256]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("edf: header: %w", err)
	}
	fr := fieldReader{buf: hdr[:]}

	var (
		f   File
		err error
	)
	f.Header.Version = fr.str(8)
	f.Header.Patient = fr.str(80)
	f.Header.Recording = fr.str(80)
	f.Header.StartDate = fr.str(8)
	f.Header.StartTime = fr.str(8)
	if f.Header.HeaderBytes, err = fr.int(8); err != nil {
		return nil, fmt.Errorf("edf: header bytes: %w", err)
	}
	f.Header.Reserved = fr.str(44)
	if f.Header.RecordCount, err = fr.int(8); err != nil {
		return nil, fmt.Errorf("edf: record count: %w", err)
	}
	if f.Header.RecordSec, err = fr.float(8); err != nil {
		return nil, fmt.Errorf("edf: record duration: %w", err)
	}
	if f.Header.SignalCount, err = fr.int(4); err != nil {
		return nil, fmt.Errorf("edf: signal count: %w", err)
	}
	ns := f.Header.SignalCount
	if ns <= 0 || ns > 4096 {
		return nil, fmt.Errorf("edf: implausible signal count %d", ns)
	}

	sh := make([]byte, 256*ns)
	if _, err := io.ReadFull(r, sh); err != nil {
		return nil, fmt.Errorf("edf: signal headers: %w", err)
	}
	f.Signals = make([]Signal, ns)
	sf := fieldReader{buf: sh}
	// The signal header block is field-major: each field is stored for every
	// signal in turn.
	for i := range f.Signals {
		f.Signals[i].Label = sf.str(16)
	}
	for i := range f.Signals {
		f.Signals[i].Transducer = sf.str(80)
	}
	for i := range f.Signals {
		f.Signals[i].PhysicalDim = sf.str(8)
	}
	for i := range f.Signals {
		if f.Signals[i].PhysicalMin, err = sf.float(8); err != nil {
			return nil, fmt.Errorf("edf: signal %d physical min: %w", i, err)
		}
	}
	for i := range f.Signals {
		if f.Signals[i].PhysicalMax, err = sf.float(8); err != nil {
			return nil, fmt.Errorf("edf: signal %d physical max: %w", i, err)
		}
	}
	for i := range f.Signals {
		if f.Signals[i].DigitalMin, err = sf.int(8); err != nil {
			return nil, fmt.Errorf("edf: signal %d digital min: %w", i, err)
		}
	}
	for i := range f.Signals {
		if f.Signals[i].DigitalMax, err = sf.int(8); err != nil {
			return nil, fmt.Errorf("edf: signal %d digital max: %w", i, err)
		}
	}
	for i := range f.Signals {
		f.Signals[i].Prefilter = sf.str(80)
	}
	for i := range f.Signals {
		if f.Signals[i].SamplesPerRecord, err = sf.int(8); err != nil {
			return nil, fmt.Errorf("edf: signal %d samples/record: %w", i, err)
		}
		if n := f.Signals[i].SamplesPerRecord; n < 0 {
			return nil, fmt.Errorf("edf: signal %d: negative samples/record %d", i, n)
		}
	}

	recordBytes := 0
	for i := range f.Signals {
		recordBytes += 2 * f.Signals[i].SamplesPerRecord
	}
	records := f.Header.RecordCount
	if recordBytes == 0 {
		// Zero-width records carry no data; reading "until EOF" would spin.
		return &f, nil
	}
	for rec := 0; records < 0 || rec < records; rec++ {
		first := true
		for i := range f.Signals {
			n := f.Signals[i].SamplesPerRecord
			raw := make([]byte, 2*n)
			if _, err := io.ReadFull(r, raw); err != nil {
				if records < 0 && first && errors.Is(err, io.EOF) {
					return &f, nil
				}
				return nil, fmt.Errorf("edf: record %d: %w", rec, err)
			}
			first = false
			for k := 0; k < n; k++ {
				f.Signals[i].Samples = append(f.Signals[i].Samples,
					int16(binary.LittleEndian.Uint16(raw[2*k:])))
			}
		}
	}
	return &f, nil
}

// fieldReader walks the fixed-width ASCII fields of an EDF header.
type fieldReader struct {
	buf []byte
	off int
}

func (fr *fieldReader) str(n int) string {
	s := strings.TrimSpace(string(fr.buf[fr.off : fr.off+n]))
	fr.off += n
	return s
}

func (fr *fieldReader) int(n int) (int, error) {
	s := fr.str(n)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func (fr *fieldReader) float(n int) (float64, error) {
	s := fr.str(n)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
