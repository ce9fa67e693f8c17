// core/ecg/reader_test.go
package ecg

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []Sample
		wantErr bool
	}{
		{
			name: "basic",
			in:   "time,voltage\n0.000,1.5\n0.005,-2.25\n",
			want: []Sample{{0, 1.5}, {0.005, -2.25}},
		},
		{
			name: "header discarded even when numeric",
			in:   "0.0,9.9\n0.005,1.0\n",
			want: []Sample{{0.005, 1.0}},
		},
		{
			name: "fields trimmed",
			in:   "t,v\n  0.01 ,\t3.5 \n",
			want: []Sample{{0.01, 3.5}},
		},
		{
			name: "wrong field counts skipped",
			in:   "t,v\njunk\n1,2,3\n0.02,4.0\n",
			want: []Sample{{0.02, 4.0}},
		},
		{
			name: "blank lines skipped",
			in:   "t,v\n\n0.03,1.0\n",
			want: []Sample{{0.03, 1.0}},
		},
		{
			name: "header only",
			in:   "time,voltage\n",
			want: nil,
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name:    "bad voltage is fatal",
			in:      "t,v\n0.0,oops\n",
			wantErr: true,
		},
		{
			name:    "bad time is fatal",
			in:      "t,v\nxx,1.0\n",
			wantErr: true,
		},
		{
			name:    "non-finite value rejected",
			in:      "t,v\n0.0,NaN\n",
			wantErr: true,
		},
		{
			name:    "infinite value rejected",
			in:      "t,v\n0.0,+Inf\n",
			wantErr: true,
		},
	}
	for _, tc := range tests {
		got, err := ReadCSV(strings.NewReader(tc.in))
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %v", tc.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: sample %d: got %v, want %v", tc.name, i, got[i], tc.want[i])
			}
		}
	}
}

func TestReadCSVErrorNamesLine(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("t,v\n0.0,1.0\n0.005,bad\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error should name line 3, got %v", err)
	}
}

func TestReadFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecg.csv.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte("time,voltage\n0.0,1.0\n0.005,2.0\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 2 || got[1].Voltage != 2.0 {
		t.Fatalf("got %v, want 2 samples ending at voltage 2", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadCSVCtxCanceled(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("time,voltage\n")
	for i := 0; i < 10000; i++ {
		sb.WriteString("0.0,1.0\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadCSVCtx(ctx, strings.NewReader(sb.String()))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got err %v, want context.Canceled", err)
	}
}
