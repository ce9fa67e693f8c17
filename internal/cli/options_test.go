// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("qrsd")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgsDefaults(t *testing.T) {
	opt, err := parse(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Input != "ecg.csv" || opt.Output != "positions.txt" || opt.Format != FormatText {
		t.Fatalf("unexpected defaults: %+v", opt)
	}
	if opt.Quiet || opt.Report || opt.EDF != "" {
		t.Fatalf("optional features should default off: %+v", opt)
	}
}

func TestParseArgsOverrides(t *testing.T) {
	opt, err := parse(t,
		"-input", "lead2.csv.gz",
		"-output", "-",
		"-format", "json",
		"-report",
		"-quiet",
		"-edf", "rec.edf",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Input != "lead2.csv.gz" || opt.Output != "-" || opt.Format != FormatJSON {
		t.Fatalf("overrides not applied: %+v", opt)
	}
	if !opt.Report || !opt.Quiet || opt.EDF != "rec.edf" {
		t.Fatalf("boolean/EDF overrides not applied: %+v", opt)
	}
}

func TestParseArgsValidation(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"bad format", []string{"-format", "xml"}},
		{"empty input", []string{"-input", ""}},
		{"empty output", []string{"-output", ""}},
		{"positional argument", []string{"stray.csv"}},
		{"unknown flag", []string{"-bogus"}},
	}
	for _, tc := range tests {
		if _, err := parse(t, tc.argv...); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestParseArgsHelp(t *testing.T) {
	if _, err := parse(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("got %v, want flag.ErrHelp", err)
	}
}

func TestParseArgsVersion(t *testing.T) {
	for _, argv := range [][]string{{"-v"}, {"-version"}} {
		opt, err := parse(t, argv...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", argv, err)
		}
		if !opt.Version {
			t.Fatalf("%v: Version not set", argv)
		}
	}
}
