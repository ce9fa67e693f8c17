// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"ecgqrs/internal/version"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options holds all CLI flags for qrsd.
type Options struct {
	Input  string
	Output string
	Format string

	EDF    string
	Report bool
	Quiet  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: single-lead ECG QRS detector

Reads an ECG CSV (time,voltage rows after a header line) and writes one
detected R/S timestamp per line. With no flags it reads ecg.csv and writes
positions.txt in the current directory.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Input, "input", "ecg.csv", "ECG CSV file ('-' = stdin, .gz ok) [ecg.csv]")
	fs.StringVar(&opt.Output, "output", "positions.txt", "detections file ('-' = stdout) [positions.txt]")
	fs.StringVar(&opt.Format, "format", FormatText, "output format: text | json [text]")

	fs.StringVar(&opt.EDF, "edf", "", "print this EDF file's headers after detection [off]")
	fs.BoolVar(&opt.Report, "report", false, "print a heart-rate summary [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress diagnostics [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.Input == "" {
		return opt, errors.New("-input must not be empty")
	}
	if opt.Output == "" {
		return opt, errors.New("-output must not be empty")
	}
	if opt.Format != FormatText && opt.Format != FormatJSON {
		return opt, fmt.Errorf("invalid -format %q", opt.Format)
	}
	if args := fs.Args(); len(args) > 0 {
		return opt, fmt.Errorf("unexpected argument %q", args[0])
	}
	return opt, nil
}
