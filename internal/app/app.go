// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"ecgqrs-core/detect"
	"ecgqrs-core/ecg"
	"ecgqrs-core/edf"
	"ecgqrs/internal/analysis"
	"ecgqrs/internal/cli"
	"ecgqrs/internal/version"
	"ecgqrs/internal/writers"
)

// RunContext parses argv, runs QRS detection over the input CSV, and writes
// the detections file. Progress diagnostics go to stdout, or to stderr when
// the detections themselves stream to stdout. The output file is created
// only after detection has completed, and empty input exits 0 without
// writing one.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("qrsd")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "qrsd version %s\n", version.Version)
		return 0
	}

	diag := stdout
	if opts.Output == "-" {
		diag = stderr
	}

	if !opts.Quiet {
		if wd, werr := os.Getwd(); werr == nil {
			fmt.Fprintf(diag, "Current directory: %s\n", wd)
		}
		fmt.Fprintf(diag, "Reading from: %s\n", opts.Input)
	}

	series, err := ecg.ReadFileCtx(parent, opts.Input)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	if len(series) == 0 {
		fmt.Fprintln(diag, "No data found in the ECG file")
		return 0
	}
	if !opts.Quiet {
		fmt.Fprintf(diag, "Total data points: %d\n", len(series))
	}

	det := detect.New(detect.DefaultConfig())
	if !opts.Quiet {
		fmt.Fprintf(diag, "Detected sampling frequency: %.2f Hz\n", det.Rate(series))
	}

	positions, err := det.DetectCtx(parent, series)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}

	if !opts.Quiet {
		fmt.Fprintf(diag, "Writing to: %s\n", opts.Output)
		fmt.Fprintf(diag, "Found %d QRS complexes\n", len(positions))
	}

	if code := writeDetections(opts, positions, stdout, stderr); code != 0 {
		return code
	}

	if !opts.Quiet {
		fmt.Fprintln(diag, "Detection complete.")
	}
	if opts.Report {
		analysis.FprintSummary(diag, positions)
	}

	if opts.EDF != "" {
		f, err := edf.ReadFile(opts.EDF)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		if err := edf.Fprint(diag, f, edf.DefaultPreview); err != nil && !writers.IsBrokenPipe(err) {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func writeDetections(opts cli.Options, positions []float64, stdout, stderr io.Writer) int {
	var (
		dst     io.Writer
		closeFn func() error
	)
	if opts.Output == "-" {
		bw := bufio.NewWriter(stdout)
		dst = bw
		closeFn = bw.Flush
	} else {
		fh, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		bw := bufio.NewWriter(fh)
		dst = bw
		closeFn = func() error {
			if err := bw.Flush(); err != nil {
				_ = fh.Close()
				return err
			}
			return fh.Close()
		}
	}

	in, writeErr := writers.StartDetectionWriter(dst, opts.Format, 64)
	for _, p := range positions {
		in <- p
	}
	close(in)

	if err := <-writeErr; err != nil && !writers.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if err := closeFn(); err != nil && !writers.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
