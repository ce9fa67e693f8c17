// internal/edfapp/app.go
package edfapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"ecgqrs-core/edf"
	"ecgqrs/internal/version"
	"ecgqrs/internal/writers"
)

// RunContext prints EDF headers and a data preview for each file argument.
// With no arguments it reads example.edf, the detector's historical
// companion file.
func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("edfcat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	preview := fs.Int("preview", edf.DefaultPreview, "record samples to print per signal (0 = headers only)")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "edfcat version %s\n", version.Version)
		return 0
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"example.edf"}
	}

	outw := bufio.NewWriter(stdout)
	for _, p := range paths {
		f, err := edf.ReadFile(p)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		if err := edf.Fprint(outw, f, *preview); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if err := outw.Flush(); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
