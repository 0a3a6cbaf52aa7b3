// internal/app/app.go
package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"

	"goprop/internal/cli"
	"goprop/internal/cmdutil"
	"goprop/internal/inputs"
	"goprop/internal/pipeline"
	"goprop/internal/version"
	"goprop/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 1 // bad arguments or missing input file
	ExitInput     = 2 // malformed input table
	ExitWrite     = 3
	ExitCancelled = 130
)

const name = "goprop"

// Run parses argv and runs the tool against the host filesystem.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunFS(parent, inputs.OS(), argv, stdout, stderr)
}

// RunFS is RunContext with an explicit filesystem for the input files.
func RunFS(parent context.Context, fsys billy.Filesystem, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(outw, fs, name)
			return flush(outw, stderr, ExitOK)
		}
		if errors.Is(err, cli.ErrUsage) {
			_, _ = fmt.Fprintf(stderr, cli.UsageLine, name)
			return ExitUsage
		}
		_, _ = fmt.Fprintln(stderr, err)
		_, _ = fmt.Fprintf(stderr, cli.UsageLine, name)
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, ExitOK)
	}

	for _, p := range []string{opts.AnnotationFile, opts.HierarchyFile} {
		if err := inputs.CheckRegular(fsys, p); err != nil {
			if errors.Is(err, inputs.ErrNotRegular) {
				_, _ = fmt.Fprintf(stderr, "Error: File not found - %s\n", p)
			} else {
				_, _ = fmt.Fprintln(stderr, "Error:", err)
			}
			return ExitUsage
		}
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	res, err := pipeline.Run(parent, fsys, pipeline.Config{
		AnnotationFile: opts.AnnotationFile,
		HierarchyFile:  opts.HierarchyFile,
		Top:            opts.Top,
		Lenient:        opts.Lenient,
		OnSkip: func(src pipeline.Source, line int, err error) {
			cmdutil.Warnf(stderr, opts.Quiet, "%s: skipped line %d: %v", src, line, err)
		},
		Logger: log,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCancelled
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitInput
	}

	// Render fully before touching stdout so a failed run prints nothing.
	var report bytes.Buffer
	if err := writers.Write(opts.Output, &report, res.Entries, writers.Options{Header: opts.Header}); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	if _, err := report.WriteTo(outw); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return flush(outw, stderr, ExitOK)
}

// flush reports write failures as ExitWrite; a closed downstream pipe is not a failure.
func flush(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return code
}
