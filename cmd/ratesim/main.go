// main.go - ratesim: simulate a weighted plan file
//
// (c) 2024 Sudhi Herle <sw-at-herle.net>
//
// Copyright 2024- Sudhi Herle <sw-at-herle-dot-net>
// License: BSD-2-Clause
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// ratesim loads a plan file, draws from a dispatcher built from it
// and prints how often each task was chosen.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/opencoff/go-runrate"
	"github.com/opencoff/go-runrate/internal/planfile"
	"github.com/opencoff/go-runrate/internal/simulate"
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var xe *ExitError
		if errors.As(err, &xe) {
			fmt.Fprintln(os.Stderr, xe.Message)
			os.Exit(xe.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW, errW io.Writer, args []string) error {
	fs := flag.NewFlagSet("ratesim", flag.ContinueOnError)
	fs.SetOutput(errW)
	fs.Usage = func() {
		fmt.Fprint(errW, `
ratesim - simulate a weighted task plan.

Usage:
  ratesim [options] [PLAN_FILE]

Options:
`)
		fs.PrintDefaults()
	}

	planFlag := fs.String("plan", "", "Path to the HCL plan file.")
	nFlag := fs.Int("n", 100000, "Number of draws.")
	seedFlag := fs.Uint64("seed", 0, "Seed for a reproducible shuffle; 0 uses a CSPRNG.")
	logLevelFlag := fs.String("log-level", "info", "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := fs.String("log-format", "text", "Log output format: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	path := *planFlag
	if path == "" && fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if path == "" {
		fs.Usage()
		return &ExitError{Code: 2, Message: "ratesim: no plan file"}
	}
	if *nFlag < 0 {
		return &ExitError{Code: 2, Message: fmt.Sprintf("ratesim: invalid draw count %d", *nFlag)}
	}

	log := newLogger(strings.ToLower(*logLevelFlag), strings.ToLower(*logFormatFlag), errW)

	tasks, err := planfile.Load(path)
	if err != nil {
		return err
	}
	log.Debug("plan loaded", "path", path, "tasks", len(tasks))

	opts := []runrate.Option{runrate.WithLogger(log)}
	if *seedFlag != 0 {
		opts = append(opts, runrate.WithSource(rand.New(rand.NewPCG(*seedFlag, *seedFlag))))
	}

	b := runrate.NewBuilder[string](opts...)
	for _, t := range tasks {
		b.Add(t.Weight, t.Name)
	}

	d, err := b.Generate()
	if err != nil {
		return fmt.Errorf("ratesim: %s: %w", path, err)
	}

	tl, err := simulate.Run(d, *nFlag, nil)
	if err != nil {
		return err
	}
	log.Info("simulation done", "draws", tl.Total, "cycle", d.Len(), "cycles", d.Cycles())

	// registration order; counts line up with the registry
	counts := d.Counts()
	plans := b.Registry().Plans()

	tw := tabwriter.NewWriter(outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TASK\tWEIGHT\tPER-CYCLE\tDRAWS\tSHARE")
	for i, p := range plans {
		name := p.Task()
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.4f\n",
			name, p.Weight(), counts[i], tl.Count(name), tl.Share(name))
	}
	return tw.Flush()
}

// newLogger builds an isolated slog.Logger; the global default is
// left alone.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
