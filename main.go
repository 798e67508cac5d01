package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datatug/dirpeek/pkg/dirpeek"
	"github.com/datatug/dirpeek/pkg/logging"
	"github.com/spf13/pflag"
)

var osExit = os.Exit
var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr

var runBrowser = dirpeek.Run

func main() {
	osExit(run(os.Args[1:]))
}

func run(args []string) (exitCode int) {
	flags := pflag.NewFlagSet("dirpeek", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: dirpeek [options]\n\n")
		_, _ = fmt.Fprintf(stderr, "Browse the files of the current directory.\n")
		_, _ = fmt.Fprintf(stderr, "Keys: j next, k previous, q quit.\n\n")
		_, _ = fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
	}
	debug := flags.Bool("debug", false, "Log navigation and file load failures to stderr on exit")
	version := flags.BoolP("version", "V", false, "Print version information")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *version {
		_, _ = fmt.Fprintf(stdout, "dirpeek version %s\n", dirpeek.Version)
		return 0
	}

	log := logging.New(stderr, *debug)

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(stderr, "Recovered from panic: %v\n", r)
			exitCode = 1
		}
	}()

	if err := runBrowser(context.Background(), dirpeek.WithLogger(log)); err != nil {
		log.WithError(err).Error("dirpeek failed")
		return 1
	}
	return 0
}
