package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the hilaria command.
type cliFlags struct {
	config   string
	outDir   string
	title    string
	htmlOnly bool
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses the argument list, returning the flags and the
// remaining positional arguments (the input CSV path).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors reported by the caller

	flags := &cliFlags{}
	fs.StringVarP(&flags.config, "config", "c", "", "path to YAML config file")
	fs.StringVarP(&flags.outDir, "out-dir", "o", "", "directory for output files (default: alongside input)")
	fs.StringVarP(&flags.title, "title", "t", "", "HTML document title")
	fs.BoolVar(&flags.htmlOnly, "html-only", false, "write only the HTML reading view")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress diagnostics and the character inventory")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "print the aligned line listing")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}
