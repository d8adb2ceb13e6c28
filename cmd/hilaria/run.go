package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	hilaria "github.com/rillian/hilaria"
	"github.com/rillian/hilaria/internal/config"
	"github.com/rillian/hilaria/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("usage: hilaria [flags] <transcription.csv>")
	ErrInvalidExtension = errors.New("input must have a .csv extension")
	ErrReadCSV          = errors.New("failed to read CSV")
	ErrWriteOutput      = errors.New("failed to write output")
)

// run parses arguments, reads the CSV export, runs the pipeline, and
// writes the two serializations alongside the input.
func run(args []string, stdout io.Writer) error {
	flags, rest, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if flags.version {
		fmt.Fprintf(stdout, "hilaria %s\n", Version)
		return nil
	}

	if len(rest) != 1 {
		return ErrUsage
	}
	inputPath := rest[0]
	if filepath.Ext(inputPath) != ".csv" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	if flags.outDir != "" {
		cfg.Output.Dir = flags.outDir
	}
	if flags.title != "" {
		cfg.HTML.Title = flags.title
	}

	records, err := readRecords(inputPath)
	if err != nil {
		return err
	}

	diagOut := stdout
	if flags.quiet {
		diagOut = io.Discard
	}
	svc := hilaria.New(serviceOptions(cfg, diagOut, flags.quiet)...)

	result, err := svc.Convert(context.Background(), hilaria.Input{
		Records: records,
		Title:   cfg.HTML.Title,
	})
	if err != nil {
		return err
	}

	if flags.verbose {
		printListing(stdout, result.Document)
	}

	htmlPath := fileutil.WithDir(fileutil.SiblingPath(inputPath, ".html"), cfg.Output.Dir)
	if !flags.htmlOnly {
		sgmlPath := fileutil.WithDir(fileutil.SiblingPath(inputPath, ".sgml"), cfg.Output.Dir)
		if err := writeOutput(sgmlPath, result.SGML); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Created %s\n", sgmlPath)
	}
	if err := writeOutput(htmlPath, result.HTML); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Created %s\n", htmlPath)
	return nil
}

// loadConfig resolves the run configuration: explicit path, or defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// serviceOptions translates config and flags into library options.
func serviceOptions(cfg config.Config, diagOut io.Writer, quiet bool) []hilaria.Option {
	opts := []hilaria.Option{
		hilaria.WithOutput(diagOut),
		hilaria.WithColumns(hilaria.Columns{
			Addr: cfg.Columns.Address,
			Text: cfg.Columns.Text,
			Note: cfg.Columns.Note,
		}),
	}
	if quiet {
		opts = append(opts, hilaria.WithoutInventory())
	}

	if len(cfg.Lint.Disable) > 0 {
		var linters []hilaria.Linter
		if !cfg.Disabled("macron") {
			linters = append(linters, hilaria.MacronLinter{})
		}
		if !cfg.Disabled("punctuation") {
			linters = append(linters, hilaria.PunctLinter{})
		}
		if !cfg.Disabled("whitespace") {
			linters = append(linters, hilaria.SpaceLinter{})
		}
		if !cfg.Disabled("continuation") {
			linters = append(linters, hilaria.HyphenLinter{})
		}
		opts = append(opts, hilaria.WithLinters(linters...))
	}
	return opts
}

// readRecords reads all CSV records. Rows may vary in width; the
// ingestor checks each row has the fields it needs.
func readRecords(path string) ([][]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is the user's input argument
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadCSV, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadCSV, err)
	}
	return records, nil
}

// writeOutput writes one serialization to disk.
func writeOutput(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
