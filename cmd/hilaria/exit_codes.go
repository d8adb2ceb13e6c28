package main

import (
	"errors"
	"os"

	"github.com/rillian/hilaria/internal/config"
)

// Exit codes for the hilaria CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Pipeline completed, both files written
	ExitGeneral = 1 // General/unexpected error, including bad input data
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadCSV) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, config.ErrConfigNotFound) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrBadColumn) ||
		errors.Is(err, config.ErrUnknownLinter) {
		return ExitUsage
	}

	// Bad input data (short rows, unparseable first address) and
	// everything else: general.
	return ExitGeneral
}
