package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/rillian/hilaria/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "usage",
			err:  ErrUsage,
			want: ExitUsage,
		},
		{
			name: "wrapped extension error",
			err:  fmt.Errorf("%w: got %q", ErrInvalidExtension, ".txt"),
			want: ExitUsage,
		},
		{
			name: "config parse",
			err:  fmt.Errorf("%w: line 3", config.ErrConfigParse),
			want: ExitUsage,
		},
		{
			name: "unknown linter",
			err:  config.ErrUnknownLinter,
			want: ExitUsage,
		},
		{
			name: "config missing",
			err:  config.ErrConfigNotFound,
			want: ExitIO,
		},
		{
			name: "read failure",
			err:  fmt.Errorf("%w: permission denied", ErrReadCSV),
			want: ExitIO,
		},
		{
			name: "write failure",
			err:  ErrWriteOutput,
			want: ExitIO,
		},
		{
			name: "os not exist",
			err:  fmt.Errorf("opening: %w", os.ErrNotExist),
			want: ExitIO,
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: ExitGeneral,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
