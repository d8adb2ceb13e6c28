package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantRest int
		check    func(t *testing.T, f *cliFlags)
	}{
		{
			name:     "positional only",
			args:     []string{"hilaria", "in.csv"},
			wantRest: 1,
			check: func(t *testing.T, f *cliFlags) {
				if f.quiet || f.verbose || f.htmlOnly {
					t.Errorf("flags unexpectedly set: %+v", f)
				}
			},
		},
		{
			name:     "long flags",
			args:     []string{"hilaria", "--config", "h.yaml", "--out-dir", "out", "--html-only", "in.csv"},
			wantRest: 1,
			check: func(t *testing.T, f *cliFlags) {
				if f.config != "h.yaml" || f.outDir != "out" || !f.htmlOnly {
					t.Errorf("flags = %+v", f)
				}
			},
		},
		{
			name:     "short flags",
			args:     []string{"hilaria", "-q", "-v", "-t", "Hilaria", "in.csv"},
			wantRest: 1,
			check: func(t *testing.T, f *cliFlags) {
				if !f.quiet || !f.verbose || f.title != "Hilaria" {
					t.Errorf("flags = %+v", f)
				}
			},
		},
		{
			name:     "version without input",
			args:     []string{"hilaria", "--version"},
			wantRest: 0,
			check: func(t *testing.T, f *cliFlags) {
				if !f.version {
					t.Error("version flag not set")
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, rest, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags unexpected error: %v", err)
			}
			if len(rest) != tt.wantRest {
				t.Errorf("rest = %v, want %d args", rest, tt.wantRest)
			}
			tt.check(t, flags)
		})
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"hilaria", "--bogus"}); err == nil {
		t.Error("unknown flag should fail")
	}
}
