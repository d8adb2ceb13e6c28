package hilaria

import "io"

// Line is a single transcribed manuscript line.
type Line struct {
	Addr Addr   // manuscript locator, owned by this line
	Text string // Coptic transcription, may carry editorial markers
	Note string // free-text editorial comment, often empty

	// Inferred marks an address recovered by incrementing the previous
	// one because the row's own token did not parse. Inferred addresses
	// are exempt from the numbering-gap check.
	Inferred bool
}

// Document is the ordered transcription. It is built once by ingestion
// and read-only afterwards; every downstream stage shares the same copy.
type Document struct {
	Lines   []Line
	Longest int // longest Text across all lines, in code points
}

// Columns selects which record fields carry each line attribute.
type Columns struct {
	Addr int
	Text int
	Note int
}

// DefaultColumns matches the Google Docs spreadsheet export layout.
var DefaultColumns = Columns{Addr: 0, Text: 2, Note: 7}

// max of the used field indices; rows need at least this many fields.
func (c Columns) span() int {
	n := c.Addr
	if c.Text > n {
		n = c.Text
	}
	if c.Note > n {
		n = c.Note
	}
	return n + 1
}

// Input contains conversion parameters.
type Input struct {
	Records [][]string // raw CSV records, header row first (required)
	Title   string     // HTML document title (optional)
}

// Result holds everything the pipeline produced.
type Result struct {
	SGML        string       // tagged-markup serialization
	HTML        string       // standalone reading view
	Document    *Document    // the ingested lines, for listings
	Inventory   []CharReport // distinct code points, empty when disabled
	Diagnostics []Diagnostic // ingestion warnings plus all lint findings
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	out       io.Writer
	cols      Columns
	inventory bool
}

// WithOutput redirects diagnostic and inventory reporting.
// The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic("hilaria: WithOutput writer must not be nil")
	}
	return func(s *Service) {
		s.cfg.out = w
	}
}

// WithColumns overrides the spreadsheet column layout.
func WithColumns(c Columns) Option {
	return func(s *Service) {
		s.cfg.cols = c
	}
}

// WithLinters replaces the default lint passes. Calling it with no
// linters disables linting entirely.
func WithLinters(linters ...Linter) Option {
	return func(s *Service) {
		// Copy into a non-nil slice so an empty call is
		// distinguishable from the option being absent.
		s.linters = append([]Linter{}, linters...)
	}
}

// WithoutInventory disables the character inventory report.
func WithoutInventory() Option {
	return func(s *Service) {
		s.cfg.inventory = false
	}
}
