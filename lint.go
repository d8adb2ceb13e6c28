package hilaria

import (
	"fmt"
	"strings"
	"unicode"
)

// Code points named by the manuscript-encoding conventions.
const (
	combMacron   = '̄' // combining macron, the preferred supralinear stroke
	combOverline = '̅' // combining overline, close but wrong
	combNiAbove  = '⳯' // Coptic combining ni above
	softHyphen   = '­'
	middleDot    = '·'
)

// Severity classifies a diagnostic.
type Severity int

// Diagnostic severities. Warnings are advisory; errors name text the
// ingest tooling downstream will mishandle.
const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one finding from ingestion or a lint pass.
type Diagnostic struct {
	Severity Severity
	Addr     Addr
	Col      int // code point offset within the line, -1 when not positional
	Message  string
}

func (d Diagnostic) String() string {
	if d.Col >= 0 {
		return fmt.Sprintf("%s %s:%d: %s", d.Severity, d.Addr, d.Col, d.Message)
	}
	return fmt.Sprintf("%s %s: %s", d.Severity, d.Addr, d.Message)
}

// Linter is a pure read pass over the document. Implementations never
// mutate the document or abort the pipeline; they only report.
type Linter interface {
	Lint(doc *Document) []Diagnostic
}

// DefaultLinters returns the standard manuscript-convention checks.
func DefaultLinters() []Linter {
	return []Linter{MacronLinter{}, PunctLinter{}, SpaceLinter{}, HyphenLinter{}}
}

// MacronLinter enforces the supralinear-stroke conventions: the
// combining macron U+0304 is the canonical stroke, and strokes spanning
// adjacent letters should use the conjoining half forms.
type MacronLinter struct{}

func (MacronLinter) Lint(doc *Document) []Diagnostic {
	var out []Diagnostic
	for _, ln := range doc.Lines {
		runes := []rune(ln.Text)
		if col := runeIndex(runes, combOverline); col >= 0 {
			out = append(out, Diagnostic{
				Severity: SeverityError,
				Addr:     ln.Addr,
				Col:      col,
				Message:  "combining overline U+0305; use combining macron U+0304",
			})
		}
		if col := runeIndex(runes, combNiAbove); col >= 0 {
			out = append(out, Diagnostic{
				Severity: SeverityError,
				Addr:     ln.Addr,
				Col:      col,
				Message:  "Coptic combining ni U+2CEF; use combining macron U+0304",
			})
		}
		// Two macrons with exactly one base character between them sit
		// on adjacent letters and should conjoin.
		prev := -1
		for i, r := range runes {
			if r != combMacron {
				continue
			}
			if prev >= 0 && i-prev == 2 {
				out = append(out, Diagnostic{
					Severity: SeverityWarning,
					Addr:     ln.Addr,
					Col:      i,
					Message:  "macrons on adjacent letters; use half macrons U+FE24/U+FE25",
				})
				break
			}
			prev = i
		}
	}
	return out
}

// PunctLinter flags Latin punctuation that the conventions replace with
// native marks. Only the first offence per rule per line is reported,
// and commas are only checked on lines without a full stop.
type PunctLinter struct{}

func (PunctLinter) Lint(doc *Document) []Diagnostic {
	var out []Diagnostic
	for _, ln := range doc.Lines {
		runes := []rune(ln.Text)
		if col := runeIndex(runes, '.'); col >= 0 {
			out = append(out, Diagnostic{
				Severity: SeverityError,
				Addr:     ln.Addr,
				Col:      col,
				Message:  fmt.Sprintf("full stop; use middle dot %c U+00B7", middleDot),
			})
			continue
		}
		if col := runeIndex(runes, ','); col >= 0 {
			out = append(out, Diagnostic{
				Severity: SeverityError,
				Addr:     ln.Addr,
				Col:      col,
				Message:  "comma is not native punctuation",
			})
		}
	}
	return out
}

// SpaceLinter flags lines whose text differs from its stripped form.
// One message per offending line, most specific case first.
type SpaceLinter struct{}

func (SpaceLinter) Lint(doc *Document) []Diagnostic {
	var out []Diagnostic
	for _, ln := range doc.Lines {
		text := ln.Text
		if text == strings.TrimSpace(text) {
			continue
		}
		runes := []rune(text)
		first := unicode.IsSpace(runes[0])
		last := unicode.IsSpace(runes[len(runes)-1])

		var msg string
		switch {
		case strings.HasSuffix(text, "\n"):
			msg = fmt.Sprintf("extra newline after %q", lastRunes(strings.TrimSuffix(text, "\n"), 9))
		case first && last:
			msg = "leading and trailing whitespace"
		case first:
			msg = "leading whitespace"
		default:
			msg = "trailing whitespace"
		}
		out = append(out, Diagnostic{
			Severity: SeverityWarning,
			Addr:     ln.Addr,
			Col:      -1,
			Message:  msg,
		})
	}
	return out
}

// HyphenLinter flags invisible soft hyphens; line continuations are
// marked with a plain hyphen the SGML renderer understands.
type HyphenLinter struct{}

func (HyphenLinter) Lint(doc *Document) []Diagnostic {
	var out []Diagnostic
	for _, ln := range doc.Lines {
		if col := runeIndex([]rune(ln.Text), softHyphen); col >= 0 {
			out = append(out, Diagnostic{
				Severity: SeverityWarning,
				Addr:     ln.Addr,
				Col:      col,
				Message:  "soft hyphen U+00AD; use plain hyphen -",
			})
		}
	}
	return out
}

// runeIndex returns the code point offset of the first occurrence of r,
// or -1. Byte offsets from strings.IndexRune would misreport columns in
// Coptic text.
func runeIndex(runes []rune, r rune) int {
	for i, c := range runes {
		if c == r {
			return i
		}
	}
	return -1
}

// lastRunes returns up to n trailing code points of s.
func lastRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
