package hilaria

import (
	"fmt"
	"io"
	"sort"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/runenames"
)

// CharReport describes one distinct code point found in the transcription.
type CharReport struct {
	Glyph string // printable form; combining marks carried on a dotted circle
	Code  rune
	Name  string // Unicode character name, or a fallback label
}

// Inventory collects the distinct code points across all line text,
// sorted by code point value. Reporting only; the document is not
// touched.
func Inventory(doc *Document) []CharReport {
	seen := make(map[rune]bool)
	for _, ln := range doc.Lines {
		for _, r := range ln.Text {
			seen[r] = true
		}
	}

	runes := make([]rune, 0, len(seen))
	for r := range seen {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	out := make([]CharReport, 0, len(runes))
	for _, r := range runes {
		out = append(out, CharReport{
			Glyph: displayGlyph(r),
			Code:  r,
			Name:  charName(r),
		})
	}
	return out
}

// displayGlyph renders a code point so it stays visible in isolation:
// combining marks attach to U+25CC DOTTED CIRCLE, non-printables
// become a blank placeholder.
func displayGlyph(r rune) string {
	switch {
	case unicode.IsMark(r):
		return "◌" + string(r)
	case !unicode.IsGraphic(r):
		return " "
	}
	return string(r)
}

// charName looks up the Unicode character name, falling back to a
// label for unnamed code points.
func charName(r rune) string {
	if name := runenames.Name(r); name != "" {
		return name
	}
	return "(unnamed)"
}

// printInventory writes the character listing in aligned columns.
// Coptic glyphs are not all one terminal cell wide, hence runewidth.
func printInventory(w io.Writer, inv []CharReport) {
	for _, c := range inv {
		fmt.Fprintf(w, "%s U+%04X %s\n", runewidth.FillRight(c.Glyph, 2), c.Code, c.Name)
	}
}
