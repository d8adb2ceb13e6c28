package main

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	hilaria "github.com/rillian/hilaria"
)

// printListing writes the aligned address : text : note listing used
// while proofreading the transcription. Alignment is by terminal cell
// width, not code points, since Coptic glyphs and combining marks are
// not all one cell wide.
func printListing(w io.Writer, doc *hilaria.Document) {
	width := 0
	for _, ln := range doc.Lines {
		if n := runewidth.StringWidth(ln.Text); n > width {
			width = n
		}
	}
	for _, ln := range doc.Lines {
		fmt.Fprintf(w, "%5s : %s : %s\n",
			ln.Addr, runewidth.FillRight(ln.Text, width), ln.Note)
	}
	fmt.Fprintf(w, "Longest Coptic line is %d\n", doc.Longest)
}
