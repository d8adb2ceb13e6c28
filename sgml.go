package hilaria

import (
	"fmt"
	"strings"
)

// Inline editorial markers the transcribers embed in the text.
const (
	asteriskTag = "<pb_ed/>"           // '*' marks a page break in the printed edition
	sicTag      = `<note note="sic"/>` // "(sic)" flags a faithful copy of an error
)

// RenderSGML serializes the document as the tagged markup the ingest
// tooling consumes: one pb element per manuscript page, one lb element
// per line.
func RenderSGML(doc *Document) string {
	var b strings.Builder
	page := 0
	for _, ln := range doc.Lines {
		if ln.Addr.Page != page {
			if page != 0 {
				b.WriteString("</pb>\n")
			}
			fmt.Fprintf(&b, "<pb n=\"%d\">\n", ln.Addr.Page)
			page = ln.Addr.Page
		}
		fmt.Fprintf(&b, "<lb n=\"%d\"> %s\n", ln.Addr.Line, sgmlText(ln.Text))
	}
	if page != 0 {
		b.WriteString("</pb>\n")
	}
	return b.String()
}

// sgmlText substitutes inline markers and resolves the line ending.
// A trailing hyphen means the word continues on the next line, so the
// hyphen is dropped and the segmenter joins the halves. Every other
// line ends on a word boundary, which must be marked explicitly with
// an underscore or the segmenter silently concatenates across the
// line break.
func sgmlText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "*", asteriskTag)
	text = strings.ReplaceAll(text, "(sic)", sicTag)
	if strings.HasSuffix(text, "-") {
		return strings.TrimSuffix(text, "-")
	}
	return text + "_"
}
