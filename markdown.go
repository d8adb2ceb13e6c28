package hilaria

import (
	"fmt"
	"strings"
)

// Table column headers. The divider row repeats their widths so the
// raw Markdown stays readable next to the rendered form.
const (
	addrHeader = "address"
	textHeader = "text"
)

// RenderTable emits the document as a two-column Markdown table of
// address and stripped text, the intermediate form the HTML renderer
// consumes.
func RenderTable(doc *Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "| %s | %s |\n", addrHeader, textHeader)
	fmt.Fprintf(&b, "| %s | %s |\n",
		strings.Repeat("-", len(addrHeader)),
		strings.Repeat("-", len(textHeader)))
	for _, ln := range doc.Lines {
		fmt.Fprintf(&b, "| %s | %s |\n", ln.Addr, strings.TrimSpace(ln.Text))
	}
	return b.String()
}
