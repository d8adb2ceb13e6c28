package hilaria

import (
	"fmt"
	"unicode/utf8"
)

// ingestor builds a Document from raw spreadsheet records.
type ingestor struct {
	cols Columns
}

// Ingest walks the records in order, resolving each row's address and
// attaching a fresh Addr value to every line. The first record is the
// header and is skipped. Numbering gaps are reported as warnings, not
// corrected; an unparsable first address is fatal because the sentinel
// cursor has nothing sensible to increment from.
func (g ingestor) Ingest(records [][]string) (*Document, []Diagnostic, error) {
	if len(records) < 2 {
		return nil, nil, ErrNoRows
	}
	rows := records[1:]

	doc := &Document{Lines: make([]Line, 0, len(rows))}
	var diags []Diagnostic
	var cursor Addr // sentinel 0.0

	for i, row := range rows {
		if len(row) < g.cols.span() {
			return nil, diags, fmt.Errorf("%w: row %d has %d fields, need %d",
				ErrShortRow, i+2, len(row), g.cols.span())
		}

		addr, err := ParseAddr(row[g.cols.Addr])
		inferred := false
		switch {
		case err != nil && i == 0:
			return nil, diags, fmt.Errorf("%w: %q", ErrFirstAddress, row[g.cols.Addr])
		case err != nil:
			addr = cursor.Next()
			inferred = true
		case addr.Page == cursor.Page && addr.Line != cursor.Line+1:
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Addr:     addr,
				Col:      -1,
				Message:  fmt.Sprintf("line %s follows %s, numbering gap", addr, cursor),
			})
		}
		cursor = addr

		text := row[g.cols.Text]
		if n := utf8.RuneCountInString(text); n > doc.Longest {
			doc.Longest = n
		}
		doc.Lines = append(doc.Lines, Line{
			Addr:     addr,
			Text:     text,
			Note:     row[g.cols.Note],
			Inferred: inferred,
		})
	}
	return doc, diags, nil
}
