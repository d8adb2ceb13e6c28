// Package hilaria turns a spreadsheet export of the Life of Hilaria
// transcription into validated, structured text for the Coptic
// Scriptorium ingest tooling.
//
// # Quick Start
//
// Create a service, feed it the raw CSV records, and write the results:
//
//	svc := hilaria.New()
//	result, err := svc.Convert(ctx, hilaria.Input{
//	    Records: records,
//	    Title:   "ⲡⲃⲓⲟⲥ ⲛⲧⲙⲁⲕⲁⲣⲓⲁ ϩⲓⲗⲁⲣⲓⲁ",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hilaria.sgml", []byte(result.SGML), 0o644)
//	os.WriteFile("hilaria.html", []byte(result.HTML), 0o644)
//
// # Pipeline
//
// The conversion process follows these stages:
//
//  1. Ingestion: rows become addressed lines, recovering missing
//     page.line tokens and warning about numbering gaps
//  2. Character inventory: every distinct code point in the text,
//     reported with its codepoint and Unicode name
//  3. Lint passes: combining-mark, punctuation, whitespace, and
//     line-continuation conventions
//  4. Rendering: a tagged SGML fragment plus a Markdown table that
//     Goldmark converts into a standalone HTML reading view
//
// Lint findings are diagnostics, never failures; the pipeline always
// produces both serializations. Diagnostics and the inventory are
// written to the service's output writer (stdout by default).
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := hilaria.New(
//	    hilaria.WithOutput(io.Discard),
//	    hilaria.WithColumns(hilaria.Columns{Addr: 0, Text: 2, Note: 7}),
//	    hilaria.WithLinters(hilaria.MacronLinter{}),
//	)
package hilaria
