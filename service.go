package hilaria

import (
	"context"
	"fmt"
	"os"
)

// Service orchestrates the transcription pipeline.
type Service struct {
	cfg           serviceConfig
	htmlConverter htmlConverter
	linters       []Linter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithOutput).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			out:       os.Stdout,
			cols:      DefaultColumns,
			inventory: true,
		},
		htmlConverter: newGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.linters == nil {
		s.linters = DefaultLinters()
	}
	return s
}

// Convert runs the full pipeline: ingest, inventory, lint, render.
// Lint findings never fail the conversion; both serializations are
// always produced. Diagnostics and the inventory are written to the
// configured output as they are found, in document order per pass.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	doc, diags, err := ingestor{cols: s.cfg.cols}.Ingest(input.Records)
	if err != nil {
		return nil, fmt.Errorf("ingesting rows: %w", err)
	}
	for _, d := range diags {
		fmt.Fprintln(s.cfg.out, d)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var inv []CharReport
	if s.cfg.inventory {
		inv = Inventory(doc)
		printInventory(s.cfg.out, inv)
	}

	for _, l := range s.linters {
		found := l.Lint(doc)
		for _, d := range found {
			fmt.Fprintln(s.cfg.out, d)
		}
		diags = append(diags, found...)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	sgml := RenderSGML(doc)
	table := RenderTable(doc)
	htmlDoc, err := s.htmlConverter.ToHTML(ctx, input.Title, table)
	if err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}

	return &Result{
		SGML:        sgml,
		HTML:        htmlDoc,
		Document:    doc,
		Inventory:   inv,
		Diagnostics: diags,
	}, nil
}
