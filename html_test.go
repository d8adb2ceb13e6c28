package hilaria

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestGoldmarkConverterToHTML(t *testing.T) {
	t.Parallel()

	table := "| address | text |\n| ------- | ---- |\n| 1.1 | ⲁⲩⲱ |\n"

	conv := newGoldmarkConverter()
	got, err := conv.ToHTML(context.Background(), "Hilaria", table)
	if err != nil {
		t.Fatalf("ToHTML unexpected error: %v", err)
	}

	wantContains := []string{
		"<!DOCTYPE html>",
		`<meta charset="utf-8">`,
		"<title>Hilaria</title>",
		"Noto Sans Coptic",
		"thead {",
		"display: none;",
		"td:first-child",
		"<table>",
		"<td>1.1</td>",
		"<td>ⲁⲩⲱ</td>",
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestGoldmarkConverterDefaultTitle(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()
	got, err := conv.ToHTML(context.Background(), "", "text")
	if err != nil {
		t.Fatalf("ToHTML unexpected error: %v", err)
	}
	if !strings.Contains(got, "<title>Life of Hilaria</title>") {
		t.Error("empty title should fall back to the default")
	}
}

func TestGoldmarkConverterEscapesTitle(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()
	got, err := conv.ToHTML(context.Background(), "<script>x</script>", "text")
	if err != nil {
		t.Fatalf("ToHTML unexpected error: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Error("title not escaped")
	}
}

func TestGoldmarkConverterCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := newGoldmarkConverter()
	if _, err := conv.ToHTML(ctx, "t", "text"); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestGoldmarkConverterRespectsTimeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conv := newGoldmarkConverter()
	if _, err := conv.ToHTML(ctx, "t", "plain text"); err != nil {
		t.Errorf("ToHTML with generous timeout failed: %v", err)
	}
}
