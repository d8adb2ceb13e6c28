package hilaria

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	doc := &Document{Lines: []Line{
		{Addr: Addr{Page: 1, Line: 1}, Text: " ⲁⲩⲱ "},
		{Addr: Addr{Page: 1, Line: 2}, Text: "ⲡⲉϫⲁϥ"},
	}}

	got := RenderTable(doc)
	want := "| address | text |\n" +
		"| ------- | ---- |\n" +
		"| 1.1 | ⲁⲩⲱ |\n" +
		"| 1.2 | ⲡⲉϫⲁϥ |\n"
	if got != want {
		t.Errorf("RenderTable =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTableDividerMatchesHeaders(t *testing.T) {
	t.Parallel()

	lines := strings.Split(RenderTable(&Document{}), "\n")
	if len(lines) < 2 {
		t.Fatalf("table too short: %q", lines)
	}
	head := strings.Split(lines[0], "|")
	div := strings.Split(lines[1], "|")
	if len(head) != len(div) {
		t.Fatalf("header cells %d != divider cells %d", len(head), len(div))
	}
	for i := range head {
		if len(head[i]) != len(div[i]) {
			t.Errorf("cell %d: header width %d, divider width %d", i, len(head[i]), len(div[i]))
		}
	}
}
