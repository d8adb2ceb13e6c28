package hilaria

import (
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// htmlShell wraps Goldmark's table fragment in a complete HTML5
// document: utf-8 charset, a Coptic-capable font stack, the header row
// hidden, and the address column de-emphasized so the text reads as a
// continuous page.
const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body {
  font-family: "Antinoou", "New Athena Unicode", "Noto Sans Coptic", sans-serif;
}
table {
  border-collapse: collapse;
}
thead {
  display: none;
}
td:first-child {
  color: #777;
  font-size: 80%%;
  padding-right: 1em;
  vertical-align: top;
}
</style>
</head>
<body>
%s
</body>
</html>`

// defaultTitle is used when the input supplies none.
const defaultTitle = "Life of Hilaria"

// htmlConverter abstracts Markdown to HTML conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, title, content string) (string, error)
}

// goldmarkConverter converts the Markdown table to HTML using goldmark.
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a converter with the GFM extension,
// which supplies the pipe-table syntax.
func newGoldmarkConverter() *goldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(ghtml.WithXHTML()),
	)
	return &goldmarkConverter{md: md}
}

// ToHTML converts the Markdown content to a standalone HTML5 document.
// Goldmark has no native context support, so cancellation uses the
// goroutine + select pattern.
func (c *goldmarkConverter) ToHTML(ctx context.Context, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if title == "" {
		title = defaultTitle
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRenderHTML, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlShell, html.EscapeString(title), buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
