package text

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
)

var blankLines = regexp.MustCompile(`\n[ \t]*(\n[ \t]*)+`)

// Plain renders c and strips it down to readable text: images, scripts,
// styles and forms are dropped and block elements end a line.
func Plain(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("failed to render component: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return "", fmt.Errorf("failed to parse rendered html: %w", err)
	}
	doc.Find("img, script, style, form, head").Remove()
	doc.Find("h1, h2, p, tr, dd, li, nav, table, dl").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	doc.Find("td, th, dt, nav a, .brand").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\t")
	})
	text := blankLines.ReplaceAllString(doc.Text(), "\n")
	return strings.TrimSpace(text) + "\n", nil
}
