package text

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// RelativeLinks rewrites the href of every link and stylesheet in page.
// rewrite returns the new href and whether to replace the old one.
func RelativeLinks(page []byte, rewrite func(href string) (string, bool)) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	doc.Find("a[href], link[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if next, ok := rewrite(href); ok {
			s.SetAttr("href", next)
		}
	})
	html, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return []byte(html), nil
}
