package lensdb

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// ExtractExamples returns up to three example photo links from a lens
// detail page, in page order. An anchor qualifies when it links to the
// photo host or carries a shooting caption with an ISO value.
func ExtractExamples(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return true
		}
		if isExampleAnchor(a) {
			links = append(links, href)
		}
		return len(links) < domain.ExampleSlots
	})

	return links, nil
}

func isExampleAnchor(a *goquery.Selection) bool {
	if strings.Contains(a.AttrOr("data-caption", ""), "ISO") {
		return true
	}
	outer, err := goquery.OuterHtml(a)
	if err != nil {
		return false
	}
	return strings.Contains(outer, "flickr.com") || strings.Contains(outer, "ISO")
}
