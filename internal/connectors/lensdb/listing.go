package lensdb

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// Listing page markup.
const (
	lensTableSelector = "table.uk-table.lensdb.uk-table-divider"
	yearCellStyle     = "min-width:3%;text-align:center;"
)

// ListingRow is one row of a catalog listing table.
type ListingRow struct {
	Name            string
	DetailLink      string
	DevelopmentYear string
}

// ParseListing extracts one row per lens from a listing page. A page
// without the lens table, or with a table holding no lens links, is a
// structural failure for the whole source.
func ParseListing(source, html string) ([]ListingRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, structureErr(source, "parsing HTML: "+err.Error())
	}

	table := doc.Find(lensTableSelector).First()
	if table.Length() == 0 {
		return nil, structureErr(source, "lens table not found")
	}

	base, _ := url.Parse(source)

	var rows []ListingRow
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		anchor := tr.Find("a[href]").First()
		if anchor.Length() == 0 {
			return
		}

		name := collapseSpace(anchor.Text())
		href := strings.TrimSpace(anchor.AttrOr("href", ""))
		if name == "" || href == "" {
			return
		}

		rows = append(rows, ListingRow{
			Name:            name,
			DetailLink:      resolve(base, href),
			DevelopmentYear: developmentYear(tr),
		})
	})

	if len(rows) == 0 {
		return nil, structureErr(source, "lens table has no lens links")
	}
	return rows, nil
}

// developmentYear returns the text of the row's centred narrow cell.
func developmentYear(tr *goquery.Selection) string {
	var year string
	tr.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		style := strings.ReplaceAll(td.AttrOr("style", ""), " ", "")
		if style == yearCellStyle {
			year = collapseSpace(td.Text())
			return false
		}
		return true
	})
	return year
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func resolve(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func structureErr(source, detail string) error {
	return &domain.ScrapeStructureError{Source: source, Stage: domain.StageListing, Detail: detail}
}
