package lensdb

import (
	"context"
	"errors"
	"strings"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
	"github.com/lenscout/lenscout-cli/internal/logger"
)

// Ensure Scraper implements the interface.
var _ driven.CatalogScraper = (*Scraper)(nil)

// Scraper turns catalog sources into lens entries.
type Scraper struct {
	fetcher driven.PageFetcher
}

// NewScraper creates a scraper that reads pages through fetcher.
func NewScraper(fetcher driven.PageFetcher) *Scraper {
	return &Scraper{fetcher: fetcher}
}

// Scrape fetches and parses one catalog source. Rows whose mount or focal
// range cannot be derived are reported as gaps and skipped. Any fetch
// failure, on the listing or a detail page, aborts the source.
func (s *Scraper) Scrape(ctx context.Context, source domain.CatalogSource) (*driven.ScrapeResult, error) {
	logger.Debug("scraping catalog source", "source", source.URL)

	page, err := s.fetcher.FetchPage(ctx, source.URL)
	if err != nil {
		return nil, &domain.SourceError{Source: source.URL, Stage: domain.StageListing, Err: err}
	}

	rows, err := ParseListing(source.URL, page)
	if err != nil {
		return nil, err
	}

	result := &driven.ScrapeResult{}
	for _, row := range rows {
		lens, err := BuildLens(row, source.Mount)
		if err != nil {
			var gap *domain.ExtractionGapError
			if errors.As(err, &gap) {
				logger.Debug("skipping lens", "lens", row.Name, "field", gap.Field, "detail", gap.Detail)
				result.Gaps = append(result.Gaps, gap)
				continue
			}
			return nil, err
		}

		detail, err := s.fetcher.FetchPage(ctx, row.DetailLink)
		if err != nil {
			return nil, &domain.SourceError{Source: source.URL, Stage: domain.StageDetail, Err: err}
		}

		links, err := ExtractExamples(detail)
		if err != nil {
			return nil, &domain.ScrapeStructureError{
				Source: source.URL,
				Stage:  domain.StageDetail,
				Detail: row.DetailLink + ": " + err.Error(),
			}
		}

		result.Entries = append(result.Entries, domain.CatalogEntry{
			Lens:     lens,
			Examples: domain.NewExamplePhotos(lens.Name, links),
		})
	}

	logger.Debug("catalog source scraped",
		"source", source.URL,
		"lenses", len(result.Entries),
		"gaps", len(result.Gaps),
	)
	return result, nil
}

// BuildLens derives the full lens record for one listing row.
func BuildLens(row ListingRow, fallbackMount string) (domain.Lens, error) {
	mount, err := DeriveMount(row.Name, fallbackMount)
	if err != nil {
		return domain.Lens{}, err
	}

	focalMin, focalMax, err := ParseFocal(row.Name)
	if err != nil {
		return domain.Lens{}, err
	}

	return domain.Lens{
		Name:            row.Name,
		Brand:           brandOf(row.Name),
		Mount:           mount,
		FocalMin:        focalMin,
		FocalMax:        focalMax,
		DetailLink:      row.DetailLink,
		DevelopmentYear: row.DevelopmentYear,
	}, nil
}

// brandOf returns the first whitespace token of an already collapsed name.
func brandOf(name string) string {
	brand, _, _ := strings.Cut(name, " ")
	return brand
}
