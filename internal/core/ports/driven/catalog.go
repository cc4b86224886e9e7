package driven

import (
	"context"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// ScrapeResult is the outcome of scraping one catalog source.
type ScrapeResult struct {
	// Entries holds one record per listing row that produced a lens.
	Entries []domain.CatalogEntry

	// Gaps lists rows skipped because a field could not be derived.
	Gaps []*domain.ExtractionGapError
}

// CatalogScraper turns one catalog source into lens entries.
// Structural failures are returned as *domain.ScrapeStructureError and
// fetch failures as *domain.FetchError; either aborts the source.
type CatalogScraper interface {
	Scrape(ctx context.Context, source domain.CatalogSource) (*ScrapeResult, error)
}

// CatalogStore persists lenses and their example photos.
type CatalogStore interface {
	// Reset drops and recreates both tables.
	Reset(ctx context.Context) error

	// InsertLenses stores lenses in one transaction. A lens whose name
	// already exists is rejected; its name is returned in duplicates.
	InsertLenses(ctx context.Context, lenses []domain.Lens) (duplicates []string, err error)

	// InsertExamples stores example sets, ignoring sets for lens names
	// that already have one.
	InsertExamples(ctx context.Context, sets []domain.ExamplePhotos) (inserted, ignored int, err error)

	// QueryLenses returns lenses of brand whose range contains focal,
	// joined with their example photos.
	QueryLenses(ctx context.Context, brand string, focal int) ([]domain.LensRow, error)

	// Stats summarises the stored catalog.
	Stats(ctx context.Context) (*domain.CatalogStats, error)
}
