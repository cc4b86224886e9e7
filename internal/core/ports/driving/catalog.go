package driving

import (
	"context"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// CatalogService rebuilds and queries the lens catalog.
type CatalogService interface {
	// Refresh drops the catalog and rebuilds it from sources.
	// Failed sources are recorded in the report; the remaining sources
	// are still processed.
	Refresh(ctx context.Context, sources []domain.CatalogSource) (*domain.RefreshReport, error)

	// Query returns lenses of brand whose focal range contains focal.
	Query(ctx context.Context, brand string, focal int) ([]domain.LensRow, error)

	// Brands lists the distinct brands in the catalog.
	Brands(ctx context.Context) ([]string, error)

	// Stats summarises the stored catalog.
	Stats(ctx context.Context) (*domain.CatalogStats, error)
}
