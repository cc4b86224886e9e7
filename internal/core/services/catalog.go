package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driving"
	"github.com/lenscout/lenscout-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService rebuilds the lens catalog from catalog sources and
// answers brand + focal length queries against it.
type CatalogService struct {
	scraper driven.CatalogScraper
	store   driven.CatalogStore
	now     func() time.Time
}

// NewCatalogService creates a new catalog service.
// The scraper is optional; without one Refresh is unavailable.
func NewCatalogService(scraper driven.CatalogScraper, store driven.CatalogStore) *CatalogService {
	return &CatalogService{
		scraper: scraper,
		store:   store,
		now:     time.Now,
	}
}

// Refresh drops the catalog and rebuilds it source by source.
//
// A source that fails to scrape or store is recorded in the report and the
// run moves on. A lens whose name was already stored earlier in the run is
// rejected, keeping the first record and its example photos.
func (s *CatalogService) Refresh(ctx context.Context, sources []domain.CatalogSource) (*domain.RefreshReport, error) {
	if s.scraper == nil {
		return nil, errors.New("refresh catalog: scraper not configured")
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("refresh catalog: no sources: %w", domain.ErrInvalidInput)
	}

	report := &domain.RefreshReport{
		RunID:     uuid.New().String(),
		StartedAt: s.now(),
	}
	logger.Section("refresh " + report.RunID)

	if err := s.store.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset catalog: %w", err)
	}

	stored := make(map[string]bool)
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			report.FinishedAt = s.now()
			return report, fmt.Errorf("refresh catalog: %w", err)
		}

		result, err := s.refreshSource(ctx, source, stored)
		if err != nil {
			if ctx.Err() != nil {
				report.FinishedAt = s.now()
				return report, fmt.Errorf("refresh catalog: %w", ctx.Err())
			}
			failure := domain.SourceFailure{
				Source: source.URL,
				Stage:  stageOf(err),
				Error:  err.Error(),
			}
			logger.Warn("catalog source failed", "source", source.URL, "stage", failure.Stage, "error", err)
			report.Failures = append(report.Failures, failure)
			continue
		}
		report.Sources = append(report.Sources, *result)
	}

	report.FinishedAt = s.now()
	logger.Info("catalog refreshed",
		"run", report.RunID,
		"lenses", report.TotalLenses(),
		"failures", len(report.Failures),
	)
	return report, nil
}

// refreshSource scrapes and stores one source. stored tracks the lens
// names inserted so far in the run.
func (s *CatalogService) refreshSource(
	ctx context.Context,
	source domain.CatalogSource,
	stored map[string]bool,
) (*domain.SourceResult, error) {
	scraped, err := s.scraper.Scrape(ctx, source)
	if err != nil {
		return nil, err
	}

	result := &domain.SourceResult{Source: source.URL}
	for _, gap := range scraped.Gaps {
		result.Skipped = append(result.Skipped, gap.Lens)
	}

	lenses := make([]domain.Lens, 0, len(scraped.Entries))
	var sets []domain.ExamplePhotos
	pending := make(map[string]bool)
	for _, entry := range scraped.Entries {
		lenses = append(lenses, entry.Lens)
		if stored[entry.Lens.Name] || pending[entry.Lens.Name] {
			continue
		}
		pending[entry.Lens.Name] = true
		sets = append(sets, entry.Examples)
	}

	duplicates, err := s.store.InsertLenses(ctx, lenses)
	if err != nil {
		return nil, &domain.SourceError{Source: source.URL, Stage: domain.StageStore, Err: err}
	}
	for _, name := range duplicates {
		dup := &domain.DuplicateKeyError{Name: name}
		logger.Warn("duplicate lens rejected", "source", source.URL, "error", dup)
	}
	result.Duplicates = duplicates
	result.LensesInserted = len(lenses) - len(duplicates)

	inserted, ignored, err := s.store.InsertExamples(ctx, sets)
	if err != nil {
		return nil, &domain.SourceError{Source: source.URL, Stage: domain.StageStore, Err: err}
	}
	result.ExamplesStored = inserted
	result.ExamplesIgnored = ignored

	for name := range pending {
		stored[name] = true
	}

	logger.Debug("catalog source stored",
		"source", source.URL,
		"lenses", result.LensesInserted,
		"duplicates", len(result.Duplicates),
		"skipped", len(result.Skipped),
	)
	return result, nil
}

// stageOf names the refresh stage an error came from.
func stageOf(err error) string {
	var srcErr *domain.SourceError
	if errors.As(err, &srcErr) {
		return srcErr.Stage
	}
	var structErr *domain.ScrapeStructureError
	if errors.As(err, &structErr) {
		return structErr.Stage
	}
	return domain.StageListing
}

// Query returns lenses of brand whose focal range contains focal.
func (s *CatalogService) Query(ctx context.Context, brand string, focal int) ([]domain.LensRow, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, fmt.Errorf("brand is required: %w", domain.ErrInvalidInput)
	}
	if focal <= 0 {
		return nil, fmt.Errorf("focal length must be positive, got %d: %w", focal, domain.ErrInvalidInput)
	}

	rows, err := s.store.QueryLenses(ctx, brand, focal)
	if err != nil {
		return nil, fmt.Errorf("query lenses: %w", err)
	}
	return rows, nil
}

// Brands lists the distinct brands in the catalog.
func (s *CatalogService) Brands(ctx context.Context) ([]string, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Brands, nil
}

// Stats summarises the stored catalog.
func (s *CatalogService) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}
	return stats, nil
}
