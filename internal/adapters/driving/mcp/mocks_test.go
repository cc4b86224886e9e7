package mcp

import (
	"context"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	rows  []domain.LensRow
	stats *domain.CatalogStats
	err   error

	gotBrand string
	gotFocal int
}

func (m *mockCatalogService) Refresh(_ context.Context, _ []domain.CatalogSource) (*domain.RefreshReport, error) {
	return &domain.RefreshReport{}, m.err
}

func (m *mockCatalogService) Query(_ context.Context, brand string, focal int) ([]domain.LensRow, error) {
	m.gotBrand, m.gotFocal = brand, focal
	return m.rows, m.err
}

func (m *mockCatalogService) Brands(_ context.Context) ([]string, error) {
	if m.stats == nil {
		return nil, m.err
	}
	return m.stats.Brands, m.err
}

func (m *mockCatalogService) Stats(_ context.Context) (*domain.CatalogStats, error) {
	return m.stats, m.err
}

// mockExifService is a mock implementation of driving.ExifService.
type mockExifService struct {
	report *domain.ExifReport
	urls   []string
	err    error
}

func (m *mockExifService) Report(_ context.Context, _ string) (*domain.ExifReport, error) {
	return m.report, m.err
}

func (m *mockExifService) PhotoURLs(_ context.Context, _ string) ([]string, error) {
	return m.urls, m.err
}

func canonRow() domain.LensRow {
	return domain.LensRow{
		Lens: domain.Lens{
			Name: "Canon EF 50mm f/1.8 STM", Brand: "Canon", Mount: "Canon EF",
			FocalMin: 50, FocalMax: 50, DetailLink: "https://lens-db.com/canon-ef-50mm/",
		},
		Examples: [3]string{"https://flickr.com/a", domain.NoExamplePhoto, domain.NoExamplePhoto},
	}
}
