package cli

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
)

type mockCatalogService struct {
	report     *domain.RefreshReport
	rows       []domain.LensRow
	stats      *domain.CatalogStats
	err        error
	gotSources []domain.CatalogSource
	gotBrand   string
	gotFocal   int
}

func (m *mockCatalogService) Refresh(_ context.Context, sources []domain.CatalogSource) (*domain.RefreshReport, error) {
	m.gotSources = sources
	return m.report, m.err
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

type mockSettingsService struct {
	settings *domain.AppSettings
	fromEnv  bool
	setErr   error
	setKey   string
	setValue string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.settings == nil {
		s := domain.DefaultAppSettings()
		return &s, nil
	}
	return m.settings, nil
}

func (m *mockSettingsService) Save(s *domain.AppSettings) error {
	m.settings = s
	return nil
}

func (m *mockSettingsService) Set(key, value string) error {
	m.setKey, m.setValue = key, value
	return m.setErr
}

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func (m *mockSettingsService) APIKeyFromEnv() bool { return m.fromEnv }

type mockCache struct {
	entries map[string]json.RawMessage
	cleared bool
}

func (m *mockCache) GetOrFetch(ctx context.Context, key string, fetch driven.FetchFunc) (json.RawMessage, error) {
	if v, ok := m.entries[key]; ok {
		return v, nil
	}
	return fetch(ctx)
}

func (m *mockCache) Len() int { return len(m.entries) }

func (m *mockCache) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *mockCache) Clear() error {
	m.entries = map[string]json.RawMessage{}
	m.cleared = true
	return nil
}

func (m *mockCache) Path() string { return "/tmp/lenscout/cache.json" }
