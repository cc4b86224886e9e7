package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
// It mirrors the SQLite store: lens names are unique, one example set
// per lens, and queries only return lenses that have an example set.
type CatalogStore struct {
	mu       sync.RWMutex
	lenses   map[string]domain.Lens
	examples map[string]domain.ExamplePhotos
	resets   int
}

// NewCatalogStore creates an empty in-memory catalog.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		lenses:   make(map[string]domain.Lens),
		examples: make(map[string]domain.ExamplePhotos),
	}
}

// Reset empties both tables.
func (s *CatalogStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lenses = make(map[string]domain.Lens)
	s.examples = make(map[string]domain.ExamplePhotos)
	s.resets++
	return nil
}

// Resets returns how many times Reset was called.
func (s *CatalogStore) Resets() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resets
}

// InsertLenses stores lenses, keeping the first of any repeated name.
func (s *CatalogStore) InsertLenses(_ context.Context, lenses []domain.Lens) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var duplicates []string
	for _, l := range lenses {
		if _, ok := s.lenses[l.Name]; ok {
			duplicates = append(duplicates, l.Name)
			continue
		}
		l.DevelopmentYear = ""
		s.lenses[l.Name] = l
	}
	return duplicates, nil
}

// InsertExamples stores example sets for known lenses, ignoring repeats.
func (s *CatalogStore) InsertExamples(_ context.Context, sets []domain.ExamplePhotos) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted, ignored := 0, 0
	for _, set := range sets {
		if _, ok := s.lenses[set.LensName]; !ok {
			return 0, 0, domain.ErrNotFound
		}
		if _, ok := s.examples[set.LensName]; ok {
			ignored++
			continue
		}
		s.examples[set.LensName] = set
		inserted++
	}
	return inserted, ignored, nil
}

// QueryLenses returns joined rows ordered by lens name.
func (s *CatalogStore) QueryLenses(_ context.Context, brand string, focal int) ([]domain.LensRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []domain.LensRow
	for name, l := range s.lenses {
		set, ok := s.examples[name]
		if !ok || l.Brand != brand || !l.Covers(focal) {
			continue
		}
		rows = append(rows, domain.LensRow{Lens: l, Examples: set.Examples})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

// Stats counts stored lenses and example sets.
func (s *CatalogStore) Stats(_ context.Context) (*domain.CatalogStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var brands []string
	for _, l := range s.lenses {
		if !seen[l.Brand] {
			seen[l.Brand] = true
			brands = append(brands, l.Brand)
		}
	}
	sort.Strings(brands)

	return &domain.CatalogStats{
		Lenses:      len(s.lenses),
		ExampleSets: len(s.examples),
		Brands:      brands,
	}, nil
}
