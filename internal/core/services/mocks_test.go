package services

import (
	"context"
	"errors"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
)

// fakeScraper returns canned scrape results per source URL.
type fakeScraper struct {
	results map[string]*driven.ScrapeResult
	errs    map[string]error
	calls   []string
}

func (f *fakeScraper) Scrape(_ context.Context, source domain.CatalogSource) (*driven.ScrapeResult, error) {
	f.calls = append(f.calls, source.URL)
	if err, ok := f.errs[source.URL]; ok {
		return nil, err
	}
	if r, ok := f.results[source.URL]; ok {
		return r, nil
	}
	return &driven.ScrapeResult{}, nil
}

// failingStore wraps a store and fails chosen operations.
type failingStore struct {
	driven.CatalogStore
	failReset  bool
	failInsert bool

	// failInserts fails this many InsertLenses calls before passing through.
	failInserts int
}

var errStoreDown = errors.New("database is locked")

func (f *failingStore) Reset(ctx context.Context) error {
	if f.failReset {
		return errStoreDown
	}
	return f.CatalogStore.Reset(ctx)
}

func (f *failingStore) InsertLenses(ctx context.Context, lenses []domain.Lens) ([]string, error) {
	if f.failInsert {
		return nil, errStoreDown
	}
	if f.failInserts > 0 {
		f.failInserts--
		return nil, errStoreDown
	}
	return f.CatalogStore.InsertLenses(ctx, lenses)
}

// fakePhotoAPI serves photos and EXIF samples from memory.
type fakePhotoAPI struct {
	photos    []domain.Photo
	samples   map[string]domain.ExifSample
	searchErr error
	exifErr   map[string]error
	keywords  []string
	exifCalls []string
}

func (f *fakePhotoAPI) SearchPhotos(_ context.Context, keyword string) ([]domain.Photo, error) {
	f.keywords = append(f.keywords, keyword)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.photos, nil
}

func (f *fakePhotoAPI) GetExif(_ context.Context, photoID string) (domain.ExifSample, error) {
	f.exifCalls = append(f.exifCalls, photoID)
	if err, ok := f.exifErr[photoID]; ok {
		return domain.ExifSample{}, err
	}
	if s, ok := f.samples[photoID]; ok {
		return s, nil
	}
	return domain.ExifSample{PhotoID: photoID}, nil
}

func strPtr(s string) *string { return &s }

func entry(name, brand string, focalMin, focalMax int, examples ...string) domain.CatalogEntry {
	return domain.CatalogEntry{
		Lens: domain.Lens{
			Name:       name,
			Brand:      brand,
			Mount:      brand + " Mount",
			FocalMin:   focalMin,
			FocalMax:   focalMax,
			DetailLink: "https://lens-db.com/" + name,
		},
		Examples: domain.NewExamplePhotos(name, examples),
	}
}
