package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driving"
	"github.com/lenscout/lenscout-cli/internal/logger"
)

// Ensure ExifService implements the interface.
var _ driving.ExifService = (*ExifService)(nil)

// ExifService builds gear reports from photo search results.
type ExifService struct {
	photos driven.PhotoAPI
}

// NewExifService creates a new EXIF service.
// photos may be nil when no API key is configured; every call then
// returns domain.ErrAPIKeyMissing.
func NewExifService(photos driven.PhotoAPI) *ExifService {
	return &ExifService{photos: photos}
}

// Report searches keyword and reads the EXIF record of every result, in
// search order. Any request failure aborts the report.
func (s *ExifService) Report(ctx context.Context, keyword string) (*domain.ExifReport, error) {
	photos, err := s.search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	samples := make([]domain.ExifSample, 0, len(photos))
	for i, p := range photos {
		sample, err := s.photos.GetExif(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("get exif for photo %s: %w", p.ID, err)
		}
		logger.Debug("exif sample", "n", i+1, "of", len(photos), "photo", p.ID, "empty", sample.Empty())
		samples = append(samples, sample)
	}

	report := domain.NewExifReport(strings.TrimSpace(keyword), len(photos), samples)
	return &report, nil
}

// PhotoURLs returns the display URL of each photo matching keyword.
func (s *ExifService) PhotoURLs(ctx context.Context, keyword string) ([]string, error) {
	photos, err := s.search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	urls := make([]string, len(photos))
	for i, p := range photos {
		urls[i] = p.URL()
	}
	return urls, nil
}

func (s *ExifService) search(ctx context.Context, keyword string) ([]domain.Photo, error) {
	if s.photos == nil {
		return nil, domain.ErrAPIKeyMissing
	}
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("keyword is required: %w", domain.ErrInvalidInput)
	}

	photos, err := s.photos.SearchPhotos(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search photos: %w", err)
	}
	logger.Debug("photo search", "keyword", keyword, "results", len(photos))
	return photos, nil
}
