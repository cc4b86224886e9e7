package driven

import (
	"context"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// PhotoAPI searches photos by keyword and reads their EXIF metadata.
type PhotoAPI interface {
	// SearchPhotos returns photo records tagged with keyword.
	SearchPhotos(ctx context.Context, keyword string) ([]domain.Photo, error)

	// GetExif returns the EXIF fields of one photo. A response without
	// EXIF data yields an empty sample, not an error.
	GetExif(ctx context.Context, photoID string) (domain.ExifSample, error)
}
