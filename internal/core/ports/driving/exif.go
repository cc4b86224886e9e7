package driving

import (
	"context"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// ExifService reports what gear photographers used for a keyword.
type ExifService interface {
	// Report searches photos for keyword and aggregates their EXIF fields.
	Report(ctx context.Context, keyword string) (*domain.ExifReport, error)

	// PhotoURLs returns the display URLs of photos matching keyword.
	PhotoURLs(ctx context.Context, keyword string) ([]string, error)
}
