package flickr

import (
	"encoding/json"
	"fmt"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// EXIF tag names read from getExif responses.
const (
	TagFocalLength35mm = "FocalLengthIn35mmFormat"
	TagMake            = "Make"
	TagModel           = "Model"
)

type exifResponse struct {
	Photo *struct {
		ID   string `json:"id"`
		Exif []struct {
			TagSpace string `json:"tagspace"`
			Tag      string `json:"tag"`
			Label    string `json:"label"`
			Raw      struct {
				Content string `json:"_content"`
			} `json:"raw"`
		} `json:"exif"`
	} `json:"photo"`
}

// ExtractExif scans a getExif body for focal length, make and model.
// A body without a photo wrapper or exif list yields an empty sample.
// When a tag repeats, the first occurrence wins.
func ExtractExif(photoID string, body []byte) (domain.ExifSample, error) {
	sample := domain.ExifSample{PhotoID: photoID}

	var resp exifResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return sample, fmt.Errorf("decoding exif response: %w", err)
	}
	if resp.Photo == nil {
		return sample, nil
	}

	for _, entry := range resp.Photo.Exif {
		value := entry.Raw.Content
		switch entry.Tag {
		case TagFocalLength35mm:
			if sample.FocalLength35mm == nil {
				sample.FocalLength35mm = &value
			}
		case TagMake:
			if sample.Make == nil {
				sample.Make = &value
			}
		case TagModel:
			if sample.Model == nil {
				sample.Model = &value
			}
		}
	}

	return sample, nil
}
