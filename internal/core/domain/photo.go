package domain

import "fmt"

// Photo is a photo record returned by a keyword search.
type Photo struct {
	ID     string `json:"id"`
	Server string `json:"server"`
	Farm   string `json:"farm"`
	Secret string `json:"secret"`
	Title  string `json:"title,omitempty"`
}

// URL returns the static image address for the photo.
func (p Photo) URL() string {
	return fmt.Sprintf("https://farm%s.staticflickr.com/%s/%s_%s.jpg", p.Farm, p.Server, p.ID, p.Secret)
}

// ExifSample holds the EXIF fields extracted for one photo.
// A nil field means the tag was absent; it is never defaulted.
type ExifSample struct {
	PhotoID         string  `json:"photo_id"`
	FocalLength35mm *string `json:"focal_length_35mm,omitempty"`
	Make            *string `json:"make,omitempty"`
	Model           *string `json:"model,omitempty"`
}

// Empty reports whether no field was extracted.
func (s ExifSample) Empty() bool {
	return s.FocalLength35mm == nil && s.Make == nil && s.Model == nil
}
