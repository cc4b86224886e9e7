package flickr

import (
	"errors"
	"fmt"
)

// Flickr-specific errors.
var (
	// ErrUnexpectedResponse indicates a response that parsed but lacked expected fields.
	ErrUnexpectedResponse = errors.New("flickr: unexpected response")
)

// Flickr API error codes that lenscout treats specially.
const (
	CodePhotoNotFound    = 1
	CodePermissionDenied = 2
	CodeInvalidAPIKey    = 100
)

// APIError represents a Flickr envelope failure ("stat": "fail").
// Flickr reports these with HTTP 200.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("flickr: API error %d: %s", e.Code, e.Message)
}

// IsInvalidKey checks if the error indicates a rejected API key.
func IsInvalidKey(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodeInvalidAPIKey
	}
	return false
}

// IsExifUnavailable checks if the error means a photo has no readable EXIF.
func IsExifUnavailable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodePhotoNotFound || apiErr.Code == CodePermissionDenied
	}
	return false
}
