package flickr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
	"github.com/lenscout/lenscout-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.PhotoAPI = (*Client)(nil)

// API methods.
const (
	MethodSearch  = "flickr.photos.search"
	MethodGetExif = "flickr.photos.getExif"
)

// Client calls the Flickr REST API through an APIFetcher.
type Client struct {
	fetcher driven.APIFetcher
	cfg     Config
}

// NewClient creates a Flickr client. An API key is required.
func NewClient(fetcher driven.APIFetcher, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrAPIKeyMissing
	}
	return &Client{
		fetcher: fetcher,
		cfg:     cfg.withDefaults(),
	}, nil
}

type envelope struct {
	Stat    string `json:"stat"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CheckEnvelope returns an *APIError for a "stat": "fail" body.
// It is installed on the fetcher so failures are never cached.
func CheckEnvelope(body []byte) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	if env.Stat == "fail" {
		return &APIError{Code: env.Code, Message: env.Message}
	}
	return nil
}

type searchResponse struct {
	Photos *struct {
		Photo []struct {
			ID     string      `json:"id"`
			Secret string      `json:"secret"`
			Server string      `json:"server"`
			Farm   json.Number `json:"farm"`
			Title  string      `json:"title"`
		} `json:"photo"`
	} `json:"photos"`
}

// SearchPhotos returns up to PerPage photos tagged with keyword.
func (c *Client) SearchPhotos(ctx context.Context, keyword string) ([]domain.Photo, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("search keyword: %w", domain.ErrInvalidInput)
	}

	params := c.params(MethodSearch)
	params.Set("tags", keyword)
	params.Set("per_page", strconv.Itoa(c.cfg.PerPage))

	raw, err := c.fetcher.FetchAPI(ctx, c.cfg.Endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("search photos %q: %w", keyword, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if resp.Photos == nil {
		return nil, fmt.Errorf("search photos %q: %w: missing photos", keyword, ErrUnexpectedResponse)
	}

	photos := make([]domain.Photo, 0, len(resp.Photos.Photo))
	for _, p := range resp.Photos.Photo {
		photos = append(photos, domain.Photo{
			ID:     p.ID,
			Server: p.Server,
			Farm:   p.Farm.String(),
			Secret: p.Secret,
			Title:  p.Title,
		})
	}

	logger.Debug("photo search", "keyword", keyword, "photos", len(photos))
	return photos, nil
}

// GetExif returns the EXIF fields lenscout reports on for one photo.
// Photos whose EXIF is hidden or gone yield an empty sample.
func (c *Client) GetExif(ctx context.Context, photoID string) (domain.ExifSample, error) {
	params := c.params(MethodGetExif)
	params.Set("photo_id", photoID)

	raw, err := c.fetcher.FetchAPI(ctx, c.cfg.Endpoint, params)
	if err != nil {
		if IsExifUnavailable(err) {
			logger.Debug("exif unavailable", "photo", photoID, "error", err)
			return domain.ExifSample{PhotoID: photoID}, nil
		}
		return domain.ExifSample{}, fmt.Errorf("get exif %s: %w", photoID, err)
	}

	return ExtractExif(photoID, raw)
}

func (c *Client) params(method string) url.Values {
	return url.Values{
		"method":         {method},
		"api_key":        {c.cfg.APIKey},
		"format":         {"json"},
		"nojsoncallback": {"1"},
	}
}
