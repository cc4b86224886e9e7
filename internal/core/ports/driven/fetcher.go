package driven

import (
	"context"
	"encoding/json"
	"net/url"
)

// PageFetcher retrieves HTML pages through the response cache.
// The cache key is the URL verbatim.
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (string, error)
}

// APIFetcher retrieves JSON responses through the response cache.
// The cache key is the endpoint plus the canonical encoding of params.
type APIFetcher interface {
	FetchAPI(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error)
}

// Fetcher combines page and API retrieval behind one pacing schedule.
type Fetcher interface {
	PageFetcher
	APIFetcher
}
