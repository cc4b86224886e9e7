package domain

import "time"

// Defaults applied when a setting is absent from configuration.
const (
	DefaultAPIEndpoint  = "https://www.flickr.com/services/rest/"
	DefaultPerPage      = 30
	DefaultFetchDelay   = time.Second
	DefaultUserAgent    = "lenscout"
	DefaultCacheFile    = "cache.json"
	DefaultCatalogFile  = "catalog.db"
	DefaultHTTPAddress  = "127.0.0.1:8420"
	maxPerPage          = 500
	maxFetchDelay       = time.Minute
	minimumAPIKeyLength = 8
)

// PhotoAPISettings configures the photo API client.
type PhotoAPISettings struct {
	// APIKey is sent with every request but never cached.
	APIKey string

	// Endpoint is the REST base URL.
	Endpoint string

	// PerPage is the number of photos requested per search.
	PerPage int
}

// IsConfigured returns true if an API key is present.
func (s PhotoAPISettings) IsConfigured() bool {
	return s.APIKey != ""
}

// FetchSettings configures outbound requests.
type FetchSettings struct {
	// Delay is the pause before every real network request.
	Delay time.Duration

	// UserAgent identifies the tool to upstream sites.
	UserAgent string

	// Contact is sent in the From header when set.
	Contact string
}

// StorageSettings configures on-disk locations.
type StorageSettings struct {
	// DataDir holds the cache file and the catalog database.
	// Empty means ~/.lenscout/data.
	DataDir string

	// CacheFile overrides the response cache location.
	CacheFile string
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	PhotoAPI PhotoAPISettings
	Fetch    FetchSettings
	Storage  StorageSettings

	// Sources is the list of catalog pages a refresh covers.
	Sources []CatalogSource
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		PhotoAPI: PhotoAPISettings{
			Endpoint: DefaultAPIEndpoint,
			PerPage:  DefaultPerPage,
		},
		Fetch: FetchSettings{
			Delay:     DefaultFetchDelay,
			UserAgent: DefaultUserAgent,
		},
		Sources: DefaultCatalogSources(),
	}
}

// Validate checks settings ranges. A missing API key is not an error here;
// only commands that call the photo API require one.
func (s AppSettings) Validate() error {
	if s.PhotoAPI.PerPage <= 0 || s.PhotoAPI.PerPage > maxPerPage {
		return ErrInvalidInput
	}
	if s.Fetch.Delay < 0 || s.Fetch.Delay > maxFetchDelay {
		return ErrInvalidInput
	}
	if s.PhotoAPI.APIKey != "" && len(s.PhotoAPI.APIKey) < minimumAPIKeyLength {
		return ErrInvalidInput
	}
	for _, src := range s.Sources {
		if src.URL == "" {
			return ErrInvalidInput
		}
	}
	return nil
}
