package flickr

import (
	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// Config holds the settings for a Client.
type Config struct {
	APIKey   string
	Endpoint string
	PerPage  int
}

// ConfigFromSettings builds a Config from application settings.
func ConfigFromSettings(s domain.PhotoAPISettings) Config {
	return Config{
		APIKey:   s.APIKey,
		Endpoint: s.Endpoint,
		PerPage:  s.PerPage,
	}
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = domain.DefaultAPIEndpoint
	}
	if c.PerPage <= 0 {
		c.PerPage = domain.DefaultPerPage
	}
	return c
}
