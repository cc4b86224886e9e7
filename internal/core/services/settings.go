package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyAPIKey         = "flickr.api_key"
	KeyAPIEndpoint    = "flickr.endpoint"
	KeyPerPage        = "flickr.per_page"
	KeyFetchDelay     = "fetch.delay_ms"
	KeyUserAgent      = "fetch.user_agent"
	KeyContact        = "fetch.contact"
	KeyDataDir        = "storage.data_dir"
	KeyCacheFile      = "storage.cache_file"
	KeyCatalogSources = "catalog.sources"
)

// EnvAPIKey overrides the stored API key when set.
//
//nolint:gosec // G101: environment variable name, not a credential.
const EnvAPIKey = "LENSCOUT_FLICKR_API_KEY"

var settingKeys = []string{
	KeyAPIKey,
	KeyAPIEndpoint,
	KeyPerPage,
	KeyFetchDelay,
	KeyUserAgent,
	KeyContact,
	KeyDataDir,
	KeyCacheFile,
	KeyCatalogSources,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// Get retrieves current application settings, filling unset keys with defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		PhotoAPI: domain.PhotoAPISettings{
			APIKey:   s.apiKey(),
			Endpoint: s.getString(KeyAPIEndpoint, defaults.PhotoAPI.Endpoint),
			PerPage:  s.getInt(KeyPerPage, defaults.PhotoAPI.PerPage),
		},
		Fetch: domain.FetchSettings{
			Delay:     s.getDelay(defaults.Fetch.Delay),
			UserAgent: s.getString(KeyUserAgent, defaults.Fetch.UserAgent),
			Contact:   s.configStore.GetString(KeyContact),
		},
		Storage: domain.StorageSettings{
			DataDir:   s.configStore.GetString(KeyDataDir),
			CacheFile: s.configStore.GetString(KeyCacheFile),
		},
		Sources: defaults.Sources,
	}

	if configured := domain.ParseCatalogSources(s.configStore.GetStringSlice(KeyCatalogSources)); len(configured) > 0 {
		settings.Sources = configured
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}

	if settings.PhotoAPI.APIKey != "" {
		if err := s.configStore.Set(KeyAPIKey, settings.PhotoAPI.APIKey); err != nil {
			return fmt.Errorf("save api_key: %w", err)
		}
	}
	if err := s.configStore.Set(KeyAPIEndpoint, settings.PhotoAPI.Endpoint); err != nil {
		return fmt.Errorf("save endpoint: %w", err)
	}
	if err := s.configStore.Set(KeyPerPage, settings.PhotoAPI.PerPage); err != nil {
		return fmt.Errorf("save per_page: %w", err)
	}
	if err := s.configStore.Set(KeyFetchDelay, int(settings.Fetch.Delay/time.Millisecond)); err != nil {
		return fmt.Errorf("save delay: %w", err)
	}
	if err := s.configStore.Set(KeyUserAgent, settings.Fetch.UserAgent); err != nil {
		return fmt.Errorf("save user_agent: %w", err)
	}
	if err := s.configStore.Set(KeyContact, settings.Fetch.Contact); err != nil {
		return fmt.Errorf("save contact: %w", err)
	}
	if err := s.configStore.Set(KeyDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save data_dir: %w", err)
	}
	if err := s.configStore.Set(KeyCacheFile, settings.Storage.CacheFile); err != nil {
		return fmt.Errorf("save cache_file: %w", err)
	}
	if err := s.configStore.Set(KeyCatalogSources, formatSources(settings.Sources)); err != nil {
		return fmt.Errorf("save sources: %w", err)
	}

	return nil
}

// Set updates one setting from its string form. An empty value removes
// the key so the default applies again.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)
	if !isSettingKey(key) {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	if value == "" {
		if err := s.configStore.Delete(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
		return nil
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	var stored any = value
	switch key {
	case KeyAPIKey:
		settings.PhotoAPI.APIKey = value
	case KeyAPIEndpoint:
		settings.PhotoAPI.Endpoint = value
	case KeyPerPage:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", key, domain.ErrInvalidInput)
		}
		settings.PhotoAPI.PerPage = n
		stored = n
	case KeyFetchDelay:
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a number of milliseconds: %w", key, domain.ErrInvalidInput)
		}
		settings.Fetch.Delay = time.Duration(ms) * time.Millisecond
		stored = ms
	case KeyCatalogSources:
		settings.Sources = domain.ParseCatalogSources(strings.Split(value, ","))
		stored = formatSources(settings.Sources)
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the settable keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// APIKeyFromEnv reports whether the API key comes from the environment.
func (s *SettingsService) APIKeyFromEnv() bool {
	return strings.TrimSpace(s.getenv(EnvAPIKey)) != ""
}

func (s *SettingsService) apiKey() string {
	if key := strings.TrimSpace(s.getenv(EnvAPIKey)); key != "" {
		return key
	}
	return s.configStore.GetString(KeyAPIKey)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

// getDelay honours an explicit zero, which disables pacing.
func (s *SettingsService) getDelay(defaultVal time.Duration) time.Duration {
	if _, ok := s.configStore.Get(KeyFetchDelay); !ok {
		return defaultVal
	}
	return time.Duration(s.configStore.GetInt(KeyFetchDelay)) * time.Millisecond
}

func isSettingKey(key string) bool {
	for _, k := range settingKeys {
		if k == key {
			return true
		}
	}
	return false
}

func formatSources(sources []domain.CatalogSource) []string {
	out := make([]string, len(sources))
	for i, src := range sources {
		if src.Mount == "" {
			out[i] = src.URL
			continue
		}
		out[i] = src.URL + "=" + src.Mount
	}
	return out
}
