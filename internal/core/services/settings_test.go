package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenscout/lenscout-cli/internal/adapters/driven/storage/memory"
	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

func newTestSettingsService(values map[string]any, env map[string]string) *SettingsService {
	s := NewSettingsService(memory.NewConfigStore(values))
	s.getenv = func(key string) string { return env[key] }
	return s
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := newTestSettingsService(nil, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults, *settings)
	assert.False(t, settings.PhotoAPI.IsConfigured())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	service := newTestSettingsService(map[string]any{
		KeyAPIKey:         "abcdef123456",
		KeyPerPage:        int64(50),
		KeyFetchDelay:     int64(0),
		KeyUserAgent:      "lenscout-test",
		KeyContact:        "someone@example.com",
		KeyDataDir:        "/tmp/lenscout",
		KeyCatalogSources: []any{"https://lens-db.com/lens-lineup/canon-rf/=Canon RF"},
	}, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "abcdef123456", settings.PhotoAPI.APIKey)
	assert.Equal(t, domain.DefaultAPIEndpoint, settings.PhotoAPI.Endpoint)
	assert.Equal(t, 50, settings.PhotoAPI.PerPage)
	assert.Equal(t, time.Duration(0), settings.Fetch.Delay, "explicit zero disables pacing")
	assert.Equal(t, "lenscout-test", settings.Fetch.UserAgent)
	assert.Equal(t, "someone@example.com", settings.Fetch.Contact)
	assert.Equal(t, "/tmp/lenscout", settings.Storage.DataDir)
	assert.Equal(t, []domain.CatalogSource{
		{URL: "https://lens-db.com/lens-lineup/canon-rf/", Mount: "Canon RF"},
	}, settings.Sources)
}

func TestSettingsService_Get_EnvironmentKeyWins(t *testing.T) {
	service := newTestSettingsService(
		map[string]any{KeyAPIKey: "stored-key-123"},
		map[string]string{EnvAPIKey: " env-key-456 "},
	)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "env-key-456", settings.PhotoAPI.APIKey)
	assert.True(t, service.APIKeyFromEnv())
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	service.getenv = func(string) string { return "" }

	settings := domain.DefaultAppSettings()
	settings.PhotoAPI.APIKey = "abcdef123456"
	settings.Fetch.Delay = 250 * time.Millisecond
	settings.Sources = []domain.CatalogSource{
		{URL: "https://lens-db.com/lens-lineup/sony-e/", Mount: "Sony FE"},
		{URL: "https://lens-db.com/lens-lineup/fujifilm-x/"},
	}

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "abcdef123456", store.GetString(KeyAPIKey))
	assert.Equal(t, 250, store.GetInt(KeyFetchDelay))
	assert.Equal(t, []string{
		"https://lens-db.com/lens-lineup/sony-e/=Sony FE",
		"https://lens-db.com/lens-lineup/fujifilm-x/",
	}, store.GetStringSlice(KeyCatalogSources))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.PhotoAPI.PerPage = 0

	err := service.Save(&settings)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.Keys())
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  any
	}{
		{name: "api key", key: KeyAPIKey, value: "abcdef123456", want: "abcdef123456"},
		{name: "per page", key: KeyPerPage, value: "100", want: 100},
		{name: "delay", key: KeyFetchDelay, value: "0", want: 0},
		{name: "user agent", key: KeyUserAgent, value: "lenscout/2", want: "lenscout/2"},
		{
			name:  "sources",
			key:   KeyCatalogSources,
			value: "https://a.example/=Canon EF, https://b.example/",
			want:  []string{"https://a.example/=Canon EF", "https://b.example/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			require.NoError(t, service.Set(tt.key, tt.value))

			got, ok := store.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown key", key: "search.mode", value: "x"},
		{name: "short api key", key: KeyAPIKey, value: "abc"},
		{name: "per page not a number", key: KeyPerPage, value: "many"},
		{name: "per page out of range", key: KeyPerPage, value: "501"},
		{name: "negative delay", key: KeyFetchDelay, value: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, store.Keys())
		})
	}
}

func TestSettingsService_Set_EmptyValueRestoresDefault(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{KeyPerPage: 99})
	service := NewSettingsService(store)

	require.NoError(t, service.Set(KeyPerPage, ""))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPerPage, settings.PhotoAPI.PerPage)
}

func TestSettingsService_Keys(t *testing.T) {
	service := newTestSettingsService(nil, nil)

	keys := service.Keys()

	assert.Contains(t, keys, KeyAPIKey)
	assert.Contains(t, keys, KeyCatalogSources)
	keys[0] = "mutated"
	assert.Equal(t, KeyAPIKey, service.Keys()[0])
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := newTestSettingsService(nil, nil)

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
