package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation ("flickr.api_key"); implementations handle
// persistence and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key is absent or not a string.
	GetString(key string) string

	// GetInt returns 0 if the key is absent or not an integer.
	GetInt(key string) int

	// GetStringSlice returns nil if the key is absent or not a list.
	GetStringSlice(key string) []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Delete removes a key and persists the change.
	Delete(key string) error

	// Keys returns all stored keys in sorted order.
	Keys() []string

	// Path returns the configuration location.
	Path() string
}
