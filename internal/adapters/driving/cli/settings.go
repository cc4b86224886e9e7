package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// settingAliases maps short names accepted by "settings set" to config keys.
var settingAliases = map[string]string{
	"api-key":    "flickr.api_key",
	"endpoint":   "flickr.endpoint",
	"per-page":   "flickr.per_page",
	"delay-ms":   "fetch.delay_ms",
	"user-agent": "fetch.user_agent",
	"contact":    "fetch.contact",
	"data-dir":   "storage.data_dir",
	"cache-file": "storage.cache_file",
	"sources":    "catalog.sources",
}

const apiKeySetting = "flickr.api_key"

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change lenscout settings.

Settings are stored in ~/.lenscout/config.toml. The Flickr API key can also
be supplied with the LENSCOUT_FLICKR_API_KEY environment variable, which
takes precedence over the stored key.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Change a setting",
	Long: `Change a setting. An empty value restores the default.

Keys (short name or full key):
  api-key     flickr.api_key      Flickr API key (prompted without echo if omitted)
  endpoint    flickr.endpoint     Flickr REST endpoint
  per-page    flickr.per_page     photos per search (1-500)
  delay-ms    fetch.delay_ms      pause before each network request, 0 disables
  user-agent  fetch.user_agent    User-Agent header
  contact     fetch.contact       From header for upstream operators
  data-dir    storage.data_dir    directory for the cache and catalog
  cache-file  storage.cache_file  response cache file
  sources     catalog.sources     comma-separated url[=mount] list`,
	Example: `  lenscout settings set api-key
  lenscout settings set delay-ms 2000
  lenscout settings set sources "https://lens-db.com/lens-lineup/canon-rf/=Canon RF"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(heading("Current Settings"))
	cmd.Println()

	cmd.Println("[Flickr]")
	if settings.PhotoAPI.IsConfigured() {
		source := ""
		if envKey, ok := settingsService.(interface{ APIKeyFromEnv() bool }); ok && envKey.APIKeyFromEnv() {
			source = " " + muted("(from environment)")
		}
		cmd.Printf("  API Key: %s%s\n", maskAPIKey(settings.PhotoAPI.APIKey), source)
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Endpoint: %s\n", settings.PhotoAPI.Endpoint)
	cmd.Printf("  Per page: %d\n", settings.PhotoAPI.PerPage)
	cmd.Println()

	cmd.Println("[Fetch]")
	cmd.Printf("  Delay: %s\n", settings.Fetch.Delay)
	cmd.Printf("  User agent: %s\n", settings.Fetch.UserAgent)
	if settings.Fetch.Contact != "" {
		cmd.Printf("  Contact: %s\n", settings.Fetch.Contact)
	}
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Data dir: %s\n", orDefault(settings.Storage.DataDir, "~/.lenscout/data"))
	cmd.Printf("  Cache file: %s\n", orDefault(settings.Storage.CacheFile, "<data dir>/"+domain.DefaultCacheFile))
	cmd.Println()

	cmd.Printf("[Catalog] %d sources\n", len(settings.Sources))
	for _, src := range settings.Sources {
		cmd.Printf("  %s %s\n", src.URL, muted(src.Mount))
	}
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	if full, ok := settingAliases[key]; ok {
		key = full
	}

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		if key != apiKeySetting {
			return fmt.Errorf("a value is required for %s", key)
		}
		cmd.Print("Flickr API key: ")
		value = readSecret(cmd.InOrStdin())
		cmd.Println()
		if value == "" {
			return errors.New("no API key entered")
		}
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to update %s: %w", key, err)
	}

	shown := value
	if key == apiKeySetting {
		shown = maskAPIKey(value)
	}
	if value == "" {
		cmd.Printf("Reset %s to its default.\n", key)
	} else {
		cmd.Printf("Set %s to %s\n", key, shown)
	}
	return nil
}

// readSecret reads a line without echo when in is the terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readSecret(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
