// Package cli implements the lenscout command line with cobra.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driving"
	"github.com/lenscout/lenscout-cli/internal/logger"
)

// version is reported by the version command; main overrides it.
var version = "dev"

// Services wired in by main.
var (
	catalogService  driving.CatalogService
	exifService     driving.ExifService
	settingsService driving.SettingsService
	responseCache   driven.ResponseCache
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lenscout",
	Short: "Find lenses by brand and focal length, and see what gear photographers use",
	Long: `lenscout keeps a local catalog of lenses scraped from lens-db.com, each with
up to three example photos, and reports which focal lengths, camera makes and
models appear in Flickr photos for a keyword.

Every network response is cached on disk, so repeated runs are served locally.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

// Services holds the driving ports and shared adapters used by commands.
type Services struct {
	Catalog  driving.CatalogService
	Exif     driving.ExifService
	Settings driving.SettingsService
	Cache    driven.ResponseCache
}

// SetServices injects the services used by all commands.
func SetServices(s Services) {
	catalogService = s.Catalog
	exifService = s.Exif
	settingsService = s.Settings
	responseCache = s.Cache
}

// SetVersion overrides the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Command output goes to stdout and
// errors to stderr.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	return rootCmd.ExecuteContext(ctx)
}
