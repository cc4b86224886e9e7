// Command lenscout is the lens catalog and Flickr EXIF command line tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lenscout/lenscout-cli/internal/adapters/driven/cache"
	"github.com/lenscout/lenscout-cli/internal/adapters/driven/config/file"
	"github.com/lenscout/lenscout-cli/internal/adapters/driven/fetch"
	"github.com/lenscout/lenscout-cli/internal/adapters/driven/storage/sqlite"
	"github.com/lenscout/lenscout-cli/internal/adapters/driving/cli"
	"github.com/lenscout/lenscout-cli/internal/connectors/flickr"
	"github.com/lenscout/lenscout-cli/internal/connectors/lensdb"
	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
	"github.com/lenscout/lenscout-cli/internal/core/services"
	"github.com/lenscout/lenscout-cli/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=v1.2.3".
var version string

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	responseCache, err := cache.Open(cachePath(settings.Storage))
	if err != nil {
		return fmt.Errorf("open response cache: %w", err)
	}
	defer closeAndLog("response cache", responseCache)

	store, err := sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer closeAndLog("catalog", store)

	fetcher := fetch.New(responseCache,
		fetch.WithDelay(settings.Fetch.Delay),
		fetch.WithUserAgent(settings.Fetch.UserAgent),
		fetch.WithContact(settings.Fetch.Contact),
		fetch.WithAPICheck(flickr.CheckEnvelope),
	)

	// Commands that need the photo API report a missing key themselves.
	var photos driven.PhotoAPI
	if settings.PhotoAPI.IsConfigured() {
		client, err := flickr.NewClient(fetcher, flickr.ConfigFromSettings(settings.PhotoAPI))
		if err != nil {
			return fmt.Errorf("create flickr client: %w", err)
		}
		photos = client
	} else {
		logger.Debug("flickr api key not configured")
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Catalog:  services.NewCatalogService(lensdb.NewScraper(fetcher), store.CatalogStore()),
		Exif:     services.NewExifService(photos),
		Settings: settingsService,
		Cache:    responseCache,
	})

	return cli.Execute(ctx)
}

// closeAndLog closes c and logs a failure; the final cache flush happens here.
func closeAndLog(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Warn("closing "+name, "error", err)
	}
}

// cachePath resolves the response cache file. Empty means the cache
// package default.
func cachePath(s domain.StorageSettings) string {
	switch {
	case s.CacheFile != "":
		return s.CacheFile
	case s.DataDir != "":
		return filepath.Join(s.DataDir, domain.DefaultCacheFile)
	default:
		return ""
	}
}
