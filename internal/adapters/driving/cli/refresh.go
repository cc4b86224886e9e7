package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lenscout/lenscout-cli/internal/adapters/driven/config/file"
	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

var (
	refreshSourcesFile string
	refreshSources     []string
	refreshJSON        bool
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the lens catalog from lens-db.com",
	Long: `Drops the lens catalog and rebuilds it from the configured listing pages.

Each listing page is fetched, every lens row is turned into a lens record and
its detail page is searched for up to three example photos. A page that fails
is reported and skipped; the remaining pages are still processed.

Sources come from, in order of precedence:
  --source url[=mount]   (repeatable)
  --sources-file file    (YAML, a "sources" list of url/mount entries)
  catalog.sources        (settings)
  the built-in list of twelve mount families`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().StringVar(&refreshSourcesFile, "sources-file", "", "YAML file listing catalog sources")
	refreshCmd.Flags().StringSliceVar(&refreshSources, "source", nil, "catalog source as url or url=mount (repeatable)")
	refreshCmd.Flags().BoolVar(&refreshJSON, "json", false, "output the refresh report as JSON")
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	sources, err := resolveSources()
	if err != nil {
		return err
	}

	report, err := catalogService.Refresh(cmd.Context(), sources)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	if refreshJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
	} else {
		printRefreshReport(cmd, report)
	}

	if report.Failed() {
		return fmt.Errorf("%d of %d sources failed", len(report.Failures), len(sources))
	}
	return nil
}

func resolveSources() ([]domain.CatalogSource, error) {
	if len(refreshSources) > 0 {
		return domain.ParseCatalogSources(refreshSources), nil
	}
	if refreshSourcesFile != "" {
		return file.LoadSources(refreshSourcesFile)
	}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return nil, fmt.Errorf("failed to get settings: %w", err)
		}
		return settings.Sources, nil
	}
	return domain.DefaultCatalogSources(), nil
}

func printRefreshReport(cmd *cobra.Command, report *domain.RefreshReport) {
	cmd.Println(heading("Catalog refresh") + " " + muted(report.RunID))
	cmd.Println()

	for _, src := range report.Sources {
		cmd.Printf("  %s %s\n", successStyle.Render("ok"), src.Source)
		cmd.Printf("     lenses: %d  examples: %d", src.LensesInserted, src.ExamplesStored)
		if len(src.Skipped) > 0 {
			cmd.Printf("  skipped: %d", len(src.Skipped))
		}
		cmd.Println()
		for _, name := range src.Duplicates {
			cmd.Printf("     %s duplicate rejected: %s\n", warningStyle.Render("!"), name)
		}
	}

	for _, f := range report.Failures {
		cmd.Printf("  %s %s (%s stage)\n", errorStyle.Render("failed"), f.Source, f.Stage)
		cmd.Printf("     %s\n", f.Error)
	}

	cmd.Println()
	cmd.Printf("%d lenses stored in %s\n", report.TotalLenses(),
		report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
}
