package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

var (
	exifJSON bool
	exifTop  int
)

var exifCmd = &cobra.Command{
	Use:   "exif <keyword>",
	Short: "Report focal lengths and cameras used for a keyword",
	Long: `Searches Flickr for photos tagged with the keyword, reads the EXIF record of
each result and counts the 35mm-equivalent focal lengths, camera makes and
camera models that appear.

Requires a Flickr API key (lenscout settings set api-key).`,
	Args: cobra.ExactArgs(1),
	RunE: runExif,
}

var photosCmd = &cobra.Command{
	Use:   "photos <keyword>",
	Short: "List photo URLs for a keyword",
	Args:  cobra.ExactArgs(1),
	RunE:  runPhotos,
}

func init() {
	exifCmd.Flags().BoolVar(&exifJSON, "json", false, "output the report as JSON")
	exifCmd.Flags().IntVarP(&exifTop, "top", "n", 10, "rows shown per table (0 = all)")
	rootCmd.AddCommand(exifCmd)
	rootCmd.AddCommand(photosCmd)
}

func runExif(cmd *cobra.Command, args []string) error {
	if exifService == nil {
		return errors.New("exif service not configured")
	}

	report, err := exifService.Report(cmd.Context(), args[0])
	if err != nil {
		return exifError(err)
	}

	if exifJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s %q: %d photos, %d with EXIF data\n",
		heading("EXIF report for"), report.Keyword, report.Photos, report.Samples)

	printCounts(cmd, "Focal length (35mm)", report.FocalLengths)
	printCounts(cmd, "Make", report.Makes)
	printCounts(cmd, "Model", report.Models)
	return nil
}

func printCounts(cmd *cobra.Command, title string, counts []domain.FrequencyCount) {
	cmd.Println()
	if len(counts) == 0 {
		cmd.Printf("%s: %s\n", title, muted("none"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{title, "Photos"})
	for i, c := range counts {
		if exifTop > 0 && i == exifTop {
			t.AppendFooter(table.Row{fmt.Sprintf("+%d more", len(counts)-exifTop), ""})
			break
		}
		t.AppendRow(table.Row{c.Value, c.Count})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func runPhotos(cmd *cobra.Command, args []string) error {
	if exifService == nil {
		return errors.New("exif service not configured")
	}

	urls, err := exifService.PhotoURLs(cmd.Context(), args[0])
	if err != nil {
		return exifError(err)
	}

	if len(urls) == 0 {
		cmd.Println("No photos found.")
		return nil
	}
	for _, u := range urls {
		cmd.Println(u)
	}
	return nil
}

func exifError(err error) error {
	if errors.Is(err, domain.ErrAPIKeyMissing) {
		return fmt.Errorf("%w: run 'lenscout settings set api-key' or set LENSCOUT_FLICKR_API_KEY", err)
	}
	return fmt.Errorf("exif request failed: %w", err)
}
