package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List catalogued lens brands",
	Args:  cobra.NoArgs,
	RunE:  runBrands,
}

func init() {
	rootCmd.AddCommand(brandsCmd)
}

func runBrands(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	stats, err := catalogService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	if len(stats.Brands) == 0 {
		cmd.Println("The catalog is empty. Run 'lenscout refresh' first.")
		return nil
	}

	for _, b := range stats.Brands {
		cmd.Println(b)
	}
	cmd.Println(muted(fmt.Sprintf("%d lenses, %d with example photos", stats.Lenses, stats.ExampleSets)))
	return nil
}
