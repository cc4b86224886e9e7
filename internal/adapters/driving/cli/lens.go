package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

var lensJSON bool

var lensCmd = &cobra.Command{
	Use:   "lens <brand> <focal>",
	Short: "List lenses of a brand covering a focal length",
	Long: `Lists catalogued lenses of the given brand whose focal range contains the
given focal length in millimetres, with up to three example photos each.

The brand must match the catalog exactly (see "lenscout brands").`,
	Example: `  lenscout lens Canon 50
  lenscout lens Sony 85 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runLens,
}

func init() {
	lensCmd.Flags().BoolVar(&lensJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(lensCmd)
}

func runLens(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	focal, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("focal length must be a whole number of millimetres, got %q", args[1])
	}

	rows, err := catalogService.Query(cmd.Context(), args[0], focal)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if lensJSON {
		if rows == nil {
			rows = []domain.LensRow{}
		}
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(rows) == 0 {
		cmd.Printf("No %s lenses cover %dmm.\n", args[0], focal)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Name", "Brand", "Mount", "Min", "Max", "Detail", "Example 1", "Example 2", "Example 3"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Name, r.Brand, r.Mount, r.FocalMin, r.FocalMax, r.DetailLink,
			r.Examples[0], r.Examples[1], r.Examples[2],
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
