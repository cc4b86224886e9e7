package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lenscout/lenscout-cli/internal/adapters/driving/httpapi"
	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog as a JSON API",
	Long: `Starts an HTTP server with the endpoints:

  GET /health
  GET /brands
  GET /lenses?brand=<brand>&focal=<mm>
  GET /exif/<keyword>

The server stops on interrupt.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", domain.DefaultHTTPAddress, "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := httpapi.NewServer(catalogService, exifService)
	if err != nil {
		return err
	}

	cmd.Printf("Serving on http://%s\n", serveAddr)
	if err := server.Run(cmd.Context(), serveAddr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
