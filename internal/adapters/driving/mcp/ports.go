package mcp

import (
	"github.com/lenscout/lenscout-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the MCP server.
type Ports struct {
	// Catalog answers lens queries.
	Catalog driving.CatalogService

	// Exif builds gear reports. Optional; without it the exif_report
	// tool reports that no API key is configured.
	Exif driving.ExifService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
