// Package mcp provides an MCP (Model Context Protocol) server adapter for lenscout.
// It lets AI assistants query the lens catalog and run EXIF reports.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
