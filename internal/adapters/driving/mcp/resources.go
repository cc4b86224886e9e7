package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "lenscout://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalog",
		Name:        "catalog",
		Description: "Lens and example set counts plus the catalogued brands",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "lenses/{brand}/{focal}",
		Name:        "lenses",
		Description: "Lenses of a brand covering a focal length, with example photos",
		MIMEType:    "application/json",
	}, s.handleLensesResource)
}

func (s *Server) handleCatalogResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats, err := s.ports.Catalog.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog stats: %w", err)
	}
	return jsonResource(req.Params.URI, stats)
}

func (s *Server) handleLensesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	brand, focal, ok := parseLensesURI(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rows, err := s.ports.Catalog.Query(ctx, brand, focal)
	if err != nil {
		return nil, fmt.Errorf("querying lenses: %w", err)
	}
	return jsonResource(req.Params.URI, rows)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// parseLensesURI extracts brand and focal from lenscout://lenses/{brand}/{focal}.
func parseLensesURI(uri string) (string, int, bool) {
	const prefix = uriScheme + "lenses/"

	rest, found := strings.CutPrefix(uri, prefix)
	if !found {
		return "", 0, false
	}

	brand, focalStr, found := strings.Cut(rest, "/")
	if !found || brand == "" {
		return "", 0, false
	}

	focal, err := strconv.Atoi(focalStr)
	if err != nil || focal <= 0 {
		return "", 0, false
	}
	return brand, focal, true
}
