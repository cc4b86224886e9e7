package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// FindLensesInput is the input schema for the find_lenses tool.
type FindLensesInput struct {
	Brand string `json:"brand" jsonschema:"lens brand exactly as catalogued, e.g. Canon"`
	Focal int    `json:"focal" jsonschema:"focal length in millimetres the lens must cover"`
}

// FindLensesOutput is the output schema for the find_lenses tool.
type FindLensesOutput struct {
	Lenses []domain.LensRow `json:"lenses"`
	Count  int              `json:"count"`
}

// ExifReportInput is the input schema for the exif_report tool.
type ExifReportInput struct {
	Keyword string `json:"keyword" jsonschema:"photo tag to search for"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_lenses",
		Description: "Find catalogued lenses of a brand whose focal range covers a focal length",
	}, s.handleFindLenses)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "exif_report",
		Description: "Count focal lengths, camera makes and models used in photos tagged with a keyword",
	}, s.handleExifReport)
}

func (s *Server) handleFindLenses(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindLensesInput,
) (*mcp.CallToolResult, FindLensesOutput, error) {
	rows, err := s.ports.Catalog.Query(ctx, input.Brand, input.Focal)
	if err != nil {
		return nil, FindLensesOutput{}, err
	}

	if rows == nil {
		rows = []domain.LensRow{}
	}
	return nil, FindLensesOutput{Lenses: rows, Count: len(rows)}, nil
}

func (s *Server) handleExifReport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExifReportInput,
) (*mcp.CallToolResult, domain.ExifReport, error) {
	if s.ports.Exif == nil {
		return nil, domain.ExifReport{}, domain.ErrAPIKeyMissing
	}

	report, err := s.ports.Exif.Report(ctx, input.Keyword)
	if err != nil {
		return nil, domain.ExifReport{}, err
	}
	return nil, *report, nil
}
