package electors

import (
	"context"
	"encoding/json"

	"hkelection-backend/lib/toolserver"

	"github.com/mark3labs/mcp-go/mcp"
)

const toolDescription = "Get the number of registered electors in Hong Kong's geographical constituencies by year range"

// Register attaches the get_gc_registered_electors tool.
func (s Service) Register(registry toolserver.Registry) {
	tool := mcp.NewTool(
		"get_gc_registered_electors",
		mcp.WithDescription(toolDescription),
		mcp.WithNumber(
			"start_year",
			mcp.Required(),
			mcp.Description("Start year for data range"),
		),
		mcp.WithNumber(
			"end_year",
			mcp.Required(),
			mcp.Description("End year for data range"),
		),
	)
	registry.AddTool(tool, s.handleGetRegisteredElectors)
}

func (s Service) handleGetRegisteredElectors(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	startYear, err := req.RequireInt("start_year")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	endYear, err := req.RequireInt("end_year")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.GetRegisteredElectors(ctx, startYear, endYear)
	if err != nil {
		// the caller gets a single error message, never a partial
		// dataset alongside one
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}
