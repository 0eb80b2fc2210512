package electors

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hkelection-backend/lib/telemetry"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "services/electors")
	defer cleanup()

	source := &fakeSource{data: map[int]map[int]int{
		2019: {2019: 3800000},
		2020: {2020: 4000000},
		2022: {2022: 4200000},
	}}
	service := NewService(source)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	result, err := service.GetRegisteredElectors(ctx, 2019, 2022)
	require.NoError(t, err)
	require.Equal(t, Result{
		Data: []YearCount{
			{Year: 2019, Electors: 3800000},
			{Year: 2020, Electors: 4000000},
			{Year: 2022, Electors: 4200000},
		},
		Source: "Registration and Electoral Office",
		Note:   "Data fetched from voterregistration.gov.hk",
	}, result)

	_, err = service.GetRegisteredElectors(ctx, 2000, 2022)
	require.ErrorIs(t, err, ErrStartYearTooEarly)

	_, err = service.GetRegisteredElectors(ctx, 2023, 2024)
	require.ErrorIs(t, err, ErrNoData)
}

func TestServiceExcludesOutOfRangeYears(t *testing.T) {
	// the 2019 file bundles a year past the requested range
	source := &fakeSource{data: map[int]map[int]int{
		2019: {2019: 3800000, 2021: 4100000},
	}}
	service := NewService(source)

	result, err := service.GetRegisteredElectors(context.Background(), 2019, 2019)
	require.NoError(t, err)
	require.Equal(t, []YearCount{{Year: 2019, Electors: 3800000}}, result.Data)
}

type captureRegistry struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

func (r *captureRegistry) AddTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	r.tool = tool
	r.handler = handler
}

func callTool(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) *mcp.CallToolResult {
	res, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "get_gc_registered_electors",
			Arguments: args,
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	return res
}

func toolText(t *testing.T, res *mcp.CallToolResult) string {
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestRegisterTool(t *testing.T) {
	source := &fakeSource{data: map[int]map[int]int{
		2015: {2015: 3693942, 2016: 3779085},
	}}

	registry := &captureRegistry{}
	NewService(source).Register(registry)

	require.Equal(t, "get_gc_registered_electors", registry.tool.Name)
	require.Equal(
		t,
		"Get the number of registered electors in Hong Kong's geographical constituencies by year range",
		registry.tool.Description,
	)
	require.NotNil(t, registry.handler)

	res := callTool(t, registry.handler, map[string]any{
		"start_year": 2015,
		"end_year":   2016,
	})
	require.False(t, res.IsError)

	var payload Result
	err := json.Unmarshal([]byte(toolText(t, res)), &payload)
	require.NoError(t, err)
	require.Equal(t, []YearCount{
		{Year: 2015, Electors: 3693942},
		{Year: 2016, Electors: 3779085},
	}, payload.Data)
	require.Equal(t, "Registration and Electoral Office", payload.Source)
	require.Equal(t, "Data fetched from voterregistration.gov.hk", payload.Note)
}

func TestToolHandlerErrors(t *testing.T) {
	registry := &captureRegistry{}
	NewService(&fakeSource{}).Register(registry)

	res := callTool(t, registry.handler, map[string]any{
		"start_year": 2000,
		"end_year":   2010,
	})
	require.True(t, res.IsError)
	require.Equal(t, "Start year must be 2009 or later", toolText(t, res))

	res = callTool(t, registry.handler, map[string]any{
		"start_year": 2010,
		"end_year":   2009,
	})
	require.True(t, res.IsError)
	require.Equal(t, "Start year must be less than or equal to end year", toolText(t, res))

	res = callTool(t, registry.handler, map[string]any{
		"start_year": 2019,
		"end_year":   2020,
	})
	require.True(t, res.IsError)
	require.Equal(t, "No data found for the specified year range", toolText(t, res))

	// missing arguments surface as tool errors, not handler panics
	res = callTool(t, registry.handler, map[string]any{"start_year": 2019})
	require.True(t, res.IsError)
}
