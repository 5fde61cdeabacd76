// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func decodeResult(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	payload := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}

func TestToolDefinitions(t *testing.T) {
	svc := &Service{}
	tests := []struct {
		name string
		tool interface{ Definition() mcp.Tool }
	}{
		{"search_projects", NewSearchProjectsTool(svc)},
		{"get_search_summary", NewSearchSummaryTool(svc)},
		{"find_project_ids", NewFindProjectIDsTool(svc)},
		{"get_project_information", NewProjectInformationTool(svc)},
	}
	for _, tt := range tests {
		def := tt.tool.Definition()
		require.Equal(t, tt.name, def.Name)
		require.NotEmpty(t, def.Description)
		require.NotNil(t, def.Annotations.ReadOnlyHint)
		require.True(t, *def.Annotations.ReadOnlyHint)
	}
}

func TestSearchToolsShareCriteriaArguments(t *testing.T) {
	def := NewSearchProjectsTool(&Service{}).Definition()
	for _, arg := range []string{
		"search_text", "operator", "search_fields", "years", "agencies",
		"organizations", "pi_name", "project_numbers", "org_states",
		"opportunity_numbers", "activity_codes", "funding_mechanisms",
	} {
		require.Contains(t, def.InputSchema.Properties, arg)
	}
}

func TestProjectInformationToolRequiredArguments(t *testing.T) {
	def := NewProjectInformationTool(&Service{}).Definition()
	require.ElementsMatch(t, []string{"project_ids", "include_fields"}, def.InputSchema.Required)
}

func TestHandleSearchProjects(t *testing.T) {
	fs := &fixtureServer{records: []map[string]any{
		fixtureRecord("1R01CA000001-01", 2023, "NCI", 250000),
	}}
	tool := NewSearchProjectsTool(newTestService(t, fs))

	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"search_text": "cancer",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	payload := decodeResult(t, result)
	require.EqualValues(t, 1, payload["total_projects"])
	require.Contains(t, payload, "year_distribution")
	require.Contains(t, payload, "award_amount_stats")
}

func TestHandleInvalidArgumentsAreToolErrors(t *testing.T) {
	svc := newTestService(t, &fixtureServer{})
	tests := []struct {
		name string
		tool interface {
			Handle(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
		}
		args map[string]any
	}{
		{"bad agency", NewSearchProjectsTool(svc), map[string]any{"agencies": []any{"NASA"}}},
		{"bad operator", NewSearchSummaryTool(svc), map[string]any{"search_text": "x", "operator": "near"}},
		{"bad state", NewFindProjectIDsTool(svc), map[string]any{"org_states": []any{"ZZ"}}},
		{"missing ids", NewProjectInformationTool(svc), map[string]any{"include_fields": []any{"ProjectNum"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.tool.Handle(context.Background(), callRequest(tt.args))
			require.NoError(t, err)
			require.True(t, result.IsError)
		})
	}
}

func TestHandleFindProjectIDs(t *testing.T) {
	fs := &fixtureServer{records: []map[string]any{
		fixtureRecord("1R01CA000001-01", 2023, "NCI", 0),
		fixtureRecord("1R01GM000002-01", 2024, "NIGMS", 0),
	}}
	tool := NewFindProjectIDsTool(newTestService(t, fs))

	result, err := tool.Handle(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	payload := decodeResult(t, result)
	require.EqualValues(t, 2, payload["returned_projects"])
	require.Equal(t, false, payload["has_more_results"])
	ids, ok := payload["project_ids"].([]any)
	require.True(t, ok)
	require.Len(t, ids, 2)
}

func TestHandleProjectInformation(t *testing.T) {
	fs := &fixtureServer{records: []map[string]any{
		{"project_num": "1R01MD013338-01", "award_amount": 420000},
	}}
	tool := NewProjectInformationTool(newTestService(t, fs))

	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"project_ids":    []any{"1r01md013338-01"},
		"include_fields": []any{"ProjectNum", "AwardAmount"},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	payload := decodeResult(t, result)
	results, ok := payload["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)
}
