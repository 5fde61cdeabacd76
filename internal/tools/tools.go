// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// stringArray is the item schema for string-valued array arguments.
func stringArray() map[string]any {
	return map[string]any{"type": "string"}
}

// intArray is the item schema for integer-valued array arguments.
func intArray() map[string]any {
	return map[string]any{"type": "number"}
}

// criteriaOptions are the search-criteria arguments shared by the three
// search tools.
func criteriaOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("search_text",
			mcp.Description("Free text to search for in project titles, abstracts, and indexed terms.")),
		mcp.WithString("operator",
			mcp.Description("How to combine search terms: all, or, and, advanced (defaults to and).")),
		mcp.WithArray("search_fields",
			mcp.Description("Fields to search: projecttitle, abstract, terms (defaults to all three)."),
			mcp.Items(stringArray())),
		mcp.WithArray("years",
			mcp.Description("Fiscal years in which projects are active (e.g. [2023, 2024])."),
			mcp.Items(intArray())),
		mcp.WithArray("agencies",
			mcp.Description("NIH institute or center codes funding the grant (e.g. [\"NCI\"]); defaults to [\"NIH\"]."),
			mcp.Items(stringArray())),
		mcp.WithArray("organizations",
			mcp.Description("Names of organizations that received funding (e.g. [\"Johns Hopkins University\"])."),
			mcp.Items(stringArray())),
		mcp.WithString("pi_name",
			mcp.Description("Name of the grant's principal investigator (matched against any listed name).")),
		mcp.WithArray("project_numbers",
			mcp.Description("Project numbers assigned by RePORTER (e.g. [\"1F32AG052995-01A1\"])."),
			mcp.Items(stringArray())),
		mcp.WithArray("org_states",
			mcp.Description("Two-letter organization state codes (e.g. [\"MD\", \"CA\"])."),
			mcp.Items(stringArray())),
		mcp.WithArray("opportunity_numbers",
			mcp.Description("Funding opportunity numbers (e.g. [\"PAR-21-293\"])."),
			mcp.Items(stringArray())),
		mcp.WithArray("activity_codes",
			mcp.Description("Activity codes classifying the grant type (e.g. [\"R01\", \"F32\"])."),
			mcp.Items(stringArray())),
		mcp.WithArray("funding_mechanisms",
			mcp.Description("Funding mechanism category codes (e.g. [\"RP\", \"RC\"])."),
			mcp.Items(stringArray())),
	}
}

// readOnlyHints mark all four tools as non-mutating lookups against an
// external service.
func readOnlyHints() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}
}

// SearchProjectsTool implements the search_projects MCP tool.
type SearchProjectsTool struct {
	svc *Service
}

// NewSearchProjectsTool constructs a SearchProjectsTool.
func NewSearchProjectsTool(svc *Service) *SearchProjectsTool {
	return &SearchProjectsTool{svc: svc}
}

// Definition returns the MCP metadata for search_projects.
func (t *SearchProjectsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Quick preview of grants matching search criteria: total match count plus " +
			"distributions (year, institute, activity code, organization, funding mechanism, active status, " +
			"award amounts) sampled from the first 500 results. Use this first to gauge the scope of a search."),
	}
	opts = append(opts, criteriaOptions()...)
	opts = append(opts, readOnlyHints()...)
	return mcp.NewTool("search_projects", opts...)
}

// Handle executes the search_projects tool logic.
func (t *SearchProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crit, err := CriteriaFromArgs(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := t.svc.SearchProjects(ctx, crit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultJSON(out)
}

// SearchSummaryTool implements the get_search_summary MCP tool.
type SearchSummaryTool struct {
	svc *Service
}

// NewSearchSummaryTool constructs a SearchSummaryTool.
func NewSearchSummaryTool(svc *Service) *SearchSummaryTool {
	return &SearchSummaryTool{svc: svc}
}

// Definition returns the MCP metadata for get_search_summary.
func (t *SearchSummaryTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Complete summary of ALL grants matching search criteria. Unlike search_projects " +
			"(a 500-result sample), this pages through every match for exact statistics. Use it for precise " +
			"totals such as overall funding; it can be slow for large result sets."),
	}
	opts = append(opts, criteriaOptions()...)
	opts = append(opts, readOnlyHints()...)
	return mcp.NewTool("get_search_summary", opts...)
}

// Handle executes the get_search_summary tool logic.
func (t *SearchSummaryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crit, err := CriteriaFromArgs(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := t.svc.SearchSummary(ctx, crit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultJSON(out)
}

// FindProjectIDsTool implements the find_project_ids MCP tool.
type FindProjectIDsTool struct {
	svc *Service
}

// NewFindProjectIDsTool constructs a FindProjectIDsTool.
func NewFindProjectIDsTool(svc *Service) *FindProjectIDsTool {
	return &FindProjectIDsTool{svc: svc}
}

// Definition returns the MCP metadata for find_project_ids.
func (t *FindProjectIDsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Find grants matching search criteria and return up to 500 project numbers with " +
			"overview distributions. When has_more_results is true, refine the criteria to narrow the set."),
	}
	opts = append(opts, criteriaOptions()...)
	opts = append(opts, readOnlyHints()...)
	return mcp.NewTool("find_project_ids", opts...)
}

// Handle executes the find_project_ids tool logic.
func (t *FindProjectIDsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crit, err := CriteriaFromArgs(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := t.svc.FindProjectIDs(ctx, crit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultJSON(out)
}

// ProjectInformationTool implements the get_project_information MCP tool.
type ProjectInformationTool struct {
	svc *Service
}

// NewProjectInformationTool constructs a ProjectInformationTool.
func NewProjectInformationTool(svc *Service) *ProjectInformationTool {
	return &ProjectInformationTool{svc: svc}
}

// Definition returns the MCP metadata for get_project_information.
func (t *ProjectInformationTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Fetch chosen metadata fields for explicit project numbers. Pick include_fields " +
			"relevant to the question: AwardAmount for funding, PrincipalInvestigators for PI questions, " +
			"Organization for institutions. Always include ProjectNum for reference."),
		mcp.WithArray("project_ids",
			mcp.Required(),
			mcp.Description("Project numbers to look up (e.g. [\"7R01DA034777-04\"])."),
			mcp.Items(stringArray())),
		mcp.WithArray("include_fields",
			mcp.Required(),
			mcp.Description("Field names to return, e.g. [\"ProjectNum\", \"AwardAmount\", \"FiscalYear\"]."),
			mcp.Items(stringArray())),
	}
	opts = append(opts, readOnlyHints()...)
	return mcp.NewTool("get_project_information", opts...)
}

// Handle executes the get_project_information tool logic.
func (t *ProjectInformationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	ids, err := stringSliceArg(args, "project_ids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields, err := stringSliceArg(args, "include_fields")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	set, err := t.svc.ProjectInformation(ctx, ids, fields)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultJSON(set)
}

// resultJSON encodes a payload as a JSON tool result.
func resultJSON(payload any) (*mcp.CallToolResult, error) {
	res, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("failed to encode response"), nil
	}
	return res, nil
}
