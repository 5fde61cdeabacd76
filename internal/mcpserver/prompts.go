// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	srv "github.com/mark3labs/mcp-go/server"
)

// projectInformationPrompt guides clients through the intended tool
// sequence for grant analysis questions.
const projectInformationPrompt = `Please help me do a summary analysis of NIH research grants. Follow these steps:

1. Start with search_projects to get a quick preview of matching projects (samples first 500)
   - Returns total count and distributions (year, institute, activity code, organization, funding mechanism, active status, award stats)
   - Review distributions to understand the data landscape
   - To refine results, call search_projects again with filters added (years, agencies, activity_codes, org_states)
   - Repeat until the scope is appropriate for the query

2. Use get_search_summary when you need accurate, complete statistics (e.g. "total funding for X")
   - Fetches ALL matching projects (not just a 500-result sample)
   - Use this for precise totals, not for exploration
   - May be slower for large result sets

3. Use find_project_ids to get the list of project numbers for detailed queries
   - Returns up to 500 project numbers matching the search criteria

4. Use get_project_information with only the include_fields needed to answer the query:
   - For funding questions: AwardAmount, FiscalYear, DirectCostAmt, IndirectCostAmt
   - For PI questions: PrincipalInvestigators, ContactPiName
   - For organization questions: Organization, CongDist, OrganizationType
   - For grant type questions: ActivityCode, FundingMechanism, AgencyIcAdmin
   - Always include ProjectNum for reference

5. Use the returned information to answer the user's question.`

// registerPrompts adds the workflow prompts to the server.
func registerPrompts(s *srv.MCPServer) {
	prompt := mcp.NewPrompt(
		"project_information_search",
		mcp.WithPromptDescription("Answer questions about NIH-funded research projects."),
	)

	s.AddPrompt(prompt, func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return mcp.NewGetPromptResult(
			"Summary analysis workflow for NIH research grants",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(projectInformationPrompt)),
			},
		), nil
	})
}
