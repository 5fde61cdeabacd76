// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/grant-reporter/internal/criteria"
	"github.com/pdiddy/grant-reporter/internal/tools"
)

// addCriteriaFlags registers the shared search-criteria flags on a
// search subcommand.
func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().String("text", "", "free-text search over titles, abstracts, and indexed terms")
	cmd.Flags().String("operator", "", "text search operator: all, or, and, advanced (default and)")
	cmd.Flags().StringSlice("fields", nil, "text search fields: projecttitle, abstract, terms")
	cmd.Flags().IntSlice("years", nil, "fiscal years in which projects are active")
	cmd.Flags().StringSlice("agencies", nil, "funding institute/center codes (default NIH)")
	cmd.Flags().StringSlice("organizations", nil, "recipient organization names")
	cmd.Flags().String("pi-name", "", "principal investigator name")
	cmd.Flags().StringSlice("project-numbers", nil, "RePORTER project numbers")
	cmd.Flags().StringSlice("org-states", nil, "organization state codes")
	cmd.Flags().StringSlice("opportunity-numbers", nil, "funding opportunity numbers")
	cmd.Flags().StringSlice("activity-codes", nil, "activity codes (e.g. R01, F32)")
	cmd.Flags().StringSlice("funding-mechanisms", nil, "funding mechanism codes (e.g. RP, RC)")
}

// criteriaFromFlags builds validated criteria from the shared flags.
// Flag values route through the same binding as MCP tool arguments so
// both surfaces validate identically.
func criteriaFromFlags(cmd *cobra.Command) (criteria.SearchCriteria, error) {
	args := map[string]any{}

	if v, _ := cmd.Flags().GetString("text"); v != "" {
		args["search_text"] = v
	}
	if v, _ := cmd.Flags().GetString("operator"); v != "" {
		args["operator"] = v
	}
	if v, _ := cmd.Flags().GetStringSlice("fields"); len(v) > 0 {
		args["search_fields"] = v
	}
	if v, _ := cmd.Flags().GetIntSlice("years"); len(v) > 0 {
		args["years"] = v
	}
	if cmd.Flags().Changed("agencies") {
		v, _ := cmd.Flags().GetStringSlice("agencies")
		args["agencies"] = v
	}
	if v, _ := cmd.Flags().GetStringSlice("organizations"); len(v) > 0 {
		args["organizations"] = v
	}
	if v, _ := cmd.Flags().GetString("pi-name"); v != "" {
		args["pi_name"] = v
	}
	if v, _ := cmd.Flags().GetStringSlice("project-numbers"); len(v) > 0 {
		args["project_numbers"] = v
	}
	if v, _ := cmd.Flags().GetStringSlice("org-states"); len(v) > 0 {
		args["org_states"] = v
	}
	if v, _ := cmd.Flags().GetStringSlice("opportunity-numbers"); len(v) > 0 {
		args["opportunity_numbers"] = v
	}
	if v, _ := cmd.Flags().GetStringSlice("activity-codes"); len(v) > 0 {
		args["activity_codes"] = v
	}
	if v, _ := cmd.Flags().GetStringSlice("funding-mechanisms"); len(v) > 0 {
		args["funding_mechanisms"] = v
	}

	return tools.CriteriaFromArgs(args)
}

// writeJSON prints a payload as indented JSON.
func writeJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
