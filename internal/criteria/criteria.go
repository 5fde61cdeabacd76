// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package criteria models grant search criteria and translates them into
// the key/value structure the RePORTER search endpoint expects.
package criteria

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed criteria input. It is raised
// before any network call is made.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// TextSearch is a free-text search over one or more project fields.
type TextSearch struct {
	// Operator combines multiple terms; defaults to OperatorAnd.
	Operator SearchOperator
	// Fields lists the target fields; defaults to DefaultSearchFields.
	Fields []SearchField
	// Text is the search text.
	Text string
}

// SearchCriteria is a normalized search request. Every field is
// optional; zero values are omitted from the wire payload entirely.
type SearchCriteria struct {
	Text               *TextSearch
	FiscalYears        []int
	Agencies           []Agency
	OrgNames           []string
	PIName             string
	ProjectNumbers     []string
	OrgStates          []StateCode
	OpportunityNumbers []string
	ActivityCodes      []string
	FundingMechanisms  []FundingMechanism
}

// Default returns criteria carrying only the default agency filter.
// Callers that want no agency filter clear Agencies explicitly.
func Default() SearchCriteria {
	return SearchCriteria{Agencies: []Agency{AgencyNIH}}
}

// ForProjects returns criteria that select exactly the given normalized
// project numbers, with no agency default.
func ForProjects(projectNumbers []string) SearchCriteria {
	return SearchCriteria{ProjectNumbers: projectNumbers}
}

// NormalizeProjectNumber trims and uppercases a project number. An
// identifier that is empty after trimming is rejected; no malformed
// identifier may reach the wire payload.
func NormalizeProjectNumber(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Field: "project_num", Msg: "project number cannot be empty"}
	}
	return strings.ToUpper(s), nil
}

// NormalizeProjectNumbers normalizes each identifier, failing on the
// first malformed one.
func NormalizeProjectNumbers(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, s := range in {
		n, err := NormalizeProjectNumber(s)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// ToAPICriteria converts the criteria into the mapping the search
// endpoint expects. Only explicitly set fields appear; an absent filter
// is omitted rather than sent as null or an empty list.
func (c SearchCriteria) ToAPICriteria() map[string]any {
	out := map[string]any{}

	if c.Text != nil {
		out["advanced_text_search"] = c.Text.toAPI()
	}
	if len(c.FiscalYears) > 0 {
		out["fiscal_years"] = c.FiscalYears
	}
	if len(c.Agencies) > 0 {
		codes := make([]string, len(c.Agencies))
		for i, a := range c.Agencies {
			codes[i] = string(a)
		}
		out["agencies"] = codes
	}
	if len(c.OrgNames) > 0 {
		out["org_names"] = c.OrgNames
	}
	if c.PIName != "" {
		// The upstream schema distinguishes exact from fuzzy name
		// matching; any_name is the fuzzy form.
		out["pi_names"] = []map[string]string{{"any_name": c.PIName}}
	}
	if len(c.ProjectNumbers) > 0 {
		out["project_nums"] = c.ProjectNumbers
	}
	if len(c.OrgStates) > 0 {
		codes := make([]string, len(c.OrgStates))
		for i, s := range c.OrgStates {
			codes[i] = string(s)
		}
		out["org_states"] = codes
	}
	if len(c.OpportunityNumbers) > 0 {
		out["opportunity_numbers"] = c.OpportunityNumbers
	}
	if len(c.ActivityCodes) > 0 {
		out["activity_codes"] = c.ActivityCodes
	}
	if len(c.FundingMechanisms) > 0 {
		codes := make([]string, len(c.FundingMechanisms))
		for i, m := range c.FundingMechanisms {
			codes[i] = string(m)
		}
		out["funding_mechanisms"] = codes
	}

	return out
}

// toAPI serializes the text search. The field selector is always a
// single comma-separated string, whether one field or several were
// supplied.
func (t *TextSearch) toAPI() map[string]any {
	op := t.Operator
	if op == "" {
		op = OperatorAnd
	}

	fields := t.Fields
	if len(fields) == 0 {
		fields = DefaultSearchFields()
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}

	return map[string]any{
		"search_text":  t.Text,
		"search_field": strings.Join(names, ", "),
		"operator":     string(op),
	}
}
