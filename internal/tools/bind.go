// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"github.com/spf13/cast"

	"github.com/pdiddy/grant-reporter/internal/criteria"
)

// CriteriaFromArgs builds search criteria from flat tool arguments.
// Absent arguments stay unset; the agency default applies unless the
// agencies argument is present (an explicit empty list clears it).
// Every enum-valued argument is validated against its closed set before
// any network call.
func CriteriaFromArgs(args map[string]any) (criteria.SearchCriteria, error) {
	crit := criteria.Default()

	if v, ok := args["search_text"]; ok && v != nil {
		text, err := cast.ToStringE(v)
		if err != nil {
			return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "search_text", Msg: "must be a string"}
		}
		if text != "" {
			ts := &criteria.TextSearch{Text: text}
			if err := bindTextSearch(args, ts); err != nil {
				return criteria.SearchCriteria{}, err
			}
			crit.Text = ts
		}
	}

	if v, ok := args["years"]; ok && v != nil {
		years, err := cast.ToIntSliceE(v)
		if err != nil {
			return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "years", Msg: "must be a list of fiscal years"}
		}
		crit.FiscalYears = years
	}

	if v, ok := args["agencies"]; ok && v != nil {
		names, err := cast.ToStringSliceE(v)
		if err != nil {
			return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "agencies", Msg: "must be a list of agency codes"}
		}
		agencies := make([]criteria.Agency, 0, len(names))
		for _, name := range names {
			a, ok := criteria.ParseAgency(name)
			if !ok {
				return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "agencies", Msg: "unknown agency code: " + name}
			}
			agencies = append(agencies, a)
		}
		crit.Agencies = agencies
	}

	if v, ok := args["organizations"]; ok && v != nil {
		orgs, err := cast.ToStringSliceE(v)
		if err != nil {
			return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "organizations", Msg: "must be a list of organization names"}
		}
		crit.OrgNames = orgs
	}

	if v, ok := args["pi_name"]; ok && v != nil {
		name, err := cast.ToStringE(v)
		if err != nil {
			return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "pi_name", Msg: "must be a string"}
		}
		crit.PIName = name
	}

	if v, ok := args["project_numbers"]; ok && v != nil {
		nums, err := cast.ToStringSliceE(v)
		if err != nil {
			return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "project_numbers", Msg: "must be a list of project numbers"}
		}
		normalized, err := criteria.NormalizeProjectNumbers(nums)
		if err != nil {
			return criteria.SearchCriteria{}, err
		}
		crit.ProjectNumbers = normalized
	}

	if v, ok := args["org_states"]; ok && v != nil {
		names, err := cast.ToStringSliceE(v)
		if err != nil {
			return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "org_states", Msg: "must be a list of state codes"}
		}
		states := make([]criteria.StateCode, 0, len(names))
		for _, name := range names {
			code, ok := criteria.ParseStateCode(name)
			if !ok {
				return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "org_states", Msg: "unknown state code: " + name}
			}
			states = append(states, code)
		}
		crit.OrgStates = states
	}

	if v, ok := args["opportunity_numbers"]; ok && v != nil {
		nums, err := cast.ToStringSliceE(v)
		if err != nil {
			return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "opportunity_numbers", Msg: "must be a list of opportunity numbers"}
		}
		crit.OpportunityNumbers = nums
	}

	if v, ok := args["activity_codes"]; ok && v != nil {
		codes, err := cast.ToStringSliceE(v)
		if err != nil {
			return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "activity_codes", Msg: "must be a list of activity codes"}
		}
		crit.ActivityCodes = codes
	}

	if v, ok := args["funding_mechanisms"]; ok && v != nil {
		names, err := cast.ToStringSliceE(v)
		if err != nil {
			return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "funding_mechanisms", Msg: "must be a list of funding mechanism codes"}
		}
		mechanisms := make([]criteria.FundingMechanism, 0, len(names))
		for _, name := range names {
			m, ok := criteria.ParseFundingMechanism(name)
			if !ok {
				return criteria.SearchCriteria{}, &criteria.ValidationError{Field: "funding_mechanisms", Msg: "unknown funding mechanism: " + name}
			}
			mechanisms = append(mechanisms, m)
		}
		crit.FundingMechanisms = mechanisms
	}

	return crit, nil
}

// stringSliceArg reads a required list-of-strings argument.
func stringSliceArg(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, &criteria.ValidationError{Field: key, Msg: "is required"}
	}
	out, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, &criteria.ValidationError{Field: key, Msg: "must be a list of strings"}
	}
	if len(out) == 0 {
		return nil, &criteria.ValidationError{Field: key, Msg: "cannot be empty"}
	}
	return out, nil
}

// bindTextSearch fills the optional operator and field selector of a
// text search.
func bindTextSearch(args map[string]any, ts *criteria.TextSearch) error {
	if v, ok := args["operator"]; ok && v != nil {
		op, err := cast.ToStringE(v)
		if err != nil {
			return &criteria.ValidationError{Field: "operator", Msg: "must be a string"}
		}
		if op != "" {
			o := criteria.SearchOperator(op)
			if !o.IsValid() {
				return &criteria.ValidationError{Field: "operator", Msg: "unknown operator: " + op}
			}
			ts.Operator = o
		}
	}

	if v, ok := args["search_fields"]; ok && v != nil {
		names, err := cast.ToStringSliceE(v)
		if err != nil {
			return &criteria.ValidationError{Field: "search_fields", Msg: "must be a list of field names"}
		}
		fields := make([]criteria.SearchField, 0, len(names))
		for _, name := range names {
			f := criteria.SearchField(name)
			if !f.IsValid() {
				return &criteria.ValidationError{Field: "search_fields", Msg: "unknown search field: " + name}
			}
			fields = append(fields, f)
		}
		ts.Fields = fields
	}

	return nil
}
