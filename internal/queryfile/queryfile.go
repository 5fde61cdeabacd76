// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package queryfile saves a grant search and its summary to a YAML file
// so a search can be reviewed or re-run later without re-querying the
// API by hand.
package queryfile

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/grant-reporter/internal/criteria"
)

// QueryFile is the on-disk representation of a saved search.
type QueryFile struct {
	Query   QueryParams    `yaml:"query"`
	Summary map[string]any `yaml:"summary,omitempty"`
	SavedAt time.Time      `yaml:"saved_at"`
}

// QueryParams stores search criteria in a serializable form.
type QueryParams struct {
	SearchText         string   `yaml:"search_text,omitempty"`
	Operator           string   `yaml:"operator,omitempty"`
	SearchFields       []string `yaml:"search_fields,omitempty"`
	Years              []int    `yaml:"years,omitempty"`
	Agencies           []string `yaml:"agencies,omitempty"`
	Organizations      []string `yaml:"organizations,omitempty"`
	PIName             string   `yaml:"pi_name,omitempty"`
	ProjectNumbers     []string `yaml:"project_numbers,omitempty"`
	OrgStates          []string `yaml:"org_states,omitempty"`
	OpportunityNumbers []string `yaml:"opportunity_numbers,omitempty"`
	ActivityCodes      []string `yaml:"activity_codes,omitempty"`
	FundingMechanisms  []string `yaml:"funding_mechanisms,omitempty"`
}

// FromCriteria converts criteria into serializable query parameters.
func FromCriteria(crit criteria.SearchCriteria) QueryParams {
	p := QueryParams{
		Years:              crit.FiscalYears,
		Organizations:      crit.OrgNames,
		PIName:             crit.PIName,
		ProjectNumbers:     crit.ProjectNumbers,
		OpportunityNumbers: crit.OpportunityNumbers,
		ActivityCodes:      crit.ActivityCodes,
	}
	if crit.Text != nil {
		p.SearchText = crit.Text.Text
		p.Operator = string(crit.Text.Operator)
		for _, f := range crit.Text.Fields {
			p.SearchFields = append(p.SearchFields, string(f))
		}
	}
	for _, a := range crit.Agencies {
		p.Agencies = append(p.Agencies, string(a))
	}
	for _, s := range crit.OrgStates {
		p.OrgStates = append(p.OrgStates, string(s))
	}
	for _, m := range crit.FundingMechanisms {
		p.FundingMechanisms = append(p.FundingMechanisms, string(m))
	}
	return p
}

// ToCriteria converts stored parameters back into validated criteria.
func (p QueryParams) ToCriteria() (criteria.SearchCriteria, error) {
	crit := criteria.SearchCriteria{
		FiscalYears:        p.Years,
		OrgNames:           p.Organizations,
		PIName:             p.PIName,
		OpportunityNumbers: p.OpportunityNumbers,
		ActivityCodes:      p.ActivityCodes,
	}

	if p.SearchText != "" {
		ts := &criteria.TextSearch{Text: p.SearchText}
		if p.Operator != "" {
			op := criteria.SearchOperator(p.Operator)
			if !op.IsValid() {
				return criteria.SearchCriteria{}, fmt.Errorf("invalid operator %q", p.Operator)
			}
			ts.Operator = op
		}
		for _, name := range p.SearchFields {
			f := criteria.SearchField(name)
			if !f.IsValid() {
				return criteria.SearchCriteria{}, fmt.Errorf("invalid search field %q", name)
			}
			ts.Fields = append(ts.Fields, f)
		}
		crit.Text = ts
	}

	for _, name := range p.Agencies {
		a, ok := criteria.ParseAgency(name)
		if !ok {
			return criteria.SearchCriteria{}, fmt.Errorf("invalid agency %q", name)
		}
		crit.Agencies = append(crit.Agencies, a)
	}
	for _, name := range p.OrgStates {
		s, ok := criteria.ParseStateCode(name)
		if !ok {
			return criteria.SearchCriteria{}, fmt.Errorf("invalid state code %q", name)
		}
		crit.OrgStates = append(crit.OrgStates, s)
	}
	for _, name := range p.FundingMechanisms {
		m, ok := criteria.ParseFundingMechanism(name)
		if !ok {
			return criteria.SearchCriteria{}, fmt.Errorf("invalid funding mechanism %q", name)
		}
		crit.FundingMechanisms = append(crit.FundingMechanisms, m)
	}

	normalized, err := criteria.NormalizeProjectNumbers(p.ProjectNumbers)
	if err != nil {
		return criteria.SearchCriteria{}, err
	}
	crit.ProjectNumbers = normalized

	return crit, nil
}

// Write saves a search and its summary to path.
func Write(path string, crit criteria.SearchCriteria, summary map[string]any) error {
	qf := QueryFile{
		Query:   FromCriteria(crit),
		Summary: summary,
		SavedAt: time.Now(),
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously saved query file from disk.
func Read(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
