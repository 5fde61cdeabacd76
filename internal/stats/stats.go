// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats computes descriptive statistics over an accumulated
// grant result set: per-dimension frequency tables and award-amount
// aggregates.
package stats

import (
	"sort"

	"github.com/spf13/cast"
)

// AwardStats summarizes award amounts across a result set. With zero
// amounts present every field is zero; there is no division by zero and
// no null average.
type AwardStats struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Count   int     `json:"count"`
}

// Distributions holds frequency tables over an accumulated result set.
// Iteration order within a table is unspecified; callers that need
// top-N or sorted views apply those on top.
type Distributions struct {
	// ProjectIDs lists the project numbers present, in result order.
	ProjectIDs []string

	Years             map[int]int
	Institutes        map[string]int
	ActivityCodes     map[string]int
	Organizations     map[string]int
	FundingMechanisms map[string]int
	ActiveStatus      map[string]int

	Awards AwardStats
}

// Compute derives distributions from flattened result records. Records
// that are not mappings, and missing or empty values per dimension, are
// skipped silently so one malformed record cannot fail an aggregation.
func Compute(results []any) Distributions {
	d := Distributions{
		Years:             map[int]int{},
		Institutes:        map[string]int{},
		ActivityCodes:     map[string]int{},
		Organizations:     map[string]int{},
		FundingMechanisms: map[string]int{},
		ActiveStatus:      map[string]int{},
	}

	var amounts []float64

	for _, r := range results {
		rec, ok := r.(map[string]any)
		if !ok {
			continue
		}

		if id := stringField(rec, "project_num"); id != "" {
			d.ProjectIDs = append(d.ProjectIDs, id)
		}

		if v, ok := rec["fiscal_year"]; ok && v != nil {
			if year, err := cast.ToIntE(v); err == nil && year != 0 {
				d.Years[year]++
			}
		}

		countString(d.Institutes, rec, "agency_ic_admin")
		countString(d.ActivityCodes, rec, "activity_code")
		countString(d.Organizations, rec, "org_name")
		countString(d.FundingMechanisms, rec, "funding_mechanism")

		// The boolean activity flag maps to a label; an absent flag is
		// excluded rather than counted as inactive.
		if v, ok := rec["is_active"]; ok && v != nil {
			if active, err := cast.ToBoolE(v); err == nil {
				if active {
					d.ActiveStatus["Active"]++
				} else {
					d.ActiveStatus["Inactive"]++
				}
			}
		}

		if v, ok := rec["award_amount"]; ok && v != nil {
			if amt, err := cast.ToFloat64E(v); err == nil {
				amounts = append(amounts, amt)
			}
		}
	}

	d.Awards = awardStats(amounts)
	return d
}

func awardStats(amounts []float64) AwardStats {
	if len(amounts) == 0 {
		return AwardStats{}
	}

	s := AwardStats{Count: len(amounts), Min: amounts[0], Max: amounts[0]}
	for _, a := range amounts {
		s.Total += a
		if a < s.Min {
			s.Min = a
		}
		if a > s.Max {
			s.Max = a
		}
	}
	s.Average = s.Total / float64(s.Count)
	return s
}

// stringField returns the record's value for key as a non-empty string,
// or "" when missing or of another shape.
func stringField(rec map[string]any, key string) string {
	v, ok := rec[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

func countString(table map[string]int, rec map[string]any, key string) {
	if s := stringField(rec, key); s != "" {
		table[s]++
	}
}

// TopN returns the n most frequent entries of a table as a new table.
// This is a presentation helper: ties break lexicographically so the
// selection is deterministic, but the returned map itself carries no
// order.
func TopN(table map[string]int, n int) map[string]int {
	if n <= 0 || len(table) <= n {
		out := make(map[string]int, len(table))
		for k, v := range table {
			out[k] = v
		}
		return out
	}

	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, len(table))
	for k, v := range table {
		entries = append(entries, entry{key: k, count: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	out := make(map[string]int, n)
	for _, e := range entries[:n] {
		out[e.key] = e.count
	}
	return out
}
