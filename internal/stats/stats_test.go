// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stats

import (
	"fmt"
	"reflect"
	"testing"
)

func record(num string, year any, institute, activity, org string, active any, amount any) map[string]any {
	rec := map[string]any{
		"project_num":     num,
		"fiscal_year":     year,
		"agency_ic_admin": institute,
		"activity_code":   activity,
		"org_name":        org,
	}
	if active != nil {
		rec["is_active"] = active
	}
	if amount != nil {
		rec["award_amount"] = amount
	}
	return rec
}

// --- Compute ---

func TestComputeEmptyInput(t *testing.T) {
	d := Compute(nil)

	if len(d.ProjectIDs) != 0 {
		t.Errorf("ProjectIDs = %v, want empty", d.ProjectIDs)
	}
	if len(d.Years) != 0 || len(d.Institutes) != 0 || len(d.ActivityCodes) != 0 ||
		len(d.Organizations) != 0 || len(d.FundingMechanisms) != 0 || len(d.ActiveStatus) != 0 {
		t.Error("frequency tables not empty for empty input")
	}
	if d.Awards != (AwardStats{}) {
		t.Errorf("Awards = %+v, want all zero", d.Awards)
	}
}

func TestComputeFrequencyTables(t *testing.T) {
	results := []any{
		record("1R01CA000001-01", 2023, "NCI", "R01", "HARVARD", true, 500000),
		record("1R01CA000002-01", 2023, "NCI", "R01", "STANFORD", true, 300000),
		record("1U54GM000003-01", 2024, "NIGMS", "U54", "HARVARD", false, 200000),
	}
	d := Compute(results)

	if got := len(d.ProjectIDs); got != 3 {
		t.Errorf("len(ProjectIDs) = %d, want 3", got)
	}
	if !reflect.DeepEqual(d.Years, map[int]int{2023: 2, 2024: 1}) {
		t.Errorf("Years = %v", d.Years)
	}
	if !reflect.DeepEqual(d.Institutes, map[string]int{"NCI": 2, "NIGMS": 1}) {
		t.Errorf("Institutes = %v", d.Institutes)
	}
	if !reflect.DeepEqual(d.ActivityCodes, map[string]int{"R01": 2, "U54": 1}) {
		t.Errorf("ActivityCodes = %v", d.ActivityCodes)
	}
	if !reflect.DeepEqual(d.Organizations, map[string]int{"HARVARD": 2, "STANFORD": 1}) {
		t.Errorf("Organizations = %v", d.Organizations)
	}
	if !reflect.DeepEqual(d.ActiveStatus, map[string]int{"Active": 2, "Inactive": 1}) {
		t.Errorf("ActiveStatus = %v", d.ActiveStatus)
	}
}

func TestComputeSkipsMissingValues(t *testing.T) {
	results := []any{
		record("1R01CA000001-01", nil, "", "", "", nil, nil),
		record("", 2023, "NCI", "R01", "MIT", true, 100000),
		"not a record",
		nil,
	}
	d := Compute(results)

	// The blank project number is excluded; the nil year is excluded.
	if !reflect.DeepEqual(d.ProjectIDs, []string{"1R01CA000001-01"}) {
		t.Errorf("ProjectIDs = %v", d.ProjectIDs)
	}
	if !reflect.DeepEqual(d.Years, map[int]int{2023: 1}) {
		t.Errorf("Years = %v", d.Years)
	}
	if len(d.ActiveStatus) != 1 {
		t.Errorf("ActiveStatus = %v, absent flag should not count", d.ActiveStatus)
	}
	if d.Awards.Count != 1 {
		t.Errorf("Awards.Count = %d, want 1", d.Awards.Count)
	}
}

func TestComputeYearZeroExcluded(t *testing.T) {
	results := []any{
		record("1R01CA000001-01", 0, "NCI", "R01", "MIT", true, nil),
	}
	d := Compute(results)
	if len(d.Years) != 0 {
		t.Errorf("Years = %v, zero year should be excluded", d.Years)
	}
}

func TestComputeNumericYearShapes(t *testing.T) {
	// JSON decoding yields float64; the table still keys on the integer.
	results := []any{
		record("a", float64(2024), "", "", "", nil, nil),
		record("b", "2024", "", "", "", nil, nil),
	}
	d := Compute(results)
	if !reflect.DeepEqual(d.Years, map[int]int{2024: 2}) {
		t.Errorf("Years = %v, want {2024: 2}", d.Years)
	}
}

// --- award stats ---

func TestAwardStats(t *testing.T) {
	tests := []struct {
		name    string
		amounts []any
		want    AwardStats
	}{
		{
			"empty is all zero",
			nil,
			AwardStats{},
		},
		{
			"single amount",
			[]any{250000.0},
			AwardStats{Total: 250000, Average: 250000, Min: 250000, Max: 250000, Count: 1},
		},
		{
			"mixed amounts",
			[]any{600000.0, 200000.0, 100000.0},
			AwardStats{Total: 900000, Average: 300000, Min: 100000, Max: 600000, Count: 3},
		},
		{
			"zero amount counts",
			[]any{0.0, 100.0},
			AwardStats{Total: 100, Average: 50, Min: 0, Max: 100, Count: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := make([]any, 0, len(tt.amounts))
			for i, amt := range tt.amounts {
				results = append(results, record(fmt.Sprintf("p%d", i), 2024, "", "", "", nil, amt))
			}
			got := Compute(results).Awards
			if got != tt.want {
				t.Errorf("Awards = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAwardStatsSkipsNullAmounts(t *testing.T) {
	results := []any{
		record("a", 2024, "", "", "", nil, 100.0),
		record("b", 2024, "", "", "", nil, nil),
		record("c", 2024, "", "", "", nil, 300.0),
	}
	got := Compute(results).Awards
	want := AwardStats{Total: 400, Average: 200, Min: 100, Max: 300, Count: 2}
	if got != want {
		t.Errorf("Awards = %+v, want %+v", got, want)
	}
}

// --- TopN ---

func TestTopN(t *testing.T) {
	table := map[string]int{"a": 5, "b": 3, "c": 8, "d": 3, "e": 1}

	got := TopN(table, 2)
	if !reflect.DeepEqual(got, map[string]int{"c": 8, "a": 5}) {
		t.Errorf("TopN(2) = %v", got)
	}

	// Ties break lexicographically.
	got = TopN(table, 3)
	if !reflect.DeepEqual(got, map[string]int{"c": 8, "a": 5, "b": 3}) {
		t.Errorf("TopN(3) = %v", got)
	}

	// n at or above the table size copies everything.
	got = TopN(table, 10)
	if !reflect.DeepEqual(got, table) {
		t.Errorf("TopN(10) = %v", got)
	}

	// The copy is independent of the input.
	got["f"] = 99
	if _, ok := table["f"]; ok {
		t.Error("TopN returned the input map instead of a copy")
	}
}
