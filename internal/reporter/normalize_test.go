// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reporter

import (
	"reflect"
	"testing"
)

func sampleRecord() map[string]any {
	return map[string]any{
		"project_num": "5R01CA123456-03",
		"organization": map[string]any{
			"org_name":  "HARVARD MEDICAL SCHOOL",
			"org_state": "MA",
			"org_city":  "BOSTON",
		},
		"agency_ic_admin": map[string]any{
			"code":         "CA",
			"abbreviation": "NCI",
			"name":         "National Cancer Institute",
		},
		"principal_investigators": []any{
			map[string]any{"first_name": "Jane", "last_name": "Doe", "full_name": "Jane Doe"},
			map[string]any{"first_name": "John", "last_name": "Roe", "full_name": "John Roe"},
		},
	}
}

func TestNormalizeRecordFlattens(t *testing.T) {
	rec := sampleRecord()
	normalizeRecord(rec)

	if _, ok := rec["organization"]; ok {
		t.Error("organization sub-object still present after normalization")
	}
	if rec["org_name"] != "HARVARD MEDICAL SCHOOL" {
		t.Errorf("org_name = %v", rec["org_name"])
	}
	if rec["org_state"] != "MA" {
		t.Errorf("org_state = %v", rec["org_state"])
	}
	if rec["agency_ic_admin"] != "NCI" {
		t.Errorf("agency_ic_admin = %v, want NCI", rec["agency_ic_admin"])
	}
	wantPIs := []any{"Jane Doe", "John Roe"}
	if !reflect.DeepEqual(rec["principal_investigators"], wantPIs) {
		t.Errorf("principal_investigators = %v, want %v", rec["principal_investigators"], wantPIs)
	}
}

func TestNormalizeRecordIdempotent(t *testing.T) {
	rec := sampleRecord()
	normalizeRecord(rec)

	snapshot := map[string]any{}
	for k, v := range rec {
		snapshot[k] = v
	}

	normalizeRecord(rec)
	if !reflect.DeepEqual(rec, snapshot) {
		t.Errorf("second pass changed the record: %v != %v", rec, snapshot)
	}
}

func TestNormalizeRecordTolerantOfShape(t *testing.T) {
	rec := map[string]any{
		"project_num":             "1R21AI000001-01",
		"organization":            "already a string",
		"agency_ic_admin":         map[string]any{"code": "AI"},
		"principal_investigators": "not a list",
	}
	normalizeRecord(rec)

	if rec["organization"] != "already a string" {
		t.Errorf("organization = %v, unexpected shape should pass through", rec["organization"])
	}
	// Sub-object without an abbreviation stays as-is.
	if _, ok := rec["agency_ic_admin"].(map[string]any); !ok {
		t.Errorf("agency_ic_admin = %v, want untouched map", rec["agency_ic_admin"])
	}
	if rec["principal_investigators"] != "not a list" {
		t.Errorf("principal_investigators = %v", rec["principal_investigators"])
	}
}

func TestNormalizeRecordPartialPIEntries(t *testing.T) {
	rec := map[string]any{
		"principal_investigators": []any{
			map[string]any{"full_name": "Jane Doe"},
			map[string]any{"first_name": "No", "last_name": "FullName"},
			42,
		},
	}
	normalizeRecord(rec)

	want := []any{"Jane Doe"}
	if !reflect.DeepEqual(rec["principal_investigators"], want) {
		t.Errorf("principal_investigators = %v, want %v", rec["principal_investigators"], want)
	}
}

func TestNormalizeResultsSkipsNonRecords(t *testing.T) {
	results := []any{
		sampleRecord(),
		"not a record",
		nil,
	}
	normalizeResults(results)

	rec := results[0].(map[string]any)
	if rec["agency_ic_admin"] != "NCI" {
		t.Errorf("first record not normalized: %v", rec["agency_ic_admin"])
	}
	if results[1] != "not a record" || results[2] != nil {
		t.Error("non-record entries changed")
	}
}
