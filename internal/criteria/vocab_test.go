// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package criteria

import "testing"

func TestParseAgency(t *testing.T) {
	tests := []struct {
		in   string
		want Agency
		ok   bool
	}{
		{"NCI", AgencyNCI, true},
		{"nci", AgencyNCI, true},
		{" niaid ", AgencyNIAID, true},
		{"NASA", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseAgency(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAgency(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAgencyFullName(t *testing.T) {
	if got := AgencyNCI.FullName(); got != "National Cancer Institute" {
		t.Errorf("NCI full name = %q", got)
	}
	// Unknown codes fall back to the code itself.
	if got := Agency("XYZ").FullName(); got != "XYZ" {
		t.Errorf("unknown agency full name = %q, want XYZ", got)
	}
}

func TestAgenciesSorted(t *testing.T) {
	all := Agencies()
	if len(all) != len(agencyNames) {
		t.Fatalf("Agencies() returned %d codes, want %d", len(all), len(agencyNames))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Errorf("Agencies() not sorted at %d: %q >= %q", i, all[i-1], all[i])
		}
	}
}

func TestParseStateCode(t *testing.T) {
	tests := []struct {
		in   string
		want StateCode
		ok   bool
	}{
		{"CA", "CA", true},
		{"ca", "CA", true},
		{" pr ", "PR", true},
		{"ZZ", "", false},
		{"California", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseStateCode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStateCode(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseFundingMechanism(t *testing.T) {
	tests := []struct {
		in   string
		want FundingMechanism
		ok   bool
	}{
		{"RP", MechanismResearch, true},
		{"rp", MechanismResearch, true},
		{"other", MechanismOther, true},
		{"Other", MechanismOther, true},
		{"grants", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFundingMechanism(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFundingMechanism(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestOperatorValidity(t *testing.T) {
	for _, op := range []SearchOperator{OperatorAll, OperatorOr, OperatorAnd, OperatorAdvanced} {
		if !op.IsValid() {
			t.Errorf("operator %q reported invalid", op)
		}
		if op.Description() == "" {
			t.Errorf("operator %q has no description", op)
		}
	}
	if SearchOperator("not").IsValid() {
		t.Error("unknown operator reported valid")
	}
}

func TestSearchFieldValidity(t *testing.T) {
	for _, f := range DefaultSearchFields() {
		if !f.IsValid() {
			t.Errorf("default search field %q reported invalid", f)
		}
	}
	if SearchField("title").IsValid() {
		t.Error("unknown search field reported valid")
	}
}
