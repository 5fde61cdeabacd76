// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package criteria

// IncludeField is a field name accepted by the upstream include_fields
// parameter. The upstream uses PascalCase names on the request side and
// snake_case keys in the records it returns.
type IncludeField string

// Fields accepted by the include_fields request parameter.
const (
	// Project identifiers.
	FieldApplID          IncludeField = "ApplId"
	FieldSubprojectID    IncludeField = "SubprojectId"
	FieldProjectNum      IncludeField = "ProjectNum"
	FieldProjectSerial   IncludeField = "ProjectSerialNum"
	FieldCoreProjectNum  IncludeField = "CoreProjectNum"
	FieldProjectNumSplit IncludeField = "ProjectNumSplit"

	// Dates and timing.
	FieldFiscalYear      IncludeField = "FiscalYear"
	FieldProjectStart    IncludeField = "ProjectStartDate"
	FieldProjectEnd      IncludeField = "ProjectEndDate"
	FieldAwardNoticeDate IncludeField = "AwardNoticeDate"
	FieldBudgetStart     IncludeField = "BudgetStart"
	FieldBudgetEnd       IncludeField = "BudgetEnd"
	FieldDateAdded       IncludeField = "DateAdded"

	// Funding and costs.
	FieldAwardAmount      IncludeField = "AwardAmount"
	FieldDirectCostAmt    IncludeField = "DirectCostAmt"
	FieldIndirectCostAmt  IncludeField = "IndirectCostAmt"
	FieldAwardType        IncludeField = "AwardType"
	FieldActivityCode     IncludeField = "ActivityCode"
	FieldFundingMechanism IncludeField = "FundingMechanism"
	FieldMechanismCodeDc  IncludeField = "MechanismCodeDc"
	FieldCfdaCode         IncludeField = "CfdaCode"

	// Organization.
	FieldOrganization     IncludeField = "Organization"
	FieldOrganizationType IncludeField = "OrganizationType"
	FieldCongDist         IncludeField = "CongDist"
	FieldGeoLatLon        IncludeField = "GeoLatLon"

	// Personnel.
	FieldPrincipalInvestigators IncludeField = "PrincipalInvestigators"
	FieldContactPiName          IncludeField = "ContactPiName"
	FieldProgramOfficers        IncludeField = "ProgramOfficers"

	// Agency.
	FieldAgencyCode       IncludeField = "AgencyCode"
	FieldAgencyIcAdmin    IncludeField = "AgencyIcAdmin"
	FieldAgencyIcFundings IncludeField = "AgencyIcFundings"

	// Project content.
	FieldProjectTitle IncludeField = "ProjectTitle"
	FieldAbstractText IncludeField = "AbstractText"
	FieldPhrText      IncludeField = "PhrText"
	FieldTerms        IncludeField = "Terms"
	FieldPrefTerms    IncludeField = "PrefTerms"

	// Categories and classifications.
	FieldSpendingCategories     IncludeField = "SpendingCategories"
	FieldSpendingCategoriesDesc IncludeField = "SpendingCategoriesDesc"
	FieldFullStudySection       IncludeField = "FullStudySection"
	FieldOpportunityNumber      IncludeField = "OpportunityNumber"

	// Status flags.
	FieldIsActive      IncludeField = "IsActive"
	FieldIsNew         IncludeField = "IsNew"
	FieldArraFunded    IncludeField = "ArraFunded"
	FieldCovidResponse IncludeField = "CovidResponse"

	// Other.
	FieldProjectDetailURL IncludeField = "ProjectDetailUrl"
)

// includeFields is the closed set used for validation.
var includeFields = map[IncludeField]struct{}{
	FieldApplID: {}, FieldSubprojectID: {}, FieldProjectNum: {},
	FieldProjectSerial: {}, FieldCoreProjectNum: {}, FieldProjectNumSplit: {},
	FieldFiscalYear: {}, FieldProjectStart: {}, FieldProjectEnd: {},
	FieldAwardNoticeDate: {}, FieldBudgetStart: {}, FieldBudgetEnd: {},
	FieldDateAdded: {}, FieldAwardAmount: {}, FieldDirectCostAmt: {},
	FieldIndirectCostAmt: {}, FieldAwardType: {}, FieldActivityCode: {},
	FieldFundingMechanism: {}, FieldMechanismCodeDc: {}, FieldCfdaCode: {},
	FieldOrganization: {}, FieldOrganizationType: {}, FieldCongDist: {},
	FieldGeoLatLon: {}, FieldPrincipalInvestigators: {}, FieldContactPiName: {},
	FieldProgramOfficers: {}, FieldAgencyCode: {}, FieldAgencyIcAdmin: {},
	FieldAgencyIcFundings: {}, FieldProjectTitle: {}, FieldAbstractText: {},
	FieldPhrText: {}, FieldTerms: {}, FieldPrefTerms: {},
	FieldSpendingCategories: {}, FieldSpendingCategoriesDesc: {},
	FieldFullStudySection: {}, FieldOpportunityNumber: {}, FieldIsActive: {},
	FieldIsNew: {}, FieldArraFunded: {}, FieldCovidResponse: {},
	FieldProjectDetailURL: {},
}

// IsValid reports whether the field name is accepted by include_fields.
func (f IncludeField) IsValid() bool {
	_, ok := includeFields[f]
	return ok
}

// ValidateIncludeFields checks every name against the closed field set
// and returns the validated list as plain strings for the wire payload.
func ValidateIncludeFields(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		f := IncludeField(name)
		if !f.IsValid() {
			return nil, &ValidationError{Field: "include_fields", Msg: "unknown field name: " + name}
		}
		out = append(out, name)
	}
	return out, nil
}

// FieldStrings converts include fields to the plain strings the wire
// payload carries.
func FieldStrings(fields []IncludeField) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}
