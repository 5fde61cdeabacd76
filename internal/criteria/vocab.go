// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package criteria

import "strings"

// Agency is the short code of an NIH institute or center (e.g. "NCI").
// The upstream criteria schema takes the short code, never the full name.
type Agency string

// NIH institutes and centers accepted by the agencies filter.
const (
	AgencyCLC   Agency = "CLC"
	AgencyCSR   Agency = "CSR"
	AgencyCIT   Agency = "CIT"
	AgencyFIC   Agency = "FIC"
	AgencyNCATS Agency = "NCATS"
	AgencyNCCIH Agency = "NCCIH"
	AgencyNCI   Agency = "NCI"
	AgencyNCRR  Agency = "NCRR"
	AgencyNEI   Agency = "NEI"
	AgencyNHGRI Agency = "NHGRI"
	AgencyNHLBI Agency = "NHLBI"
	AgencyNIA   Agency = "NIA"
	AgencyNIAAA Agency = "NIAAA"
	AgencyNIAID Agency = "NIAID"
	AgencyNIAMS Agency = "NIAMS"
	AgencyNIBIB Agency = "NIBIB"
	AgencyNICHD Agency = "NICHD"
	AgencyNIDA  Agency = "NIDA"
	AgencyNIDCD Agency = "NIDCD"
	AgencyNIDCR Agency = "NIDCR"
	AgencyNIDDK Agency = "NIDDK"
	AgencyNIEHS Agency = "NIEHS"
	AgencyNIGMS Agency = "NIGMS"
	AgencyNIH   Agency = "NIH"
	AgencyNIMH  Agency = "NIMH"
	AgencyNIMHD Agency = "NIMHD"
	AgencyNINDS Agency = "NINDS"
	AgencyNINR  Agency = "NINR"
	AgencyNLM   Agency = "NLM"
	AgencyOD    Agency = "OD"
)

// agencyNames maps agency codes to their full names.
var agencyNames = map[Agency]string{
	AgencyCLC:   "Clinical Center",
	AgencyCSR:   "Center for Scientific Review",
	AgencyCIT:   "Center for Information Technology",
	AgencyFIC:   "John E. Fogarty International Center",
	AgencyNCATS: "National Center for Advancing Translational Sciences",
	AgencyNCCIH: "National Center for Complementary and Integrative Health",
	AgencyNCI:   "National Cancer Institute",
	AgencyNCRR:  "National Center for Research Resources",
	AgencyNEI:   "National Eye Institute",
	AgencyNHGRI: "National Human Genome Research Institute",
	AgencyNHLBI: "National Heart, Lung, and Blood Institute",
	AgencyNIA:   "National Institute on Aging",
	AgencyNIAAA: "National Institute on Alcohol Abuse and Alcoholism",
	AgencyNIAID: "National Institute of Allergy and Infectious Diseases",
	AgencyNIAMS: "National Institute of Arthritis and Musculoskeletal and Skin Diseases",
	AgencyNIBIB: "National Institute of Biomedical Imaging and Bioengineering",
	AgencyNICHD: "Eunice Kennedy Shriver National Institute of Child Health and Human Development",
	AgencyNIDA:  "National Institute on Drug Abuse",
	AgencyNIDCD: "National Institute on Deafness and Other Communication Disorders",
	AgencyNIDCR: "National Institute of Dental and Craniofacial Research",
	AgencyNIDDK: "National Institute of Diabetes and Digestive and Kidney Diseases",
	AgencyNIEHS: "National Institute of Environmental Health Sciences",
	AgencyNIGMS: "National Institute of General Medical Sciences",
	AgencyNIH:   "National Institutes of Health",
	AgencyNIMH:  "National Institute of Mental Health",
	AgencyNIMHD: "National Institute on Minority Health and Health Disparities",
	AgencyNINDS: "National Institute of Neurological Disorders and Stroke",
	AgencyNINR:  "National Institute of Nursing Research",
	AgencyNLM:   "National Library of Medicine",
	AgencyOD:    "Office of the Director",
}

// FullName returns the agency's full name, or the code itself when unknown.
func (a Agency) FullName() string {
	if name, ok := agencyNames[a]; ok {
		return name
	}
	return string(a)
}

// IsValid reports whether the code names a known institute or center.
func (a Agency) IsValid() bool {
	_, ok := agencyNames[a]
	return ok
}

// ParseAgency matches a string against the known agency codes,
// case-insensitively.
func ParseAgency(s string) (Agency, bool) {
	a := Agency(strings.ToUpper(strings.TrimSpace(s)))
	if a.IsValid() {
		return a, true
	}
	return "", false
}

// Agencies returns all known agency codes in alphabetical order.
func Agencies() []Agency {
	out := make([]Agency, 0, len(agencyNames))
	for a := range agencyNames {
		out = append(out, a)
	}
	sortAgencies(out)
	return out
}

func sortAgencies(agencies []Agency) {
	for i := 1; i < len(agencies); i++ {
		for j := i; j > 0 && agencies[j] < agencies[j-1]; j-- {
			agencies[j], agencies[j-1] = agencies[j-1], agencies[j]
		}
	}
}

// StateCode is a two-letter US state or territory code used by the
// org_states filter.
type StateCode string

// stateCodes is the closed set of accepted codes: the 50 states plus DC
// and the territories the upstream service recognizes.
var stateCodes = map[StateCode]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {}, "DC": {}, "PR": {}, "VI": {}, "GU": {}, "AS": {}, "MP": {},
	"FM": {}, "MH": {}, "PW": {},
}

// IsValid reports whether the code is a known state or territory.
func (s StateCode) IsValid() bool {
	_, ok := stateCodes[s]
	return ok
}

// ParseStateCode matches a string against the known state codes,
// case-insensitively.
func ParseStateCode(s string) (StateCode, bool) {
	code := StateCode(strings.ToUpper(strings.TrimSpace(s)))
	if code.IsValid() {
		return code, true
	}
	return "", false
}

// FundingMechanism is a coarse award-instrument category code used in
// NIH budget tables (e.g. "RP" for non-SBIR/STTR research projects).
type FundingMechanism string

// Funding mechanism categories accepted by the funding_mechanisms filter.
const (
	MechanismResearch             FundingMechanism = "RP"
	MechanismSBIRResearch         FundingMechanism = "SB"
	MechanismResearchCenters      FundingMechanism = "RC"
	MechanismOtherResearch        FundingMechanism = "OR"
	MechanismTrainingIndividual   FundingMechanism = "TR"
	MechanismTrainingInstitution  FundingMechanism = "TI"
	MechanismConstruction         FundingMechanism = "CO"
	MechanismContracts            FundingMechanism = "NSRDC"
	MechanismSBIRContracts        FundingMechanism = "SRDC"
	MechanismInteragency          FundingMechanism = "IAA"
	MechanismIntramural           FundingMechanism = "IM"
	MechanismOther                FundingMechanism = "Other"
)

// mechanismNames maps funding mechanism codes to their descriptions.
var mechanismNames = map[FundingMechanism]string{
	MechanismResearch:            "Non-SBIR/STTR research projects",
	MechanismSBIRResearch:        "SBIR/STTR research projects",
	MechanismResearchCenters:     "Research centers",
	MechanismOtherResearch:       "Other research",
	MechanismTrainingIndividual:  "Individual training awards",
	MechanismTrainingInstitution: "Institutional training awards",
	MechanismConstruction:        "Construction",
	MechanismContracts:           "Non-SBIR/STTR research and development contracts",
	MechanismSBIRContracts:       "SBIR/STTR research and development contracts",
	MechanismInteragency:         "Interagency agreements",
	MechanismIntramural:          "Intramural research",
	MechanismOther:               "Other",
}

// Description returns the mechanism's description, or the code itself
// when unknown.
func (m FundingMechanism) Description() string {
	if d, ok := mechanismNames[m]; ok {
		return d
	}
	return string(m)
}

// IsValid reports whether the code is a known funding mechanism.
func (m FundingMechanism) IsValid() bool {
	_, ok := mechanismNames[m]
	return ok
}

// ParseFundingMechanism matches a string against the known mechanism
// codes. Codes are uppercase except "Other", so matching ignores case.
func ParseFundingMechanism(s string) (FundingMechanism, bool) {
	in := strings.TrimSpace(s)
	for m := range mechanismNames {
		if strings.EqualFold(in, string(m)) {
			return m, true
		}
	}
	return "", false
}

// SearchOperator controls how multiple free-text terms are combined.
type SearchOperator string

const (
	OperatorAll      SearchOperator = "all"
	OperatorOr       SearchOperator = "or"
	OperatorAnd      SearchOperator = "and"
	OperatorAdvanced SearchOperator = "advanced"
)

// operatorDescriptions documents each operator for tool schemas.
var operatorDescriptions = map[SearchOperator]string{
	OperatorAll:      "search text in all search fields (title, abstract, scientific terms)",
	OperatorOr:       "retrieve projects containing at least one of the terms; quote text for exact phrases",
	OperatorAnd:      "retrieve projects in which all search terms are found",
	OperatorAdvanced: "narrow selection criteria precisely, including complex entries such as chemical references",
}

// Description returns the operator's documentation string.
func (o SearchOperator) Description() string { return operatorDescriptions[o] }

// IsValid reports whether the operator is one of the accepted values.
func (o SearchOperator) IsValid() bool {
	_, ok := operatorDescriptions[o]
	return ok
}

// SearchField names a free-text search target field.
type SearchField string

const (
	SearchFieldProjectTitle SearchField = "projecttitle"
	SearchFieldTerms        SearchField = "terms"
	SearchFieldAbstract     SearchField = "abstract"
)

// fieldDescriptions documents each search field for tool schemas.
var fieldDescriptions = map[SearchField]string{
	SearchFieldProjectTitle: "Search within project titles.",
	SearchFieldTerms:        "Search indexed RePORTER terms.",
	SearchFieldAbstract:     "Search within project abstracts.",
}

// Description returns the field's documentation string.
func (f SearchField) Description() string { return fieldDescriptions[f] }

// IsValid reports whether the field is one of the accepted values.
func (f SearchField) IsValid() bool {
	_, ok := fieldDescriptions[f]
	return ok
}

// DefaultSearchFields is the field set used when a text search does not
// name its target fields.
func DefaultSearchFields() []SearchField {
	return []SearchField{SearchFieldProjectTitle, SearchFieldAbstract, SearchFieldTerms}
}
