// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reporter

// normalizeRecord flattens the nested sub-objects of one raw project
// record in place. The transformation is idempotent: once the sub-object
// keys are gone, re-applying it changes nothing.
//
// Records are untyped mappings; a sub-object of an unexpected shape is
// left untouched rather than failing the page.
func normalizeRecord(rec map[string]any) {
	// Organization sub-object becomes two scalar fields.
	if org, ok := rec["organization"].(map[string]any); ok {
		rec["org_name"] = org["org_name"]
		rec["org_state"] = org["org_state"]
		delete(rec, "organization")
	}

	// Administering institute collapses to its abbreviation code.
	if admin, ok := rec["agency_ic_admin"].(map[string]any); ok {
		if abbr, ok := admin["abbreviation"].(string); ok {
			rec["agency_ic_admin"] = abbr
		}
	}

	// Principal investigators collapse to an ordered list of full names.
	// Entries that are already plain strings stay as they are, which
	// keeps the pass idempotent.
	if pis, ok := rec["principal_investigators"].([]any); ok {
		names := make([]any, 0, len(pis))
		for _, pi := range pis {
			switch v := pi.(type) {
			case map[string]any:
				if name, ok := v["full_name"].(string); ok {
					names = append(names, name)
				}
			case string:
				names = append(names, v)
			}
		}
		rec["principal_investigators"] = names
	}
}

// normalizeResults applies normalizeRecord to every well-formed record.
// Entries that are not mappings pass through unchanged.
func normalizeResults(results []any) {
	for _, r := range results {
		if rec, ok := r.(map[string]any); ok {
			normalizeRecord(rec)
		}
	}
}
