// Package service implements the label generation engine: schema
// normalization, order aggregation, pack-split sequencing, grid layout,
// and document assembly.
package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guttosm/label-service/internal/domain/model"
)

// Canonical field names produced by the normalizer.
const (
	FieldName     = "name"
	FieldCarryOut = "carry_out"
	FieldDineIn   = "dine_in"
)

// columnAliases maps accepted header spellings (lowercased, trimmed) to
// canonical fields. Kept as data so new spellings are a one-line change.
var columnAliases = []struct {
	alias string
	field string
}{
	{"name", FieldName},
	{"customer", FieldName},
	{"carry out", FieldCarryOut},
	{"carryout", FieldCarryOut},
	{"carry-out", FieldCarryOut},
	{"dine in", FieldDineIn},
	{"dine-in", FieldDineIn},
	{"dinein", FieldDineIn},
}

// SchemaError reports canonical fields that could not be resolved from the
// input headers. All missing fields are listed in a single message.
type SchemaError struct {
	MissingFields []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.MissingFields, ", "))
}

// NormalizeRows maps aliased input headers onto the canonical schema and
// returns one CanonicalOrderRow per input row. Unknown columns are ignored;
// row data is unchanged beyond the header substitution.
//
// Returns a *SchemaError naming every unresolvable canonical field when the
// headers do not cover the full schema.
func NormalizeRows(rows []model.RawOrderRow) ([]model.CanonicalOrderRow, error) {
	headers := collectHeaders(rows)

	// Lowercased, trimmed header -> original header.
	lookup := make(map[string]string, len(headers))
	for _, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, exists := lookup[key]; !exists {
			lookup[key] = h
		}
	}

	// Canonical field -> original header. First alias match wins.
	resolved := make(map[string]string, 3)
	for _, entry := range columnAliases {
		if _, done := resolved[entry.field]; done {
			continue
		}
		if original, ok := lookup[entry.alias]; ok {
			resolved[entry.field] = original
		}
	}

	var missing []string
	for _, field := range []string{FieldName, FieldCarryOut, FieldDineIn} {
		if _, ok := resolved[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{MissingFields: missing}
	}

	canonical := make([]model.CanonicalOrderRow, 0, len(rows))
	for _, row := range rows {
		canonical = append(canonical, model.CanonicalOrderRow{
			Name:     row[resolved[FieldName]],
			CarryOut: row[resolved[FieldCarryOut]],
			DineIn:   row[resolved[FieldDineIn]],
		})
	}
	return canonical, nil
}

// collectHeaders returns the union of headers across all rows in a stable
// order, so header resolution does not depend on map iteration.
func collectHeaders(rows []model.RawOrderRow) []string {
	seen := make(map[string]bool)
	var headers []string
	for _, row := range rows {
		for h := range row {
			if !seen[h] {
				seen[h] = true
				headers = append(headers, h)
			}
		}
	}
	sort.Strings(headers)
	return headers
}
