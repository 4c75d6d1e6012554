// Package model defines the core domain entities for the label service.
package model

// RawOrderRow is a single spreadsheet row as delivered by the parser:
// an arbitrary mapping from header to cell value. It carries no invariants
// and may contain columns the engine does not know about.
type RawOrderRow map[string]string

// CanonicalOrderRow is a row after schema normalization. All three canonical
// fields are present; values are still unparsed strings.
type CanonicalOrderRow struct {
	Name     string
	CarryOut string
	DineIn   string
}

// AggregatedOrder is one customer's combined totals after grouping.
//
// Names are trimmed and unique within an aggregate; quantities are sums of
// all contributing rows, never negative.
type AggregatedOrder struct {
	Name     string `json:"name"`
	CarryOut int    `json:"carry_out"`
	DineIn   int    `json:"dine_in"`
}

// DineInSummaryEntry is one row of the dine-in summary table.
// Only names with a positive dine-in count appear.
type DineInSummaryEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
