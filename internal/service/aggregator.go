package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/guttosm/label-service/internal/domain/model"
)

// AggregateOrders groups canonical rows by exact trimmed name and sums
// their quantities. Rows with a blank name are dropped silently; cells
// that do not parse as a number count as 0; negative values are clamped
// to 0. The result is sorted ascending by name.
//
// Grouping is case-sensitive: "Alice" and "alice" stay separate entries.
// Aggregation never fails; malformed input degrades to zeros.
func AggregateOrders(rows []model.CanonicalOrderRow) []model.AggregatedOrder {
	totals := make(map[string]*model.AggregatedOrder)
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}

		entry, ok := totals[name]
		if !ok {
			entry = &model.AggregatedOrder{Name: name}
			totals[name] = entry
		}
		entry.CarryOut += parseCount(row.CarryOut)
		entry.DineIn += parseCount(row.DineIn)
	}

	aggregated := make([]model.AggregatedOrder, 0, len(totals))
	for _, entry := range totals {
		aggregated = append(aggregated, *entry)
	}
	sort.Slice(aggregated, func(i, j int) bool {
		return aggregated[i].Name < aggregated[j].Name
	})
	return aggregated
}

// parseCount coerces a spreadsheet cell to a non-negative integer.
// Unparsable values become 0 rather than errors; spreadsheets are ragged
// and a bad cell should not abort the whole sheet.
func parseCount(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		// Excel often delivers integers as "4.0"; accept the float spelling.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		n = int(f)
	}

	if n < 0 {
		return 0
	}
	return n
}
