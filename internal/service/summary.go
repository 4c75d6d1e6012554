package service

import (
	"github.com/guttosm/label-service/internal/domain/model"
)

// DineInSummary filters the aggregate down to customers with a positive
// dine-in count, preserving the ascending name order of the input. The
// renderer turns these entries into the Name/Number table on the summary
// page; an empty slice renders as a "no entries" message instead.
func DineInSummary(orders []model.AggregatedOrder) []model.DineInSummaryEntry {
	var entries []model.DineInSummaryEntry
	for _, order := range orders {
		if order.DineIn > 0 {
			entries = append(entries, model.DineInSummaryEntry{Name: order.Name, Count: order.DineIn})
		}
	}
	return entries
}
