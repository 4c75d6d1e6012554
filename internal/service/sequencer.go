package service

import (
	"github.com/guttosm/label-service/internal/domain/model"
)

// SequenceCards expands aggregated orders into the ordered label card
// sequence. Every 2 carry-out items pack as one double; an odd remainder
// is one single. Each customer with carry-out gets one primary card
// carrying the full total, then blank continuation cards until one
// physical label exists per packed unit.
//
// A trailing pack-summary card with the running doubles/singles totals is
// appended when any packs were produced. Customers with zero carry-out
// contribute no cards, so the sequence may be empty.
func SequenceCards(orders []model.AggregatedOrder) []model.LabelCard {
	var cards []model.LabelCard
	totalDoubles := 0
	totalSingles := 0

	for _, order := range orders {
		if order.CarryOut <= 0 {
			continue
		}

		doubles := order.CarryOut / 2
		singles := order.CarryOut % 2
		totalDoubles += doubles
		totalSingles += singles

		cards = append(cards, model.NewPrimaryCard(order.Name, order.CarryOut))
		for i := 1; i < RequiredLabelCount(order.CarryOut); i++ {
			cards = append(cards, model.NewContinuationCard(order.Name))
		}
	}

	if totalDoubles > 0 || totalSingles > 0 {
		cards = append(cards, model.NewPackSummaryCard(totalDoubles, totalSingles))
	}
	return cards
}

// RequiredLabelCount returns the number of physical labels needed to cover
// a carry-out total: one per packed unit, i.e. ceil(carryOut / 2).
func RequiredLabelCount(carryOut int) int {
	if carryOut <= 0 {
		return 0
	}
	return carryOut/2 + carryOut%2
}
