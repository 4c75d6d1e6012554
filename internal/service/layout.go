package service

import (
	"github.com/guttosm/label-service/internal/domain/model"
)

// LayoutCards places the ordered card sequence onto fixed-size grid cells,
// left to right, top to bottom, filling each page before starting the next.
//
// For zero-based card index i with cellsPerPage = columns*rows:
//
//	position = i mod cellsPerPage
//	column   = position mod columns
//	row      = position div columns
//
// and a new page begins whenever position wraps to 0. An empty card
// sequence yields no pages at all.
func LayoutCards(cards []model.LabelCard, grid model.LabelGrid) []model.LabelPage {
	if len(cards) == 0 {
		return nil
	}

	cellsPerPage := grid.CellsPerPage()
	var pages []model.LabelPage

	for i, card := range cards {
		position := i % cellsPerPage
		if position == 0 {
			pages = append(pages, model.LabelPage{Cells: make([]model.PlacedCard, 0, cellsPerPage)})
		}

		column := position % grid.Columns
		row := position / grid.Columns
		x, y := grid.CellOrigin(column, row)

		page := &pages[len(pages)-1]
		page.Cells = append(page.Cells, model.PlacedCard{
			Card:   card,
			Column: column,
			Row:    row,
			X:      x,
			Y:      y,
		})
	}
	return pages
}
