package render

import (
	"testing"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedCards(cards []model.LabelCard, grid model.LabelGrid) model.LabelPage {
	page := model.LabelPage{}
	for i, card := range cards {
		column := i % grid.Columns
		row := i / grid.Columns
		x, y := grid.CellOrigin(column, row)
		page.Cells = append(page.Cells, model.PlacedCard{Card: card, Column: column, Row: row, X: x, Y: y})
	}
	return page
}

func TestPDF(t *testing.T) {
	grid := model.DefaultLabelGrid()

	tests := []struct {
		name string
		doc  *model.Document
	}{
		{
			name: "minimal document renders only the summary page",
			doc:  &model.Document{Grid: grid},
		},
		{
			name: "document with label cards and summary entries",
			doc: &model.Document{
				Grid: grid,
				LabelPages: []model.LabelPage{
					placedCards([]model.LabelCard{
						model.NewPrimaryCard("Alice", 4),
						model.NewContinuationCard("Alice"),
						model.NewPrimaryCard("Bob", 1),
						model.NewPackSummaryCard(2, 1),
					}, grid),
				},
				Summary: []model.DineInSummaryEntry{
					{Name: "Alice", Count: 2},
					{Name: "Bob", Count: 1},
				},
			},
		},
		{
			name: "summary table spilling past one page",
			doc: &model.Document{
				Grid:    grid,
				Summary: manyEntries(80),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := PDF(tt.doc)
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.Equal(t, "%PDF", string(out[:4]))
		})
	}
}

func manyEntries(n int) []model.DineInSummaryEntry {
	entries := make([]model.DineInSummaryEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, model.DineInSummaryEntry{Name: "Customer", Count: i + 1})
	}
	return entries
}

func TestPDFSurface_CenteredText(t *testing.T) {
	surface := NewPDFSurface()
	surface.AddPage()
	surface.SetFont("Helvetica", "B", 12)

	// Only exercising that drawing off-center positions does not error;
	// fpdf reports failures at Output time.
	surface.CenteredText(306, 100, "centered")
	surface.Text(14.4, 120, "left")

	w, h := surface.PageSize()
	assert.InDelta(t, 612.0, w, 0.5)
	assert.InDelta(t, 792.0, h, 0.5)
}
