package service

import (
	"testing"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabelGeneratorService(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		validate func(*testing.T, *LabelGeneratorService)
	}{
		{
			name:    "uses reference grid when no options",
			options: nil,
			validate: func(t *testing.T, svc *LabelGeneratorService) {
				assert.Equal(t, model.DefaultLabelGrid(), svc.Grid())
			},
		},
		{
			name:    "overrides grid dimensions",
			options: []Option{WithGridDimensions(4, 8)},
			validate: func(t *testing.T, svc *LabelGeneratorService) {
				assert.Equal(t, 4, svc.Grid().Columns)
				assert.Equal(t, 8, svc.Grid().Rows)
				assert.Equal(t, model.DefaultLabelGrid().CellWidth, svc.Grid().CellWidth)
			},
		},
		{
			name:    "ignores non-positive dimensions",
			options: []Option{WithGridDimensions(0, -5)},
			validate: func(t *testing.T, svc *LabelGeneratorService) {
				assert.Equal(t, model.DefaultLabelGrid(), svc.Grid())
			},
		},
		{
			name:    "rejects degenerate full grid override",
			options: []Option{WithGrid(model.LabelGrid{})},
			validate: func(t *testing.T, svc *LabelGeneratorService) {
				assert.Equal(t, model.DefaultLabelGrid(), svc.Grid())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLabelGeneratorService(tt.options...)
			if tt.validate != nil {
				tt.validate(t, svc)
			}
		})
	}
}

func TestBuildDocument(t *testing.T) {
	svc := NewLabelGeneratorService()

	t.Run("aliased headers with case-sensitive grouping", func(t *testing.T) {
		rows := []model.RawOrderRow{
			{"Name": "Alice", "Carry-Out": "3", "Dine In": "2"},
			{"Name": "alice", "Carry-Out": "1", "Dine In": "0"},
		}

		doc, err := svc.BuildDocument(rows)
		require.NoError(t, err)
		require.Len(t, doc.LabelPages, 1)

		// Alice: 3 -> 2 labels; alice: 1 -> 1 label; plus pack summary.
		cells := doc.LabelPages[0].Cells
		require.Len(t, cells, 4)
		assert.Equal(t, "Alice", cells[0].Card.Name)
		require.NotNil(t, cells[0].Card.Count)
		assert.Equal(t, 3, *cells[0].Card.Count)
		assert.Equal(t, "Alice", cells[1].Card.Name)
		assert.Nil(t, cells[1].Card.Count)
		assert.Equal(t, "alice", cells[2].Card.Name)
		assert.True(t, cells[3].Card.IsPackSummary())

		assert.Equal(t, []model.DineInSummaryEntry{{Name: "Alice", Count: 2}}, doc.Summary)
	})

	t.Run("zero carry-out yields summary-only document", func(t *testing.T) {
		rows := []model.RawOrderRow{
			{"name": "Alice", "carry out": "0", "dine in": "2"},
			{"name": "Bob", "carry out": "0", "dine in": "0"},
		}

		doc, err := svc.BuildDocument(rows)
		require.NoError(t, err)
		assert.Empty(t, doc.LabelPages)
		assert.Equal(t, 1, doc.PageCount())
		assert.Equal(t, []model.DineInSummaryEntry{{Name: "Alice", Count: 2}}, doc.Summary)
	})

	t.Run("missing column surfaces schema error without a document", func(t *testing.T) {
		rows := []model.RawOrderRow{
			{"name": "Alice", "carry out": "3"},
		}

		doc, err := svc.BuildDocument(rows)
		assert.Nil(t, doc)

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Contains(t, err.Error(), "dine_in")
	})

	t.Run("31 singles spill onto a second page with the pack summary", func(t *testing.T) {
		rows := make([]model.RawOrderRow, 0, 31)
		for i := 0; i < 31; i++ {
			rows = append(rows, model.RawOrderRow{
				"name":      string(rune('A'+i/26)) + string(rune('a'+i%26)),
				"carry out": "1",
				"dine in":   "0",
			})
		}

		doc, err := svc.BuildDocument(rows)
		require.NoError(t, err)
		require.Len(t, doc.LabelPages, 2)
		assert.Len(t, doc.LabelPages[0].Cells, 30)
		require.Len(t, doc.LabelPages[1].Cells, 2)
		assert.False(t, doc.LabelPages[1].Cells[0].Card.IsPackSummary())
		assert.True(t, doc.LabelPages[1].Cells[1].Card.IsPackSummary())
	})

	t.Run("two runs over the same input build identical documents", func(t *testing.T) {
		rows := []model.RawOrderRow{
			{"name": "Carol", "carry out": "5", "dine in": "1"},
			{"name": "Bob", "carry out": "2", "dine in": "0"},
			{"name": "Carol", "carry out": "2", "dine in": "3"},
		}

		first, err := svc.BuildDocument(rows)
		require.NoError(t, err)
		second, err := svc.BuildDocument(rows)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
