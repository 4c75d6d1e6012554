package service

import (
	"github.com/guttosm/label-service/internal/domain/model"
)

// LabelGenerator defines the interface for building a label document from
// raw spreadsheet rows.
type LabelGenerator interface {
	BuildDocument(rows []model.RawOrderRow) (*model.Document, error)
}

// Option configures a LabelGeneratorService.
type Option func(*LabelGeneratorService)

// LabelGeneratorService implements LabelGenerator. It is a pure function
// of its input: no shared mutable state, so one instance can serve
// concurrent requests.
type LabelGeneratorService struct {
	grid model.LabelGrid
}

// NewLabelGeneratorService creates a generator with the reference letter
// layout, adjusted by the given options.
func NewLabelGeneratorService(opts ...Option) *LabelGeneratorService {
	s := &LabelGeneratorService{
		grid: model.DefaultLabelGrid(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithGrid overrides the grid template used for label pages.
func WithGrid(grid model.LabelGrid) Option {
	return func(s *LabelGeneratorService) {
		if grid.Columns > 0 && grid.Rows > 0 {
			s.grid = grid
		}
	}
}

// WithGridDimensions overrides only the column and row counts, keeping the
// reference cell geometry.
func WithGridDimensions(columns, rows int) Option {
	return func(s *LabelGeneratorService) {
		if columns > 0 {
			s.grid.Columns = columns
		}
		if rows > 0 {
			s.grid.Rows = rows
		}
	}
}

// Grid returns the grid template the generator lays pages out with.
func (s *LabelGeneratorService) Grid() model.LabelGrid {
	return s.grid
}

// BuildDocument runs the full pipeline: normalize headers, aggregate
// duplicate customers, expand carry-out totals into label cards, lay the
// cards out on grid pages, and attach the dine-in summary.
//
// The only failure is a *SchemaError from normalization; everything after
// that degrades gracefully, so the worst case is a minimal document with
// no label pages and an empty summary.
func (s *LabelGeneratorService) BuildDocument(rows []model.RawOrderRow) (*model.Document, error) {
	canonical, err := NormalizeRows(rows)
	if err != nil {
		return nil, err
	}

	aggregated := AggregateOrders(canonical)
	cards := SequenceCards(aggregated)

	return &model.Document{
		Grid:       s.grid,
		LabelPages: LayoutCards(cards, s.grid),
		Summary:    DineInSummary(aggregated),
	}, nil
}
