package model

// Point is 1/72 inch, the native PDF unit. Geometry below is expressed in
// points with a top-left page origin.
const Inch = 72.0

// LabelGrid is the fixed geometric template for label pages. It is constant
// for a whole run and never derived from the data.
type LabelGrid struct {
	Columns int
	Rows    int

	CellWidth  float64
	CellHeight float64

	HorizontalGap float64
	VerticalGap   float64

	MarginX float64
	MarginY float64

	PageWidth  float64
	PageHeight float64
}

// DefaultLabelGrid is the reference layout: 3 columns by 10 rows of
// 2.625in x 1.0in cells on a letter page.
func DefaultLabelGrid() LabelGrid {
	return LabelGrid{
		Columns:       3,
		Rows:          10,
		CellWidth:     2.625 * Inch,
		CellHeight:    1.0 * Inch,
		HorizontalGap: 0.1 * Inch,
		VerticalGap:   0,
		MarginX:       0.2 * Inch,
		MarginY:       0.4 * Inch,
		PageWidth:     8.5 * Inch,
		PageHeight:    11 * Inch,
	}
}

// CellsPerPage returns the number of label cells on one page.
func (g LabelGrid) CellsPerPage() int {
	return g.Columns * g.Rows
}

// CellOrigin returns the top-left corner of the cell at the given column
// and row, measured from the page's top-left corner.
func (g LabelGrid) CellOrigin(column, row int) (x, y float64) {
	x = g.MarginX + float64(column)*(g.CellWidth+g.HorizontalGap)
	y = g.MarginY + float64(row)*(g.CellHeight+g.VerticalGap)
	return x, y
}
