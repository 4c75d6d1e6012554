package model

// PlacedCard is a label card bound to a grid cell: the layout engine fixes
// the column, row, and top-left origin of every card it places.
type PlacedCard struct {
	Card   LabelCard `json:"card"`
	Column int       `json:"column"`
	Row    int       `json:"row"`
	X      float64   `json:"-"`
	Y      float64   `json:"-"`
}

// LabelPage is one fully laid-out page of label cells.
type LabelPage struct {
	Cells []PlacedCard `json:"cells"`
}

// Document is the final assembly: zero or more label pages followed by
// exactly one dine-in summary page. Built once per request, immutable
// once returned.
type Document struct {
	Grid       LabelGrid
	LabelPages []LabelPage
	Summary    []DineInSummaryEntry
}

// PageCount returns the total number of pages, label pages plus the
// summary page.
func (d *Document) PageCount() int {
	return len(d.LabelPages) + 1
}
