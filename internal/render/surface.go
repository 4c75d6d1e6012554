// Package render turns an assembled label document into PDF bytes.
//
// The engine only needs a minimal drawing surface: text at a position with
// a font and size, and a styled grid table. Surface captures exactly that,
// keeping the PDF library behind one seam.
package render

import "io"

// Surface is a minimal, stream-style, append-only drawing surface with a
// top-left-origin coordinate system measured in points.
type Surface interface {
	// AddPage starts a new blank page; subsequent drawing lands on it.
	AddPage()

	// SetFont selects the font for following Text calls. Style is "" for
	// regular or "B" for bold; size is in points.
	SetFont(family, style string, size float64)

	// Text draws a string with its baseline at (x, y).
	Text(x, y float64, text string)

	// CenteredText draws a string horizontally centered on centerX with
	// its baseline at y.
	CenteredText(centerX, y float64, text string)

	// Table draws a styled grid table with the given column widths,
	// starting at (x, y). The header row is repeated when the table
	// spills onto a continuation page. The first column is left-aligned,
	// remaining columns centered.
	Table(x, y float64, widths []float64, header []string, rows [][]string, style TableStyle)

	// PageSize returns the page dimensions in points.
	PageSize() (width, height float64)

	// Output writes the finished document to w.
	Output(w io.Writer) error
}

// RGB is a plain 8-bit color triple.
type RGB struct {
	R, G, B int
}

// TableStyle captures the styling intent for a grid table: header emphasis,
// alternating row shading, and borders. Exact visuals belong to the surface
// implementation.
type TableStyle struct {
	FontFamily  string
	FontSize    float64
	CellPadding float64
	HeaderFill  RGB
	AltRowFill  RGB
	BorderColor RGB
}

// DefaultTableStyle matches the reference summary-table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		FontFamily:  "Helvetica",
		FontSize:    11,
		CellPadding: 6,
		HeaderFill:  RGB{R: 211, G: 211, B: 211},
		AltRowFill:  RGB{R: 243, G: 244, B: 246},
		BorderColor: RGB{R: 128, G: 128, B: 128},
	}
}
