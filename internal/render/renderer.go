package render

import (
	"bytes"
	"fmt"

	"github.com/guttosm/label-service/internal/domain/model"
)

// Font constants for the reference layout (sizes in points).
const (
	titleFont = "Helvetica"
	bodyFont  = "Helvetica"

	titleFontSize        = 12
	bodyFontSize         = 10
	countFontSize        = 12
	summaryTitleFontSize = 18
	summaryBodyFontSize  = 11

	contentPadding = 0.2 * model.Inch
)

// PDF renders the document to PDF bytes: every label page in order, then
// the dine-in summary on its own page. Label pages and the summary never
// share a page.
func PDF(doc *model.Document) ([]byte, error) {
	surface := NewPDFSurface()

	for _, page := range doc.LabelPages {
		surface.AddPage()
		for _, cell := range page.Cells {
			drawLabelCard(surface, cell, doc.Grid)
		}
	}

	surface.AddPage()
	drawDineInSummary(surface, doc.Summary, doc.Grid)

	var buf bytes.Buffer
	if err := surface.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLabelCard draws one placed card into its grid cell following the
// per-variant policy: pack summary gets a title plus two body lines,
// continuations center the name, primaries put the name up top with the
// count centered below.
func drawLabelCard(surface Surface, cell model.PlacedCard, grid model.LabelGrid) {
	card := cell.Card
	centerX := cell.X + grid.CellWidth/2

	if card.IsPackSummary() {
		titleBaseline := cell.Y + contentPadding + titleFontSize*0.6
		surface.SetFont(titleFont, "B", titleFontSize)
		surface.CenteredText(centerX, titleBaseline, card.Name)

		surface.SetFont(bodyFont, "", bodyFontSize)
		doublesY := titleBaseline + bodyFontSize + 6
		singlesY := doublesY + bodyFontSize + 4
		surface.CenteredText(centerX, doublesY, fmt.Sprintf("Doubles: %d", card.DoublesOrZero()))
		surface.CenteredText(centerX, singlesY, fmt.Sprintf("Singles: %d", card.SinglesOrZero()))
		return
	}

	var nameY float64
	if card.Count == nil {
		nameY = cell.Y + grid.CellHeight/2 + titleFontSize/2
	} else {
		nameY = cell.Y + contentPadding + titleFontSize
	}

	surface.SetFont(titleFont, "B", titleFontSize)
	surface.CenteredText(centerX, nameY, card.Name)

	if card.Count != nil {
		surface.SetFont(titleFont, "B", countFontSize)
		countY := cell.Y + grid.CellHeight/2 + countFontSize*0.5
		surface.CenteredText(centerX, countY, fmt.Sprintf("%d", *card.Count))
	}
}

// drawDineInSummary draws the summary title and either the Name/Number
// table (70/30 width split) or a "no entries" line.
func drawDineInSummary(surface Surface, entries []model.DineInSummaryEntry, grid model.LabelGrid) {
	pageWidth, _ := surface.PageSize()

	surface.SetFont(titleFont, "B", summaryTitleFontSize)
	surface.Text(grid.MarginX, grid.MarginY+summaryTitleFontSize, "Dine-In Summary")

	startY := grid.MarginY + summaryTitleFontSize + 12

	if len(entries) == 0 {
		surface.SetFont(bodyFont, "", summaryBodyFontSize)
		surface.Text(grid.MarginX, startY+summaryBodyFontSize, "No dine-in orders.")
		return
	}

	availableWidth := pageWidth - 2*grid.MarginX
	widths := []float64{availableWidth * 0.7, availableWidth * 0.3}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Name, fmt.Sprintf("%d", entry.Count)})
	}

	style := DefaultTableStyle()
	style.FontSize = summaryBodyFontSize
	surface.Table(grid.MarginX, startY, widths, []string{"Name", "Number"}, rows, style)
}
