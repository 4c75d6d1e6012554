package render

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// pdfSurface implements Surface on top of go-pdf/fpdf. fpdf already uses a
// top-left origin, so coordinates pass through unchanged.
type pdfSurface struct {
	pdf *fpdf.Fpdf
}

// NewPDFSurface creates a letter-sized portrait PDF surface measured in
// points. Page breaks are managed by the caller, not by fpdf.
func NewPDFSurface() Surface {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	return &pdfSurface{pdf: pdf}
}

func (s *pdfSurface) AddPage() {
	s.pdf.AddPage()
}

func (s *pdfSurface) SetFont(family, style string, size float64) {
	s.pdf.SetFont(family, style, size)
}

func (s *pdfSurface) Text(x, y float64, text string) {
	s.pdf.Text(x, y, text)
}

func (s *pdfSurface) CenteredText(centerX, y float64, text string) {
	s.pdf.Text(centerX-s.pdf.GetStringWidth(text)/2, y, text)
}

// Table draws a bordered grid with a filled header row and alternating row
// shading, breaking onto fresh pages (header repeated) when rows run past
// the bottom margin.
func (s *pdfSurface) Table(x, y float64, widths []float64, header []string, rows [][]string, style TableStyle) {
	rowHeight := style.FontSize + 2*style.CellPadding
	_, pageHeight := s.PageSize()
	bottom := pageHeight - y // keep the same margin below as above the table start

	s.pdf.SetDrawColor(style.BorderColor.R, style.BorderColor.G, style.BorderColor.B)
	s.pdf.SetLineWidth(0.5)
	s.pdf.SetCellMargin(8)

	drawHeader := func(curY float64) float64 {
		s.pdf.SetFont(style.FontFamily, "B", style.FontSize)
		s.pdf.SetFillColor(style.HeaderFill.R, style.HeaderFill.G, style.HeaderFill.B)
		s.pdf.SetXY(x, curY)
		for i, cell := range header {
			align := "C"
			if i == 0 {
				align = "L"
			}
			s.pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, align, true, 0, "")
		}
		return curY + rowHeight
	}

	curY := drawHeader(y)
	s.pdf.SetFont(style.FontFamily, "", style.FontSize)

	for idx, row := range rows {
		if curY+rowHeight > bottom {
			s.AddPage()
			curY = drawHeader(y)
			s.pdf.SetFont(style.FontFamily, "", style.FontSize)
		}

		shaded := idx%2 == 1
		if shaded {
			s.pdf.SetFillColor(style.AltRowFill.R, style.AltRowFill.G, style.AltRowFill.B)
		}
		s.pdf.SetXY(x, curY)
		for i, cell := range row {
			align := "C"
			if i == 0 {
				align = "L"
			}
			s.pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, align, shaded, 0, "")
		}
		curY += rowHeight
	}
}

func (s *pdfSurface) PageSize() (float64, float64) {
	w, h := s.pdf.GetPageSize()
	return w, h
}

func (s *pdfSurface) Output(w io.Writer) error {
	return s.pdf.Output(w)
}
