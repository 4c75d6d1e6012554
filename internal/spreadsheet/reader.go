// Package spreadsheet reads uploaded workbooks into raw order rows.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/label-service/internal/domain/model"
)

// ErrNoRows is returned when the workbook has a header row but no data, or
// no content at all.
var ErrNoRows = errors.New("workbook contains no data rows")

// DefaultAllowedExtensions lists the upload extensions accepted out of the
// box. Legacy .xls is not readable by the xlsx parser and stays excluded.
var DefaultAllowedExtensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}

// AllowedFile reports whether the filename carries one of the allowed
// extensions (case-insensitive).
func AllowedFile(filename string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}

// ReadOrders parses the first sheet of an xlsx stream into raw order rows.
// The first row is treated as headers; every cell is kept as its string
// value. Short rows are padded with empty cells so each row exposes the
// full header set.
func ReadOrders(r io.Reader) ([]model.RawOrderRow, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	headers := rows[0]
	orders := make([]model.RawOrderRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(model.RawOrderRow, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		orders = append(orders, row)
	}
	return orders, nil
}
