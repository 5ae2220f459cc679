// internal/app/system/extract/xlsx.go
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"projetex/internal/domain/models"
)

// Columns whose cell hyperlinks are preserved: a spreadsheet cell often
// displays a label while the actual document URL lives in the hyperlink.
var hyperlinkColumns = map[string]bool{
	"Documento de Referência": true,
	"Documento referência":    true,
	"Documento":               true,
}

// ParseXLSX reads the first sheet of a workbook into header-keyed
// records. The first non-empty row is the header. For reference-document
// columns the cell's hyperlink target, when present, replaces the
// displayed value.
func ParseXLSX(r io.Reader) ([]models.RowRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var headers []string
	headerRow := -1
	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		headers = make([]string, len(row))
		for j, h := range row {
			headers[j] = strings.TrimSpace(h)
		}
		headerRow = i
		break
	}
	if headers == nil {
		return nil, fmt.Errorf("no header row found")
	}

	var records []models.RowRecord
	for i := headerRow + 1; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}
		if len(records) >= MaxRows {
			return nil, fmt.Errorf("too many rows (limit %d)", MaxRows)
		}

		rec := rowToRecord(headers, rows[i])
		applyHyperlinks(f, sheet, headers, i+1, rec)
		records = append(records, rec)
	}

	return records, nil
}

// applyHyperlinks swaps in hyperlink targets for reference-document
// columns on one sheet row (1-based).
func applyHyperlinks(f *excelize.File, sheet string, headers []string, rowNum int, rec models.RowRecord) {
	for col, h := range headers {
		if !hyperlinkColumns[h] {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			continue
		}
		if ok, target, err := f.GetCellHyperLink(sheet, cell); err == nil && ok && target != "" {
			rec[h] = target
		}
	}
}
