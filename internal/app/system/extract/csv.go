// internal/app/system/extract/csv.go
package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"projetex/internal/domain/models"
)

// ParseCSV reads a CSV stream into header-keyed records. The first
// non-empty row is the header; every following non-empty row becomes one
// record. A UTF-8 BOM on the first cell is tolerated. Rows with more
// cells than headers keep only the headed cells; short rows leave the
// missing columns empty.
func ParseCSV(r io.Reader) ([]models.RowRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow ragged rows
	reader.TrimLeadingSpace = true

	var headers []string
	var records []models.RowRecord
	lineNum := 0

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		if lineNum == 1 && len(rec) > 0 {
			rec[0] = strings.TrimPrefix(rec[0], "\uFEFF")
		}

		if isEmptyRow(rec) {
			continue
		}

		if headers == nil {
			headers = make([]string, len(rec))
			for i, h := range rec {
				headers[i] = strings.TrimSpace(h)
			}
			continue
		}

		if len(records) >= MaxRows {
			return nil, fmt.Errorf("too many rows (limit %d)", MaxRows)
		}
		records = append(records, rowToRecord(headers, rec))
	}

	return records, nil
}

func rowToRecord(headers, rec []string) models.RowRecord {
	row := make(models.RowRecord, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if i < len(rec) {
			row[h] = strings.TrimSpace(rec[i])
		} else {
			row[h] = ""
		}
	}
	return row
}

func isEmptyRow(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
