package source

import (
	"bytes"
	"encoding/csv"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/shashankg86/catalog-extractor/internal/common"
	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// XLSXRows reads the first sheet of an XLSX workbook into header-keyed rows.
func XLSXRows(data []byte, logger *slog.Logger) ([]entity.Row, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, common.UnsupportedFormatError("opening workbook", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("xlsx.close", "error", cerr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.UnsupportedFormatError("workbook has no sheets", nil)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, common.UnsupportedFormatError("reading sheet rows", err)
	}
	logger.Debug("xlsx.read", "sheet", sheets[0], "rows", len(rows))
	return keyRows(rows), nil
}

// CSVRows reads CSV bytes into header-keyed rows.
func CSVRows(data []byte) ([]entity.Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // ragged rows happen in exported sheets
	r.TrimLeadingSpace = true

	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, common.UnsupportedFormatError("reading CSV", err)
		}
		records = append(records, rec)
	}
	return keyRows(records), nil
}

// keyRows maps the first record's cells to header keys for every later record.
func keyRows(records [][]string) []entity.Row {
	if len(records) < 2 {
		return nil
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}
	out := make([]entity.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := entity.Row{}
		empty := true
		for i, cell := range rec {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell != "" {
				empty = false
			}
			row[headers[i]] = cell
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out
}
