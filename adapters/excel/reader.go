package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"showroom/internal"

	"github.com/xuri/excelize/v2"
)

// DataReader parses Excel and CSV payloads into header-keyed rows
type DataReader struct {
	config ExcelConfig
	logger *internal.Logger
}

// NewDataReader creates a reader that handles both Excel and CSV payloads
func NewDataReader(config ExcelConfig, logger *internal.Logger) *DataReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{config: config, logger: logger}
}

// FileType infers "csv" or "xlsx" from a resource name; anything not ending in .csv is
// treated as a workbook.
func FileType(name string) string {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	if strings.ToLower(filepath.Ext(name)) == ".csv" {
		return "csv"
	}
	return "xlsx"
}

// ReadBytes parses a fetched payload. name is only used to pick the format.
func (r *DataReader) ReadBytes(data []byte, name string) (*ExcelData, error) {
	switch FileType(name) {
	case "csv":
		return r.readCSVData(data)
	default:
		return r.readExcelData(data)
	}
}

// readExcelData reads the configured sheet, or the first sheet when it is missing
func (r *DataReader) readExcelData(data []byte) (*ExcelData, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel workbook: %w", err)
	}
	defer f.Close()

	sheetName, err := r.resolveSheet(f)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	r.logger.Debug("[DataReader] Sheet %q read in %.2fms (%d rows)",
		sheetName, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	result := r.processRows(rows)
	result.SheetName = sheetName
	return result, nil
}

func (r *DataReader) resolveSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	for _, name := range sheets {
		if name == r.config.SheetName {
			return name, nil
		}
	}
	if r.config.SheetName != "" {
		r.logger.Warn("[DataReader] Sheet %q not found, falling back to %q", r.config.SheetName, sheets[0])
	}
	return sheets[0], nil
}

// readCSVData reads CSV data into structured format
func (r *DataReader) readCSVData(data []byte) (*ExcelData, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	r.logger.Debug("[DataReader] CSV read (%d rows)", len(rows))

	return r.processRows(rows), nil
}

// processRows converts raw string rows into ExcelData. Every header gets a value in every
// row ("" when the cell is absent); blank rows are skipped.
func (r *DataReader) processRows(rows [][]string) *ExcelData {
	if len(rows) == 0 {
		return &ExcelData{Headers: []string{}, Rows: []RawRowData{}}
	}

	headers := uniqueHeaders(rows[0])

	dataRows := make([]RawRowData, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		rowData := make(RawRowData, len(headers))
		for j, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if j < len(row) {
				value = strings.TrimSpace(row[j])
			}
			rowData[header] = value
		}
		dataRows = append(dataRows, rowData)
	}

	r.logger.Debug("[DataReader] processed %d columns, %d rows", len(headers), len(dataRows))

	return &ExcelData{
		Headers: headers,
		Rows:    dataRows,
	}
}

// uniqueHeaders trims header cells and suffixes repeats ("Price", "Price_1", ...) so no
// column silently overwrites another.
func uniqueHeaders(headerRow []string) []string {
	headers := make([]string, len(headerRow))
	seen := make(map[string]int, len(headerRow))
	for i, header := range headerRow {
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}
		if n, dup := seen[header]; dup {
			seen[header] = n + 1
			header = fmt.Sprintf("%s_%d", header, n+1)
		} else {
			seen[header] = 0
		}
		headers[i] = header
	}
	return headers
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
