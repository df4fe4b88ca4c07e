package excel

// RawRowData represents a row of raw spreadsheet data as header -> cell pairs
type RawRowData map[string]string

// ExcelData represents the parsed sheet
type ExcelData struct {
	SheetName string       // Sheet the rows came from; empty for CSV
	Headers   []string     // Column headers
	Rows      []RawRowData // Data rows, one per non-blank spreadsheet row
}
