package excel

// ExcelConfig holds configuration for the spreadsheet data source
type ExcelConfig struct {
	// SheetName is the preferred sheet; the first sheet is used when it is absent.
	SheetName string `json:"sheet_name"`
}

// DefaultExcelConfig returns the defaults for the inventory workbook
func DefaultExcelConfig() ExcelConfig {
	return ExcelConfig{
		SheetName: "Inventory",
	}
}
