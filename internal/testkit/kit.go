package testkit

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/xuri/excelize/v2"

	"showroom/internal/errors"
)

// Sheet is one worksheet of a generated workbook; Rows[0] is the header row.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// Workbook builds an in-memory .xlsx with the given sheets in order.
func Workbook(sheets ...Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook needs at least one sheet")
	}

	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	keepDefault := false
	for i, sheet := range sheets {
		if sheet.Name == defaultSheet {
			keepDefault = true
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet.Name, err)
		}

		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, err
			}
			values := row
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				return nil, fmt.Errorf("write row %d of %q: %w", r+1, sheet.Name, err)
			}
		}

		if i == 0 {
			idx, err := f.GetSheetIndex(sheet.Name)
			if err != nil {
				return nil, err
			}
			f.SetActiveSheet(idx)
		}
	}
	if !keepDefault {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return nil, fmt.Errorf("drop default sheet: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// InventoryHeader is the column layout of the sample dealership export.
var InventoryHeader = []interface{}{
	"Stock #", "Year", "Make", "Model", "Trim", "Price", "Mileage", "Condition", "Color",
	"VIN", "Transmission", "Images", "Description",
}

// SampleInventory returns a small "Inventory" sheet: two vehicles under the primary
// identifier column and a header-only alternate column left empty.
func SampleInventory() Sheet {
	return Sheet{
		Name: "Inventory",
		Rows: [][]interface{}{
			InventoryHeader,
			{"A100", 2019, "Honda", "Civic", "EX", 19999, 45000, "Used", "Blue",
				"2HGFC2F59KH500001", "CVT", "civic-1.jpg, civic-2.jpg,,civic-3.jpg", "One owner. **Clean** title."},
			{"B200", 2022, "Ford", "F-150", "XLT", "Call for price", 0, "Certified", "Black",
				"", "Automatic", "", ""},
		},
	}
}

// SampleWorkbook is SampleInventory serialized; it panics on failure since fixtures are static.
func SampleWorkbook() []byte {
	data, err := Workbook(SampleInventory())
	if err != nil {
		panic(err)
	}
	return data
}

// StaticSource serves fixed bytes and counts fetches.
type StaticSource struct {
	Data     []byte
	Name     string
	Err      error
	fetches  atomic.Int32
	failures atomic.Int32
	// FailTimes makes the first N fetches fail with a LOAD_FAILURE.
	FailTimes int32
}

// Fetch implements ports.Source
func (s *StaticSource) Fetch(ctx context.Context) ([]byte, error) {
	s.fetches.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.failures.Load() < s.FailTimes {
		s.failures.Add(1)
		return nil, errors.LoadFailure("static source failure", fmt.Errorf("HTTP 503"))
	}
	return s.Data, nil
}

// Location implements ports.Source
func (s *StaticSource) Location() string {
	if s.Name == "" {
		return "inventory.xlsx"
	}
	return s.Name
}

// Fetches returns how many times Fetch was called.
func (s *StaticSource) Fetches() int {
	return int(s.fetches.Load())
}
