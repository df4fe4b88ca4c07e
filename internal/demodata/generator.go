package demodata

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Headers is the column layout of a generated inventory. Every
// other row uses the alternate identifier column.
var Headers = []string{
	"Stock #", "StockNumber", "Year", "Make", "Model", "Trim",
	"Price", "Mileage", "Condition", "Exterior Color", "Interior Color",
	"VIN", "Body Style", "Transmission", "Drivetrain", "Engine", "Fuel Type",
	"Images", "Description",
}

// Dataset is a generated inventory, already formatted as cell strings.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

type Config struct {
	Rows      int
	Seed      int64
	SheetName string
	// ImageBase prefixes generated image file names.
	ImageBase string
}

func DefaultConfig() Config {
	return Config{
		Rows:      24,
		Seed:      42,
		SheetName: "Inventory",
		ImageBase: "/static/img/",
	}
}

type model struct {
	make, model string
	trims       []string
	body        string
	basePrice   float64
}

var catalog = []model{
	{"Honda", "Civic", []string{"LX", "EX", "Sport"}, "Sedan", 24000},
	{"Toyota", "RAV4", []string{"LE", "XLE", "Limited"}, "SUV", 31000},
	{"Ford", "F-150", []string{"XL", "XLT", "Lariat"}, "Truck", 42000},
	{"Subaru", "Outback", []string{"Base", "Premium", "Touring"}, "Wagon", 30000},
	{"Mazda", "CX-5", []string{"Select", "Preferred", "Signature"}, "SUV", 29000},
	{"Chevrolet", "Silverado", []string{"WT", "LT", "High Country"}, "Truck", 45000},
	{"Tesla", "Model 3", []string{"", "Long Range", "Performance"}, "Sedan", 41000},
	{"BMW", "X3", []string{"sDrive30i", "xDrive30i", "M40i"}, "SUV", 48000},
}

var (
	colors        = []string{"Black", "White", "Silver", "Blue", "Red", "Gray"}
	interiors     = []string{"Black", "Gray", "Beige", "Brown"}
	transmissions = []string{"Automatic", "CVT", "Manual"}
	drivetrains   = []string{"FWD", "AWD", "RWD", "4WD"}
	engines       = []string{"2.0L I4", "2.5L I4", "3.5L V6", "5.0L V8", "Electric"}
	conditions    = []string{"New", "Used", "Certified"}
	vinAlphabet   = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"
)

// Generate produces a deterministic inventory for cfg.Seed.
func Generate(cfg Config) (*Dataset, error) {
	if cfg.Rows <= 0 {
		return nil, fmt.Errorf("rows must be > 0")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	rows := make([][]string, 0, cfg.Rows)

	for i := 0; i < cfg.Rows; i++ {
		m := catalog[rng.Intn(len(catalog))]
		year := 2015 + rng.Intn(11)
		condition := conditions[rng.Intn(len(conditions))]

		mileage := 0.0
		if condition != "New" {
			mileage = math.Max(500, float64(2025-year)*11000+rng.NormFloat64()*6000)
		}
		depreciation := math.Pow(0.88, float64(2025-year))
		price := roundTo(m.basePrice*depreciation*(0.9+rng.Float64()*0.2), 100) - 1

		priceCell := strconv.FormatFloat(price, 'f', 0, 64)
		if rng.Intn(10) == 0 {
			priceCell = "Call for price"
		}

		fuel := "Gasoline"
		engine := engines[rng.Intn(len(engines)-1)]
		if m.make == "Tesla" {
			fuel, engine = "Electric", "Electric"
		}

		stock := fmt.Sprintf("S%04d", 1000+i)
		primary, alternate := stock, ""
		if i%2 == 1 {
			primary, alternate = "", stock
		}

		rows = append(rows, []string{
			primary,
			alternate,
			strconv.Itoa(year),
			m.make,
			m.model,
			m.trims[rng.Intn(len(m.trims))],
			priceCell,
			fToStr(mileage, 0),
			condition,
			colors[rng.Intn(len(colors))],
			interiors[rng.Intn(len(interiors))],
			vin(rng),
			m.body,
			transmissions[rng.Intn(len(transmissions))],
			drivetrains[rng.Intn(len(drivetrains))],
			engine,
			fuel,
			images(cfg.ImageBase, stock, rng.Intn(5)),
			fmt.Sprintf("%d %s %s in **%s** condition.", year, m.make, m.model, strings.ToLower(condition)),
		})
	}

	return &Dataset{Headers: Headers, Rows: rows}, nil
}

func WriteCSV(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(ds.Headers); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func WriteXLSX(path, sheet string, ds *Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	}

	for i, h := range ds.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r := 0; r < len(ds.Rows); r++ {
		rowIdx := r + 2
		for c, v := range ds.Rows[r] {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func images(base, stock string, n int) string {
	refs := make([]string, n)
	for i := range refs {
		refs[i] = fmt.Sprintf("%s%s-%d.jpg", base, strings.ToLower(stock), i+1)
	}
	return strings.Join(refs, ", ")
}

func vin(rng *rand.Rand) string {
	b := make([]byte, 17)
	for i := range b {
		b[i] = vinAlphabet[rng.Intn(len(vinAlphabet))]
	}
	return string(b)
}

func roundTo(x, step float64) float64 {
	return math.Round(x/step) * step
}

func fToStr(x float64, decimals int) string {
	p := math.Pow10(decimals)
	x = math.Round(x*p) / p
	return strconv.FormatFloat(x, 'f', decimals, 64)
}
