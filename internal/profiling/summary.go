package profiling

import (
	"sort"

	"github.com/montanaflynn/stats"
	gonumstat "gonum.org/v1/gonum/stat"

	"showroom/domain/vehicle"
	"showroom/internal/format"
)

// NumericSummary describes one numeric column across the inventory
type NumericSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// InventorySummary is the header block shown above the listing and served by the API
type InventorySummary struct {
	Vehicles int            `json:"vehicles"`
	Price    NumericSummary `json:"price"`
	Mileage  NumericSummary `json:"mileage"`
}

// SummarizeInventory computes price and mileage statistics. Cells that are blank or not
// numeric ("Call for price") are left out of the numeric summaries but still counted as
// vehicles.
func SummarizeInventory(records []vehicle.Record, schema vehicle.Schema) InventorySummary {
	var prices, miles []float64
	for _, record := range records {
		if v, ok := ParseNumber(record.Value(schema, vehicle.FieldPrice)); ok {
			prices = append(prices, v)
		}
		if v, ok := ParseNumber(record.Value(schema, vehicle.FieldMileage)); ok {
			miles = append(miles, v)
		}
	}

	return InventorySummary{
		Vehicles: len(records),
		Price:    Summarize(prices),
		Mileage:  Summarize(miles),
	}
}

// Summarize returns the zero summary for an empty sample.
func Summarize(data []float64) NumericSummary {
	if len(data) == 0 {
		return NumericSummary{}
	}

	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)

	// gonum quantiles require sorted input; sort a copy so callers keep their order.
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	return NumericSummary{
		Count:  len(data),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		Q25:    gonumstat.Quantile(0.25, gonumstat.Empirical, sorted, nil),
		Q75:    gonumstat.Quantile(0.75, gonumstat.Empirical, sorted, nil),
	}
}

// ParseNumber reads a finite number from a cell.
func ParseNumber(raw string) (float64, bool) {
	return format.ParseNumber(raw)
}
