package profiling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"showroom/domain/vehicle"
)

func TestSummarizeInventory(t *testing.T) {
	schema := vehicle.DefaultSchema()
	records := []vehicle.Record{
		vehicle.NewRecord(map[string]string{"Price": "10000", "Mileage": "30000"}, schema),
		vehicle.NewRecord(map[string]string{"Price": "20000", "Mileage": "10000"}, schema),
		vehicle.NewRecord(map[string]string{"Price": "Call for price", "Mileage": ""}, schema),
		vehicle.NewRecord(map[string]string{"Price": "30000", "Mileage": "20000"}, schema),
	}

	summary := SummarizeInventory(records, schema)

	assert.Equal(t, 4, summary.Vehicles)
	assert.Equal(t, 3, summary.Price.Count)
	assert.Equal(t, 10000.0, summary.Price.Min)
	assert.Equal(t, 30000.0, summary.Price.Max)
	assert.Equal(t, 20000.0, summary.Price.Mean)
	assert.Equal(t, 20000.0, summary.Price.Median)
	assert.Equal(t, 3, summary.Mileage.Count)
	assert.Equal(t, 20000.0, summary.Mileage.Mean)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := SummarizeInventory(nil, vehicle.DefaultSchema())
	assert.Equal(t, InventorySummary{}, summary)
}

func TestSummarizeKeepsInputOrder(t *testing.T) {
	data := []float64{3, 1, 2}
	s := Summarize(data)
	assert.Equal(t, []float64{3, 1, 2}, data)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 3.0, s.Max)
	assert.LessOrEqual(t, s.Q25, s.Median)
	assert.GreaterOrEqual(t, s.Q75, s.Median)
}

func TestParseNumber(t *testing.T) {
	v, ok := ParseNumber(" 42.5 ")
	assert.True(t, ok)
	assert.Equal(t, 42.5, v)

	for _, raw := range []string{"", "abc", "NaN", "Inf", "1_000", "0x1p4"} {
		_, ok := ParseNumber(raw)
		assert.False(t, ok, raw)
	}
}
