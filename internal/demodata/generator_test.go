package demodata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroom/adapters/excel"
	"showroom/app"
	"showroom/domain/vehicle"
	"showroom/internal"
	"showroom/internal/testkit"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(DefaultConfig())
	require.NoError(t, err)
	b, err := Generate(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Rows, b.Rows)
	require.Len(t, a.Rows, 24)
	for _, row := range a.Rows {
		assert.Len(t, row, len(Headers))
	}
}

func TestGenerateRejectsZeroRows(t *testing.T) {
	_, err := Generate(Config{Rows: 0})
	assert.Error(t, err)
}

func TestWrittenWorkbookLoads(t *testing.T) {
	ds, err := Generate(Config{Rows: 6, Seed: 7, SheetName: "Inventory"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, WriteXLSX(path, "Inventory", ds))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	logger := internal.NewNopLogger()
	svc := app.NewInventoryService(&testkit.StaticSource{Data: data},
		excel.NewDataReader(excel.DefaultExcelConfig(), logger), vehicle.DefaultSchema(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	records, err := svc.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 6)

	// Odd rows carry their identifier in the alternate column.
	_, err = svc.Find(ctx, "S1001")
	assert.NoError(t, err)
}

func TestWriteCSV(t *testing.T) {
	ds, err := Generate(Config{Rows: 3, Seed: 1})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, WriteCSV(path, ds))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	parsed, err := excel.NewDataReader(excel.DefaultExcelConfig(), internal.NewNopLogger()).ReadBytes(data, path)
	require.NoError(t, err)
	assert.Len(t, parsed.Rows, 3)
}
