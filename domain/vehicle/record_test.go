package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImages(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"drops empty entries and trims", "a.jpg, b.jpg,,c.jpg", []string{"a.jpg", "b.jpg", "c.jpg"}},
		{"keeps duplicates in order", "x.png,x.png , y.png", []string{"x.png", "x.png", "y.png"}},
		{"empty cell", "", []string{}},
		{"only separators", " , ,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseImages(tt.raw))
		})
	}
}

func TestNewRecordUsesFirstFilledImageColumn(t *testing.T) {
	schema := DefaultSchema()

	primary := NewRecord(map[string]string{"Images": "a.jpg", "Image URLs": "z.jpg"}, schema)
	assert.Equal(t, []string{"a.jpg"}, primary.Images)

	alternate := NewRecord(map[string]string{"Image URLs": "z.jpg, y.jpg"}, schema)
	assert.Equal(t, []string{"z.jpg", "y.jpg"}, alternate.Images)
	assert.Equal(t, "z.jpg", alternate.FirstImage())

	// Absent cells default to "" so a blank primary column falls through.
	fallback := NewRecord(map[string]string{"Images": "", "Image URLs": "z.jpg"}, schema)
	assert.Equal(t, []string{"z.jpg"}, fallback.Images)

	none := NewRecord(map[string]string{"Make": "Ford"}, schema)
	assert.Empty(t, none.Images)
	assert.NotNil(t, none.Images)
	assert.Equal(t, "", none.FirstImage())
}

func TestFindTriesAliasesInOrder(t *testing.T) {
	schema := DefaultSchema()
	records := []Record{
		NewRecord(map[string]string{"Stock #": "A100", "Make": "Ford"}, schema),
		NewRecord(map[string]string{"StockNumber": "B200", "Make": "Honda"}, schema),
		NewRecord(map[string]string{"StockNumber": "A100", "Make": "Kia"}, schema),
	}

	found, ok := Find(records, schema, "B200")
	require.True(t, ok)
	assert.Equal(t, "Honda", found.Fields["Make"])

	found, ok = Find(records, schema, " A100 ")
	require.True(t, ok)
	assert.Equal(t, "Ford", found.Fields["Make"], "primary column match wins")

	_, ok = Find(records, schema, "missing")
	assert.False(t, ok)

	_, ok = Find(records, schema, "")
	assert.False(t, ok)
}

func TestValueFallsBackAcrossAliases(t *testing.T) {
	schema := DefaultSchema()
	record := NewRecord(map[string]string{"Color": "", "Exterior Color": "Red"}, schema)

	assert.Equal(t, "Red", record.Value(schema, FieldColor))
	assert.Equal(t, "", record.Value(schema, FieldTrim))
	assert.Equal(t, "", record.Identifier(schema))
}

func TestParseSchemaOverlaysDefaults(t *testing.T) {
	schema, err := ParseSchema([]byte("columns:\n  identifier: [\"Inventory ID\"]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Inventory ID"}, schema.Aliases(FieldIdentifier))
	assert.Equal(t, []string{"Price"}, schema.Aliases(FieldPrice))

	_, err = ParseSchema([]byte("columns:\n  price: []\n"))
	assert.Error(t, err)

	_, err = ParseSchema([]byte("columns: [oops"))
	assert.Error(t, err)
}

func TestLoadSchemaWithoutPathReturnsDefaults(t *testing.T) {
	schema, err := LoadSchema("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSchema(), schema)
}
