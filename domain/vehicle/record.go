package vehicle

import "strings"

// Record is one spreadsheet row keyed by column header, plus the parsed image sequence.
// Records are shared from the inventory cache and must not be mutated.
type Record struct {
	Fields map[string]string
	Images []string
}

// NewRecord builds a record from a row, deriving Images from the first images alias
// holding a non-blank value.
func NewRecord(fields map[string]string, schema Schema) Record {
	record := Record{Fields: fields}
	record.Images = ParseImages(record.Value(schema, FieldImages))
	return record
}

// Value returns the first non-empty value among the field's aliases.
func (r Record) Value(schema Schema, field Field) string {
	for _, column := range schema.Aliases(field) {
		if v := strings.TrimSpace(r.Fields[column]); v != "" {
			return v
		}
	}
	return ""
}

// Identifier returns the record's stock number, or "" when it has none.
func (r Record) Identifier(schema Schema) string {
	return r.Value(schema, FieldIdentifier)
}

// FirstImage returns the first image reference, or "".
func (r Record) FirstImage() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}

// ParseImages splits a comma separated cell into trimmed, non-empty references.
// Order is preserved and duplicates are kept.
func ParseImages(raw string) []string {
	images := []string{}
	for _, part := range strings.Split(raw, ",") {
		if ref := strings.TrimSpace(part); ref != "" {
			images = append(images, ref)
		}
	}
	return images
}

// Find resolves an identifier by trying each identifier alias in order across all
// records, so a match under the primary column wins over one under an alternate.
func Find(records []Record, schema Schema, id string) (Record, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, false
	}
	for _, column := range schema.Aliases(FieldIdentifier) {
		for _, record := range records {
			if strings.TrimSpace(record.Fields[column]) == id {
				return record, true
			}
		}
	}
	return Record{}, false
}
