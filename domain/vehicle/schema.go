package vehicle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Field is a logical vehicle attribute, independent of spreadsheet column naming.
type Field string

const (
	FieldIdentifier   Field = "identifier"
	FieldImages       Field = "images"
	FieldYear         Field = "year"
	FieldMake         Field = "make"
	FieldModel        Field = "model"
	FieldTrim         Field = "trim"
	FieldPrice        Field = "price"
	FieldMileage      Field = "mileage"
	FieldCondition    Field = "condition"
	FieldColor        Field = "color"
	FieldInterior     Field = "interior"
	FieldVIN          Field = "vin"
	FieldBody         Field = "body"
	FieldTransmission Field = "transmission"
	FieldDrivetrain   Field = "drivetrain"
	FieldEngine       Field = "engine"
	FieldFuel         Field = "fuel"
	FieldDescription  Field = "description"
)

// Schema maps each logical field to an ordered list of column aliases.
// Earlier aliases take precedence.
type Schema struct {
	Columns map[Field][]string `yaml:"columns"`
}

// DefaultSchema returns the column names used by the dealership spreadsheet.
// Identifier and images carry a second alias for older exports.
func DefaultSchema() Schema {
	return Schema{Columns: map[Field][]string{
		FieldIdentifier:   {"Stock #", "StockNumber"},
		FieldImages:       {"Images", "Image URLs"},
		FieldYear:         {"Year"},
		FieldMake:         {"Make"},
		FieldModel:        {"Model"},
		FieldTrim:         {"Trim"},
		FieldPrice:        {"Price"},
		FieldMileage:      {"Mileage"},
		FieldCondition:    {"Condition"},
		FieldColor:        {"Color", "Exterior Color"},
		FieldInterior:     {"Interior Color"},
		FieldVIN:          {"VIN"},
		FieldBody:         {"Body Style"},
		FieldTransmission: {"Transmission"},
		FieldDrivetrain:   {"Drivetrain"},
		FieldEngine:       {"Engine"},
		FieldFuel:         {"Fuel Type"},
		FieldDescription:  {"Description"},
	}}
}

// Aliases returns the column names for a field.
func (s Schema) Aliases(field Field) []string {
	return s.Columns[field]
}

// LoadSchema reads a YAML schema file and overlays it on the defaults.
// Fields missing from the file keep their default aliases.
func LoadSchema(path string) (Schema, error) {
	schema := DefaultSchema()
	if path == "" {
		return schema, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return schema, fmt.Errorf("read schema file: %w", err)
	}
	return ParseSchema(content)
}

// ParseSchema decodes YAML of the form
//
//	columns:
//	  identifier: ["Stock #", "StockNumber"]
//	  price: ["Price"]
func ParseSchema(content []byte) (Schema, error) {
	schema := DefaultSchema()

	var override Schema
	if err := yaml.Unmarshal(content, &override); err != nil {
		return schema, fmt.Errorf("parse schema: %w", err)
	}

	for field, aliases := range override.Columns {
		if len(aliases) == 0 {
			return schema, fmt.Errorf("schema field %q has no column aliases", field)
		}
		schema.Columns[field] = aliases
	}
	return schema, nil
}
