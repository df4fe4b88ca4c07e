package app

import (
	"html/template"
	"net/url"
	"strings"

	"showroom/domain/vehicle"
	"showroom/internal/format"
	"showroom/internal/profiling"
	"showroom/internal/richtext"
)

// DetailPath is the detail page route; the identifier travels in DetailParam.
const (
	DetailPath  = "/vehicle"
	DetailParam = "id"
)

// Card is the listing projection of one record
type Card struct {
	ID        string `json:"id"`
	Href      string `json:"href,omitempty"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Trim      string `json:"trim"`
	Price     string `json:"price"`
	Mileage   string `json:"mileage"`
	Condition string `json:"condition"`
	Color     string `json:"color"`
	Image     string `json:"image,omitempty"`
}

// LabeledField is one row of the detail specs table
type LabeledField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Detail is the detail page projection of one record
type Detail struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Price       string         `json:"price"`
	Mileage     string         `json:"mileage"`
	Fields      []LabeledField `json:"fields"`
	Images      []string       `json:"images"`
	Description template.HTML  `json:"description,omitempty"`
}

// SummaryView is the formatted listing header
type SummaryView struct {
	Vehicles    int    `json:"vehicles"`
	PriceRange  string `json:"price_range,omitempty"`
	MedianPrice string `json:"median_price,omitempty"`
}

// detailFields fixes the row order of the specs table.
var detailFields = []struct {
	field vehicle.Field
	key   string
	label string
}{
	{vehicle.FieldYear, "year", "Year"},
	{vehicle.FieldMake, "make", "Make"},
	{vehicle.FieldModel, "model", "Model"},
	{vehicle.FieldTrim, "trim", "Trim"},
	{vehicle.FieldCondition, "condition", "Condition"},
	{vehicle.FieldColor, "color", "Exterior Color"},
	{vehicle.FieldInterior, "interior", "Interior Color"},
	{vehicle.FieldVIN, "vin", "VIN"},
	{vehicle.FieldBody, "body", "Body Style"},
	{vehicle.FieldTransmission, "transmission", "Transmission"},
	{vehicle.FieldDrivetrain, "drivetrain", "Drivetrain"},
	{vehicle.FieldEngine, "engine", "Engine"},
	{vehicle.FieldFuel, "fuel", "Fuel Type"},
	{vehicle.FieldMileage, "mileage", "Mileage"},
	{vehicle.FieldIdentifier, "stock", "Stock #"},
}

// Presenter projects records into display models
type Presenter struct {
	schema    vehicle.Schema
	formatter *format.Formatter
	markdown  *richtext.Renderer
}

// NewPresenter creates a presenter
func NewPresenter(schema vehicle.Schema, formatter *format.Formatter, markdown *richtext.Renderer) *Presenter {
	if formatter == nil {
		formatter = format.NewFormatter("en-US", "$", "mi")
	}
	if markdown == nil {
		markdown = richtext.NewRenderer()
	}
	return &Presenter{schema: schema, formatter: formatter, markdown: markdown}
}

// Cards projects every record, preserving spreadsheet order.
func (p *Presenter) Cards(records []vehicle.Record) []Card {
	cards := make([]Card, 0, len(records))
	for _, record := range records {
		cards = append(cards, p.Card(record))
	}
	return cards
}

// Card leaves Href empty for records without an identifier.
func (p *Presenter) Card(record vehicle.Record) Card {
	value := func(f vehicle.Field) string { return record.Value(p.schema, f) }

	card := Card{
		ID:        record.Identifier(p.schema),
		Title:     p.title(record),
		Year:      value(vehicle.FieldYear),
		Make:      value(vehicle.FieldMake),
		Model:     value(vehicle.FieldModel),
		Trim:      value(vehicle.FieldTrim),
		Price:     p.formatter.Price(value(vehicle.FieldPrice)),
		Mileage:   p.formatter.Mileage(value(vehicle.FieldMileage)),
		Condition: value(vehicle.FieldCondition),
		Color:     value(vehicle.FieldColor),
		Image:     record.FirstImage(),
	}
	if card.ID != "" {
		card.Href = DetailHref(card.ID)
	}
	return card
}

// Detail builds the labeled field set, image sequence and description.
func (p *Presenter) Detail(record vehicle.Record) Detail {
	fields := make([]LabeledField, 0, len(detailFields))
	for _, f := range detailFields {
		v := record.Value(p.schema, f.field)
		if f.field == vehicle.FieldMileage {
			v = p.formatter.Mileage(v)
		}
		fields = append(fields, LabeledField{Key: f.key, Label: f.label, Value: v})
	}

	return Detail{
		ID:          record.Identifier(p.schema),
		Title:       p.title(record),
		Price:       p.formatter.Price(record.Value(p.schema, vehicle.FieldPrice)),
		Mileage:     p.formatter.Mileage(record.Value(p.schema, vehicle.FieldMileage)),
		Fields:      fields,
		Images:      record.Images,
		Description: p.markdown.Render(record.Value(p.schema, vehicle.FieldDescription)),
	}
}

// Summary formats the inventory statistics for the listing header.
func (p *Presenter) Summary(summary profiling.InventorySummary) SummaryView {
	view := SummaryView{Vehicles: summary.Vehicles}
	if summary.Price.Count > 0 {
		low := p.formatter.Price(summary.Price.Min)
		high := p.formatter.Price(summary.Price.Max)
		view.PriceRange = low
		if high != low {
			view.PriceRange = low + " - " + high
		}
		view.MedianPrice = p.formatter.Price(summary.Price.Median)
	}
	return view
}

// title joins year, make, model and trim, skipping blanks.
func (p *Presenter) title(record vehicle.Record) string {
	parts := make([]string, 0, 4)
	for _, f := range []vehicle.Field{vehicle.FieldYear, vehicle.FieldMake, vehicle.FieldModel, vehicle.FieldTrim} {
		if v := record.Value(p.schema, f); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// DetailHref links to the detail page for an identifier.
func DetailHref(id string) string {
	return DetailPath + "?" + url.Values{DetailParam: {id}}.Encode()
}
