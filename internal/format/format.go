package format

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders prices and mileage for one locale.
type Formatter struct {
	printer        *message.Printer
	currencySymbol string
	mileageUnit    string
}

// NewFormatter builds a formatter. An unparseable locale falls back to en-US.
func NewFormatter(locale, currencySymbol, mileageUnit string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{
		printer:        message.NewPrinter(tag),
		currencySymbol: currencySymbol,
		mileageUnit:    mileageUnit,
	}
}

var defaultFormatter = NewFormatter("en-US", "$", "mi")

// Price formats with the default en-US formatter.
// Example: Price(19999) => "$19,999"
func Price(v any) string {
	return defaultFormatter.Price(v)
}

// Mileage formats with the default en-US formatter.
// Example: Mileage(45000) => "45,000 mi"
func Mileage(v any) string {
	return defaultFormatter.Mileage(v)
}

// Price returns "" for empty input, echoes non-numeric input, and otherwise prints the
// currency symbol followed by the grouped whole amount.
func (f *Formatter) Price(v any) string {
	n, raw, ok := numeric(v)
	if !ok {
		return raw
	}
	return f.currencySymbol + f.printer.Sprint(number.Decimal(whole(math.Round(n)), number.MaxFractionDigits(0)))
}

// Mileage returns "" for empty input, echoes non-numeric input, and otherwise prints the
// grouped distance followed by the unit.
func (f *Formatter) Mileage(v any) string {
	n, raw, ok := numeric(v)
	if !ok {
		return raw
	}
	digits := 3
	if n == math.Trunc(n) {
		n, digits = whole(n), 0
	}
	return f.printer.Sprint(number.Decimal(n, number.MaxFractionDigits(digits))) + " " + f.mileageUnit
}

// whole clears negative zero so rounding -0.4 prints "0".
func whole(n float64) float64 {
	if n == 0 {
		return 0
	}
	return n
}

// decimalPattern accepts plain decimal and exponent notation only. Go literal
// forms such as "1_000" or "0x1p4" are not numbers in a spreadsheet cell.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber reads a finite decimal number from cell text.
func ParseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if !decimalPattern.MatchString(raw) {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// numeric classifies v. When ok is false, raw is what should be displayed instead:
// "" for empty input, the input text for anything that is not a finite number.
// Numeric zero is a value, not empty.
func numeric(v any) (n float64, raw string, ok bool) {
	switch t := v.(type) {
	case nil:
		return 0, "", false
	case int:
		return float64(t), "", true
	case int8:
		return float64(t), "", true
	case int16:
		return float64(t), "", true
	case int32:
		return float64(t), "", true
	case int64:
		return float64(t), "", true
	case uint:
		return float64(t), "", true
	case uint8:
		return float64(t), "", true
	case uint16:
		return float64(t), "", true
	case uint32:
		return float64(t), "", true
	case uint64:
		return float64(t), "", true
	case float64:
		return finite(t, strconv.FormatFloat(t, 'f', -1, 64))
	case float32:
		return finite(float64(t), strconv.FormatFloat(float64(t), 'f', -1, 32))
	case string:
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			return 0, "", false
		}
		parsed, ok := ParseNumber(trimmed)
		if !ok {
			return 0, t, false
		}
		return parsed, "", true
	default:
		return 0, fmt.Sprint(v), false
	}
}

func finite(n float64, raw string) (float64, string, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, raw, false
	}
	return n, "", true
}
