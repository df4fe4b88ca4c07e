package vehicle

import (
	"sort"
	"strings"
)

// DriftSeverity grades how badly a sheet's headers diverge from the schema
type DriftSeverity string

const (
	DriftSeverityNone   DriftSeverity = "none"
	DriftSeverityLow    DriftSeverity = "low"
	DriftSeverityMedium DriftSeverity = "medium"
	DriftSeverityHigh   DriftSeverity = "high"
)

// coreFields drive the card title and price; losing one degrades every card.
var coreFields = []Field{FieldYear, FieldMake, FieldModel, FieldPrice}

// DriftReport lists schema fields with no matching header and headers no field claims
type DriftReport struct {
	Missing  []Field
	Unmapped []string
	Severity DriftSeverity
}

// HasDrift reports whether anything changed
func (r DriftReport) HasDrift() bool {
	return r.Severity != DriftSeverityNone
}

// Summary renders the report for a log line
func (r DriftReport) Summary() string {
	missing := make([]string, len(r.Missing))
	for i, f := range r.Missing {
		missing[i] = string(f)
	}
	return "severity=" + string(r.Severity) +
		" missing=[" + strings.Join(missing, ", ") + "]" +
		" unmapped=[" + strings.Join(r.Unmapped, ", ") + "]"
}

// DetectDrift compares sheet headers against the schema aliases.
func DetectDrift(schema Schema, headers []string) DriftReport {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			present[h] = true
		}
	}

	claimed := make(map[string]bool)
	report := DriftReport{Severity: DriftSeverityNone}
	for field, aliases := range schema.Columns {
		found := false
		for _, alias := range aliases {
			if present[alias] {
				claimed[alias] = true
				found = true
			}
		}
		if !found {
			report.Missing = append(report.Missing, field)
		}
	}
	sort.Slice(report.Missing, func(i, j int) bool { return report.Missing[i] < report.Missing[j] })

	for h := range present {
		if !claimed[h] {
			report.Unmapped = append(report.Unmapped, h)
		}
	}
	sort.Strings(report.Unmapped)

	report.Severity = severity(report)
	return report
}

func severity(r DriftReport) DriftSeverity {
	missing := make(map[Field]bool, len(r.Missing))
	for _, f := range r.Missing {
		missing[f] = true
	}

	switch {
	case missing[FieldIdentifier]:
		return DriftSeverityHigh
	case anyOf(missing, coreFields):
		return DriftSeverityMedium
	case len(r.Missing) > 0 || len(r.Unmapped) > 0:
		return DriftSeverityLow
	default:
		return DriftSeverityNone
	}
}

func anyOf(set map[Field]bool, fields []Field) bool {
	for _, f := range fields {
		if set[f] {
			return true
		}
	}
	return false
}
