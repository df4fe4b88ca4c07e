package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullHeaders() []string {
	return []string{
		"Stock #", "Year", "Make", "Model", "Trim", "Price", "Mileage", "Condition",
		"Exterior Color", "Interior Color", "VIN", "Body Style", "Transmission",
		"Drivetrain", "Engine", "Fuel Type", "Images", "Description",
	}
}

func TestDetectDriftNone(t *testing.T) {
	report := DetectDrift(DefaultSchema(), fullHeaders())
	assert.False(t, report.HasDrift())
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Unmapped)
}

func TestDetectDriftRenamedIdentifierIsHigh(t *testing.T) {
	headers := fullHeaders()
	headers[0] = "Stock Num"

	report := DetectDrift(DefaultSchema(), headers)
	assert.Equal(t, DriftSeverityHigh, report.Severity)
	assert.Equal(t, []Field{FieldIdentifier}, report.Missing)
	assert.Equal(t, []string{"Stock Num"}, report.Unmapped)
	assert.Contains(t, report.Summary(), "missing=[identifier]")
}

func TestDetectDriftAlternateAliasCounts(t *testing.T) {
	headers := fullHeaders()
	headers[0] = "StockNumber"

	report := DetectDrift(DefaultSchema(), headers)
	assert.False(t, report.HasDrift())
}

func TestDetectDriftSeverityLevels(t *testing.T) {
	withoutPrice := []string{}
	for _, h := range fullHeaders() {
		if h != "Price" {
			withoutPrice = append(withoutPrice, h)
		}
	}
	assert.Equal(t, DriftSeverityMedium, DetectDrift(DefaultSchema(), withoutPrice).Severity)

	extra := append(fullHeaders(), "Dealer Notes")
	assert.Equal(t, DriftSeverityLow, DetectDrift(DefaultSchema(), extra).Severity)
}
