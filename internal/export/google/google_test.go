package google

import (
	"testing"
	"time"

	"forecast/internal/core"
	"forecast/internal/forecast"
)

func TestReportValues(t *testing.T) {
	row := core.ForecastRow{CostCode: "03-100 — Concrete"}
	report := &forecast.Report{
		ProjectID:   "JOB-1",
		GeneratedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Rows:        []core.ForecastRow{row},
	}

	values := reportValues(report)

	if len(values) != 2 {
		t.Fatalf("len(values) = %d, want 2", len(values))
	}

	header := values[0]
	if len(header) != len(core.Headers)+1 {
		t.Fatalf("header width = %d, want %d", len(header), len(core.Headers)+1)
	}
	if header[0] != "Cost Code" {
		t.Errorf("header[0] = %v, want %q", header[0], "Cost Code")
	}
	if header[1] != core.Headers[0].Label() {
		t.Errorf("header[1] = %v, want %q", header[1], core.Headers[0].Label())
	}

	dataRow := values[1]
	if len(dataRow) != len(core.Headers)+1 {
		t.Fatalf("row width = %d, want %d", len(dataRow), len(core.Headers)+1)
	}
	if dataRow[0] != "03-100 — Concrete" {
		t.Errorf("row[0] = %v, want cost code label", dataRow[0])
	}
	for i := 1; i < len(dataRow); i++ {
		if dataRow[i] != "0.00" {
			t.Errorf("row[%d] = %v, want %q", i, dataRow[i], "0.00")
		}
	}
}

func TestReportValues_EmptyReport(t *testing.T) {
	report := &forecast.Report{ProjectID: "JOB-2"}

	values := reportValues(report)

	if len(values) != 1 {
		t.Fatalf("len(values) = %d, want header row only", len(values))
	}
}
