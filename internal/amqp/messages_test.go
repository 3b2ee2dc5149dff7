package amqp

import (
	"testing"
	"time"

	"forecast/internal/core"
)

func TestNewReportRequestMessage(t *testing.T) {
	flags := core.ForecastFlags{
		IncludePending: true,
		Period:         &core.PeriodRef{Year: 2026, Month: 3},
	}

	msg := NewReportRequestMessage("JOB-100", flags)

	if msg.ProjectID != "JOB-100" {
		t.Errorf("ProjectID = %q, want %q", msg.ProjectID, "JOB-100")
	}
	if !msg.IncludePending {
		t.Error("IncludePending should be true")
	}
	if msg.UseAltForecast {
		t.Error("UseAltForecast should be false")
	}
	if msg.PeriodYear != 2026 || msg.PeriodMonth != 3 {
		t.Errorf("Period = %d-%d, want 2026-3", msg.PeriodYear, msg.PeriodMonth)
	}
	if msg.RequestedAt.IsZero() {
		t.Error("RequestedAt should not be zero")
	}
	if time.Since(msg.RequestedAt) > time.Second {
		t.Error("RequestedAt should be recent")
	}
}

func TestReportRequestMessage_Flags(t *testing.T) {
	tests := []struct {
		name       string
		msg        ReportRequestMessage
		wantPeriod *core.PeriodRef
	}{
		{
			name:       "no period",
			msg:        ReportRequestMessage{ProjectID: "P1", IncludePending: true},
			wantPeriod: nil,
		},
		{
			name:       "with period",
			msg:        ReportRequestMessage{ProjectID: "P1", PeriodYear: 2025, PeriodMonth: 12},
			wantPeriod: &core.PeriodRef{Year: 2025, Month: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := tt.msg.Flags()
			if flags.IncludePending != tt.msg.IncludePending {
				t.Errorf("IncludePending = %v, want %v", flags.IncludePending, tt.msg.IncludePending)
			}
			if tt.wantPeriod == nil {
				if flags.Period != nil {
					t.Errorf("Period = %v, want nil", flags.Period)
				}
				return
			}
			if flags.Period == nil {
				t.Fatal("Period should not be nil")
			}
			if *flags.Period != *tt.wantPeriod {
				t.Errorf("Period = %v, want %v", *flags.Period, *tt.wantPeriod)
			}
		})
	}
}

func TestReportRequestMessage_JSON(t *testing.T) {
	requested := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	msg := &ReportRequestMessage{
		ProjectID:      "JOB-77",
		IncludePending: true,
		UseAltForecast: true,
		PeriodYear:     2026,
		PeriodMonth:    2,
		RequestedAt:    requested,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := ReportRequestMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("ReportRequestMessageFromJSON() error = %v", err)
	}

	if parsed.ProjectID != msg.ProjectID {
		t.Errorf("Parsed ProjectID = %q, want %q", parsed.ProjectID, msg.ProjectID)
	}
	if parsed.IncludePending != msg.IncludePending || parsed.UseAltForecast != msg.UseAltForecast {
		t.Errorf("Parsed flags = (%v, %v), want (%v, %v)",
			parsed.IncludePending, parsed.UseAltForecast, msg.IncludePending, msg.UseAltForecast)
	}
	if parsed.PeriodYear != msg.PeriodYear || parsed.PeriodMonth != msg.PeriodMonth {
		t.Errorf("Parsed period = %d-%d, want %d-%d",
			parsed.PeriodYear, parsed.PeriodMonth, msg.PeriodYear, msg.PeriodMonth)
	}
	if !parsed.RequestedAt.Equal(msg.RequestedAt) {
		t.Errorf("Parsed RequestedAt = %v, want %v", parsed.RequestedAt, msg.RequestedAt)
	}
}

func TestReportRequestMessage_InvalidJSON(t *testing.T) {
	invalidJSON := []byte(`{"project_id": 42, "include_pending": "yes"}`)

	_, err := ReportRequestMessageFromJSON(invalidJSON)
	if err == nil {
		t.Error("ReportRequestMessageFromJSON() should fail with invalid JSON")
	}
}
