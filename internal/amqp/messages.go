package amqp

import (
	"encoding/json"
	"time"

	"forecast/internal/core"
)

// ReportRequestMessage asks a worker to build the forecast report for one
// project. It carries only the project id and the computation flags, the
// worker fetches everything else from the backend.
type ReportRequestMessage struct {
	ProjectID      string    `json:"project_id"`
	IncludePending bool      `json:"include_pending"`
	UseAltForecast bool      `json:"use_alt_forecast"`
	PeriodYear     int       `json:"period_year,omitempty"`
	PeriodMonth    int       `json:"period_month,omitempty"`
	RequestedAt    time.Time `json:"requested_at"`
}

// NewReportRequestMessage creates a request message for the given project and flags
func NewReportRequestMessage(projectID string, flags core.ForecastFlags) *ReportRequestMessage {
	msg := &ReportRequestMessage{
		ProjectID:      projectID,
		IncludePending: flags.IncludePending,
		UseAltForecast: flags.UseAltForecastWhenNoOverride,
		RequestedAt:    time.Now(),
	}
	if flags.Period != nil {
		msg.PeriodYear = flags.Period.Year
		msg.PeriodMonth = flags.Period.Month
	}
	return msg
}

// Flags reconstructs the computation flags carried by the message
func (m *ReportRequestMessage) Flags() core.ForecastFlags {
	flags := core.ForecastFlags{
		IncludePending:               m.IncludePending,
		UseAltForecastWhenNoOverride: m.UseAltForecast,
	}
	if m.PeriodYear != 0 || m.PeriodMonth != 0 {
		flags.Period = &core.PeriodRef{Year: m.PeriodYear, Month: m.PeriodMonth}
	}
	return flags
}

// ToJSON converts the message to JSON bytes
func (m *ReportRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// FromJSON creates a message from JSON bytes
func ReportRequestMessageFromJSON(data []byte) (*ReportRequestMessage, error) {
	var msg ReportRequestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
