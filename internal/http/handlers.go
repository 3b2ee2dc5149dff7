package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"forecast/internal/core"
	"forecast/internal/forecast"
	applog "forecast/internal/log"
)

// forecastResponse is the JSON shape of a project forecast report.
type forecastResponse struct {
	ProjectID   string             `json:"project_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Headers     []string           `json:"headers"`
	Rows        []core.ForecastRow `json:"rows"`
}

// handleProjectForecast builds (or serves from cache) the forecast report for
// one project. Query parameters: include_pending (default true), alt_forecast,
// year and month for a specific accounting period.
func (s *Server) handleProjectForecast(w http.ResponseWriter, r *http.Request) {
	projectID := strings.TrimSpace(r.PathValue("id"))
	if projectID == "" {
		respondError(w, http.StatusBadRequest, "missing project id")
		return
	}

	flags, err := parseFlags(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := projectID + "|" + flags.CacheKey()
	if report, found := s.reportCache.Get(key); found {
		slog.DebugContext(r.Context(), "Report cache hit", "project_id", projectID)
		respondJSON(w, http.StatusOK, toResponse(report))
		return
	}

	report, err := s.reports.BuildReport(r.Context(), projectID, flags)
	if err != nil {
		if errors.Is(err, core.ErrEmptyProjectID) || errors.Is(err, core.ErrInvalidPeriod) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Report build failed",
			applog.FieldProjectID, projectID,
			applog.FieldComponent, applog.ComponentHTTP,
			applog.FieldError, err)
		respondError(w, http.StatusInternalServerError, "failed to build forecast report")
		return
	}

	s.reportCache.Set(key, report)
	respondJSON(w, http.StatusOK, toResponse(report))
}

// handleHeaders returns the static column catalog.
func (s *Server) handleHeaders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"headers": core.HeaderLabels()})
}

func toResponse(report *forecast.Report) forecastResponse {
	return forecastResponse{
		ProjectID:   report.ProjectID,
		GeneratedAt: report.GeneratedAt,
		Headers:     core.HeaderLabels(),
		Rows:        report.Rows,
	}
}

func parseFlags(r *http.Request) (core.ForecastFlags, error) {
	q := r.URL.Query()

	flags := core.ForecastFlags{IncludePending: true}

	if v := strings.TrimSpace(q.Get("include_pending")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return core.ForecastFlags{}, errors.New("invalid include_pending parameter")
		}
		flags.IncludePending = b
	}

	if v := strings.TrimSpace(q.Get("alt_forecast")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return core.ForecastFlags{}, errors.New("invalid alt_forecast parameter")
		}
		flags.UseAltForecastWhenNoOverride = b
	}

	yearStr := strings.TrimSpace(q.Get("year"))
	monthStr := strings.TrimSpace(q.Get("month"))
	if yearStr != "" || monthStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return core.ForecastFlags{}, errors.New("invalid year parameter")
		}
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			return core.ForecastFlags{}, errors.New("invalid month parameter")
		}
		period := core.PeriodRef{Year: year, Month: month}
		if err := period.Validate(); err != nil {
			return core.ForecastFlags{}, err
		}
		flags.Period = &period
	}

	return flags, nil
}
