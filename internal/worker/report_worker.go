package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"forecast/internal/amqp"
	"forecast/internal/forecast"
)

// ReportExporter delivers a finished report somewhere durable, typically a
// Google Sheets spreadsheet.
type ReportExporter interface {
	ExportReport(ctx context.Context, report *forecast.Report) error
}

// ReportWorker builds forecast reports requested over AMQP and hands them to
// the configured exporter.
type ReportWorker struct {
	service  *forecast.Service
	exporter ReportExporter
}

func NewReportWorker(service *forecast.Service, exporter ReportExporter) *ReportWorker {
	return &ReportWorker{
		service:  service,
		exporter: exporter,
	}
}

// HandleReportRequest processes a single report request message from AMQP
func (w *ReportWorker) HandleReportRequest(ctx context.Context, msg *amqp.ReportRequestMessage) error {
	slog.InfoContext(ctx, "Processing report request",
		"project_id", msg.ProjectID,
		"include_pending", msg.IncludePending)

	flags := msg.Flags()
	if err := flags.Validate(); err != nil {
		return fmt.Errorf("invalid request flags: %w", err)
	}

	start := time.Now()
	report, err := w.service.BuildReport(ctx, msg.ProjectID, flags)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	slog.InfoContext(ctx, "Report built",
		"project_id", msg.ProjectID,
		"rows", len(report.Rows),
		"duration", time.Since(start))

	if w.exporter == nil {
		slog.WarnContext(ctx, "No exporter configured, report discarded",
			"project_id", msg.ProjectID)
		return nil
	}

	if err := w.exporter.ExportReport(ctx, report); err != nil {
		return fmt.Errorf("export report: %w", err)
	}

	slog.InfoContext(ctx, "Report exported", "project_id", msg.ProjectID)
	return nil
}
