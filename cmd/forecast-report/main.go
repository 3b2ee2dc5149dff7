package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"forecast/internal/cli"
	"forecast/internal/core"
	"forecast/internal/forecast"
)

func main() {
	projectID := flag.String("project", "", "project id to report on (required)")
	includePending := flag.Bool("pending", true, "include unposted change order buckets")
	altForecast := flag.Bool("alt-forecast", false, "use the A+F cost forecast variant")
	year := flag.Int("year", 0, "accounting period year (with -month)")
	month := flag.Int("month", 0, "accounting period month (with -year)")
	timeout := flag.Duration("timeout", 2*time.Minute, "report build timeout")
	flag.Parse()

	if *projectID == "" {
		fmt.Fprintln(os.Stderr, "usage: forecast-report -project <id> [-pending=false] [-alt-forecast] [-year Y -month M]")
		os.Exit(2)
	}

	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	flags := core.ForecastFlags{
		IncludePending:               *includePending,
		UseAltForecastWhenNoOverride: *altForecast,
	}
	if *year != 0 || *month != 0 {
		flags.Period = &core.PeriodRef{Year: *year, Month: *month}
	}
	if err := flags.Validate(); err != nil {
		logger.Error("Invalid flags", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result := cli.InitBackend(ctx, logger, cfg)
	if result.Cleanup != nil {
		defer result.Cleanup()
	}

	engine := forecast.NewEngine(result.Backend, logger)
	reports := forecast.NewService(result.Backend, engine, cfg.ReportConcurrency)

	report, err := reports.BuildReport(ctx, *projectID, flags)
	if err != nil {
		logger.Error("Failed to build report", "error", err, "project_id", *projectID)
		os.Exit(1)
	}

	printReport(report)
}

func printReport(report *forecast.Report) {
	fmt.Printf("Forecast for %s (%s)\n\n", report.ProjectID, report.GeneratedAt.Format(time.RFC3339))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprint(w, "Cost Code")
	for _, h := range core.Headers {
		fmt.Fprintf(w, "\t%s", h.Title)
	}
	fmt.Fprintln(w)

	for _, row := range report.Rows {
		fmt.Fprint(w, row.CostCode)
		for _, col := range row.Columns() {
			fmt.Fprintf(w, "\t%s", col)
		}
		fmt.Fprintln(w)
	}

	w.Flush()
}
