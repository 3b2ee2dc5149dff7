package forecast

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"forecast/internal/core"
)

// Report is the full forecast for a project: one row per cost code, in
// ascending code order.
type Report struct {
	ProjectID   string             `json:"project_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Rows        []core.ForecastRow `json:"rows"`
}

// Service orchestrates report building: enumerate cost codes, then compute
// each row through the one authoritative engine. Rows are independent, so
// they are computed concurrently up to the configured limit; output order
// always follows the enumerator's order.
type Service struct {
	enumerator  CostCodeEnumerator
	engine      *Engine
	concurrency int
}

// NewService builds a report service. concurrency bounds the number of rows
// in flight at once (values below 1 mean sequential); size it to what the
// provider's data source can sustain, e.g. a connection-pool limit.
func NewService(enumerator CostCodeEnumerator, engine *Engine, concurrency int) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		enumerator:  enumerator,
		engine:      engine,
		concurrency: concurrency,
	}
}

// BuildReport computes the forecast row for every cost code of the project.
// Any row failure aborts the whole report; the caller decides whether to
// retry or skip. No partial report is ever returned.
func (s *Service) BuildReport(ctx context.Context, projectID string, flags core.ForecastFlags) (*Report, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, core.ErrEmptyProjectID
	}
	if err := flags.Validate(); err != nil {
		return nil, err
	}

	codes, err := s.enumerator.ListCostCodes(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list cost codes: %w", err)
	}

	rows := make([]core.ForecastRow, len(codes))
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(s.concurrency)
	for i, cc := range codes {
		grp.Go(func() error {
			row, err := s.engine.ComputeRow(grpCtx, projectID, cc, flags)
			if err != nil {
				return fmt.Errorf("compute row for cost code %s: %w", cc.Code, err)
			}
			rows[i] = row
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		ProjectID:   projectID,
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}, nil
}
