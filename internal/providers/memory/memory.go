// Package memory provides a seedable in-memory implementation of the
// forecast ports. It backs the memory data backend and doubles as the test
// fixture everywhere the engine needs deterministic aggregates.
package memory

import (
	"context"
	"sort"
	"sync"

	"forecast/internal/core"
	"forecast/internal/forecast"
)

// Aggregates holds the nine base quantities for one (project, cost code)
// pair. Unset fields are 0.00, matching the provider contract that absence
// means zero.
type Aggregates struct {
	BudgetPlusApprovedChangeOrders core.Amount
	CommittedPurchaseOrderLines    core.Amount
	SpentOutsideCommitment         core.Amount
	CurrentPeriodCost              core.Amount
	UnpostedInternalChangeCost     core.Amount
	UnpostedExternalChangeCost     core.Amount
	UnpostedChangeRevenueBudget    core.Amount
	AdvanceSpecialChangeOrders     core.Amount
	SpecialChangeOrdersOnUnposted  core.Amount
}

type key struct {
	projectID  string
	costCodeID string
}

type Store struct {
	mu    sync.Mutex
	codes map[string][]core.CostCode
	aggs  map[key]Aggregates
}

var (
	_ forecast.AggregateProvider  = (*Store)(nil)
	_ forecast.CostCodeEnumerator = (*Store)(nil)
)

func New() *Store {
	return &Store{
		codes: make(map[string][]core.CostCode),
		aggs:  make(map[key]Aggregates),
	}
}

// Seed registers a cost code for a project together with its aggregates.
// Seeding the same code twice replaces its aggregates.
func (s *Store) Seed(projectID string, cc core.CostCode, aggs Aggregates) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{projectID: projectID, costCodeID: cc.ID}
	if _, exists := s.aggs[k]; !exists {
		s.codes[projectID] = append(s.codes[projectID], cc)
	}
	s.aggs[k] = aggs
}

// ListCostCodes returns the seeded codes ordered by code ascending.
func (s *Store) ListCostCodes(_ context.Context, projectID string) ([]core.CostCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]core.CostCode(nil), s.codes[projectID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *Store) lookup(projectID, costCodeID string) Aggregates {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aggs[key{projectID: projectID, costCodeID: costCodeID}]
}

func (s *Store) BudgetPlusApprovedChangeOrders(_ context.Context, projectID, costCodeID string) (core.Amount, error) {
	return s.lookup(projectID, costCodeID).BudgetPlusApprovedChangeOrders, nil
}

func (s *Store) CommittedPurchaseOrderLines(_ context.Context, projectID, costCodeID string) (core.Amount, error) {
	return s.lookup(projectID, costCodeID).CommittedPurchaseOrderLines, nil
}

func (s *Store) SpentOutsideCommitment(_ context.Context, projectID, costCodeID string) (core.Amount, error) {
	return s.lookup(projectID, costCodeID).SpentOutsideCommitment, nil
}

// CurrentPeriodCost returns the seeded period cost only when a period is
// requested, mirroring the provider contract (zero if no period given).
func (s *Store) CurrentPeriodCost(_ context.Context, projectID, costCodeID string, period *core.PeriodRef) (core.Amount, error) {
	if period == nil {
		return core.Amount{}, nil
	}
	return s.lookup(projectID, costCodeID).CurrentPeriodCost, nil
}

func (s *Store) UnpostedInternalChangeCost(_ context.Context, projectID, costCodeID string) (core.Amount, error) {
	return s.lookup(projectID, costCodeID).UnpostedInternalChangeCost, nil
}

func (s *Store) UnpostedExternalChangeCost(_ context.Context, projectID, costCodeID string) (core.Amount, error) {
	return s.lookup(projectID, costCodeID).UnpostedExternalChangeCost, nil
}

func (s *Store) UnpostedChangeRevenueBudget(_ context.Context, projectID, costCodeID string) (core.Amount, error) {
	return s.lookup(projectID, costCodeID).UnpostedChangeRevenueBudget, nil
}

func (s *Store) AdvanceSpecialChangeOrders(_ context.Context, projectID, costCodeID string) (core.Amount, error) {
	return s.lookup(projectID, costCodeID).AdvanceSpecialChangeOrders, nil
}

func (s *Store) SpecialChangeOrdersOnUnposted(_ context.Context, projectID, costCodeID string) (core.Amount, error) {
	return s.lookup(projectID, costCodeID).SpecialChangeOrdersOnUnposted, nil
}
