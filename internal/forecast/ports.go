// Package forecast implements the CMiC-aligned derivation engine: the A–N
// formula chain computed per (project, cost code) from nine base aggregates.
// The aggregates come from an AggregateProvider port; any data source that
// fulfils the signature is interchangeable.
package forecast

import (
	"context"

	"forecast/internal/core"
)

// Ports for outbound data providers.
type (
	// AggregateProvider supplies the nine named base quantities per
	// (project, cost code) pair, each already fixed-point.
	//
	// "No matching records" is a legitimate zero, not an error; an error
	// return means the fetch itself failed and the row cannot be computed.
	AggregateProvider interface {
		// BudgetPlusApprovedChangeOrders is the original budget plus
		// approved change orders. Queried for both A and J.
		BudgetPlusApprovedChangeOrders(ctx context.Context, projectID, costCodeID string) (core.Amount, error)

		// CommittedPurchaseOrderLines sums open/partial purchase-order
		// commitments.
		CommittedPurchaseOrderLines(ctx context.Context, projectID, costCodeID string) (core.Amount, error)

		// SpentOutsideCommitment is spend not captured by a purchase order.
		SpentOutsideCommitment(ctx context.Context, projectID, costCodeID string) (core.Amount, error)

		// CurrentPeriodCost is cost posted within the given accounting
		// period, zero when period is nil.
		CurrentPeriodCost(ctx context.Context, projectID, costCodeID string, period *core.PeriodRef) (core.Amount, error)

		// UnpostedInternalChangeCost is the pending-internal-change cost budget.
		UnpostedInternalChangeCost(ctx context.Context, projectID, costCodeID string) (core.Amount, error)

		// UnpostedExternalChangeCost is the pending-external-change cost budget.
		UnpostedExternalChangeCost(ctx context.Context, projectID, costCodeID string) (core.Amount, error)

		// UnpostedChangeRevenueBudget is the pending-change revenue budget.
		UnpostedChangeRevenueBudget(ctx context.Context, projectID, costCodeID string) (core.Amount, error)

		// AdvanceSpecialChangeOrders is the advance SCO amount already
		// accounted against pending cost.
		AdvanceSpecialChangeOrders(ctx context.Context, projectID, costCodeID string) (core.Amount, error)

		// SpecialChangeOrdersOnUnposted is the SCO amount issued against
		// not-yet-posted changes.
		SpecialChangeOrdersOnUnposted(ctx context.Context, projectID, costCodeID string) (core.Amount, error)
	}

	// CostCodeEnumerator supplies the distinct cost codes relevant to a
	// project: the deduplicated union of codes from budget/estimate records
	// and purchase-order records, ordered by code ascending.
	CostCodeEnumerator interface {
		ListCostCodes(ctx context.Context, projectID string) ([]core.CostCode, error)
	}
)
