package forecast

import (
	"context"
	"fmt"
	"log/slog"

	"forecast/internal/core"
)

// Engine computes forecast rows. It is pure given the provider's answers:
// no internal state survives a ComputeRow call, so rows for different cost
// codes may be computed concurrently on the same Engine.
type Engine struct {
	provider AggregateProvider
	logger   *slog.Logger
}

// NewEngine builds an engine over the given provider. The logger is the
// injectable diagnostics sink for intermediate values; pass nil to use the
// process default (diagnostics emit at Debug level, so they are off unless
// the handler enables them).
func NewEngine(provider AggregateProvider, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{provider: provider, logger: logger}
}

// ComputeRow evaluates the A–N chain for one cost code, strictly in formula
// order since later letters depend on earlier ones:
//
//	A   = budget + approved change orders
//	C   = committed PO lines + spend outside commitment
//	B   = C - SCOs issued on unposted PCI/OCO
//	cur = current period cost (informational only)
//	D,E = unposted internal/external change cost (zero unless IncludePending)
//	F   = D + E
//	G   = A - C, forced to 0 when A < B, then clamped at 0
//	H   = F - advance SCOs, clamped at 0
//	I   = C + G + H, or A + F under UseAltForecastWhenNoOverride
//	J   = budget + approved change orders (independent re-fetch)
//	K   = unposted change revenue budget (zero unless IncludePending)
//	L   = K
//	M   = J + L
//	N   = M - I
//
// Provider failures propagate unchanged; the engine never substitutes a
// default for a failed fetch.
func (eng *Engine) ComputeRow(ctx context.Context, projectID string, cc core.CostCode, flags core.ForecastFlags) (core.ForecastRow, error) {
	if err := cc.Validate(); err != nil {
		return core.ForecastRow{}, fmt.Errorf("cost code %q: %w", cc.ID, err)
	}
	if err := flags.Validate(); err != nil {
		return core.ForecastRow{}, err
	}

	snap := newRowSnapshot()
	var zero core.Amount

	a, err := snap.fetch("budget_plus_approved_cos", func() (core.Amount, error) {
		return eng.provider.BudgetPlusApprovedChangeOrders(ctx, projectID, cc.ID)
	})
	if err != nil {
		return core.ForecastRow{}, fmt.Errorf("budget plus approved change orders: %w", err)
	}

	committed, err := snap.fetch("committed_po_lines", func() (core.Amount, error) {
		return eng.provider.CommittedPurchaseOrderLines(ctx, projectID, cc.ID)
	})
	if err != nil {
		return core.ForecastRow{}, fmt.Errorf("committed purchase order lines: %w", err)
	}
	spentOutside, err := snap.fetch("spent_outside_commitment", func() (core.Amount, error) {
		return eng.provider.SpentOutsideCommitment(ctx, projectID, cc.ID)
	})
	if err != nil {
		return core.ForecastRow{}, fmt.Errorf("spent outside commitment: %w", err)
	}
	c := committed.Add(spentOutside)

	scosOnUnposted, err := snap.fetch("scos_on_unposted", func() (core.Amount, error) {
		return eng.provider.SpecialChangeOrdersOnUnposted(ctx, projectID, cc.ID)
	})
	if err != nil {
		return core.ForecastRow{}, fmt.Errorf("special change orders on unposted: %w", err)
	}
	b := c.Sub(scosOnUnposted)

	cur, err := snap.fetch("current_period_cost", func() (core.Amount, error) {
		return eng.provider.CurrentPeriodCost(ctx, projectID, cc.ID, flags.Period)
	})
	if err != nil {
		return core.ForecastRow{}, fmt.Errorf("current period cost: %w", err)
	}

	dInt, eExt := zero, zero
	if flags.IncludePending {
		dInt, err = snap.fetch("unposted_internal_cost", func() (core.Amount, error) {
			return eng.provider.UnpostedInternalChangeCost(ctx, projectID, cc.ID)
		})
		if err != nil {
			return core.ForecastRow{}, fmt.Errorf("unposted internal change cost: %w", err)
		}
		eExt, err = snap.fetch("unposted_external_cost", func() (core.Amount, error) {
			return eng.provider.UnpostedExternalChangeCost(ctx, projectID, cc.ID)
		})
		if err != nil {
			return core.ForecastRow{}, fmt.Errorf("unposted external change cost: %w", err)
		}
	}
	fAdj := dInt.Add(eExt)

	// G: two independent triggers, applied in order. The A < B check forces
	// zero even when A - C is positive; the negative clamp is separate.
	g := a.Sub(c)
	if a.LessThan(b) {
		g = zero
	}
	if g.IsNegative() {
		g = zero
	}

	advanceSCOs, err := snap.fetch("advance_scos", func() (core.Amount, error) {
		return eng.provider.AdvanceSpecialChangeOrders(ctx, projectID, cc.ID)
	})
	if err != nil {
		return core.ForecastRow{}, fmt.Errorf("advance special change orders: %w", err)
	}
	h := fAdj.Sub(advanceSCOs)
	if h.IsNegative() {
		h = zero
	}

	// I: two mutually exclusive formulas, no blending.
	iFcst := c.Add(g).Add(h)
	if flags.UseAltForecastWhenNoOverride {
		iFcst = a.Add(fAdj)
	}

	// J re-queries the same aggregate as A on purpose: cost budget and
	// revenue budget are independently named quantities that may diverge in
	// a future provider. Within one row the snapshot keeps them consistent.
	j, err := snap.fetch("budget_plus_approved_cos", func() (core.Amount, error) {
		return eng.provider.BudgetPlusApprovedChangeOrders(ctx, projectID, cc.ID)
	})
	if err != nil {
		return core.ForecastRow{}, fmt.Errorf("budget plus approved change orders: %w", err)
	}

	k := zero
	if flags.IncludePending {
		k, err = snap.fetch("unposted_revenue_budget", func() (core.Amount, error) {
			return eng.provider.UnpostedChangeRevenueBudget(ctx, projectID, cc.ID)
		})
		if err != nil {
			return core.ForecastRow{}, fmt.Errorf("unposted change revenue budget: %w", err)
		}
	}
	l := k
	m := j.Add(l)
	n := m.Sub(iFcst)

	eng.logger.DebugContext(ctx, "forecast row computed",
		"project_id", projectID,
		"cost_code", cc.Code,
		"a", a.String(),
		"b", b.String(),
		"c", c.String(),
		"j", j.String(),
		"m", m.String(),
		"n", n.String())

	return core.ForecastRow{
		CostCode:      cc.Label(),
		A:             a,
		B:             b,
		C:             c,
		CurrentPeriod: cur,
		D:             dInt,
		E:             eExt,
		F:             fAdj,
		G:             g,
		H:             h,
		I:             iFcst,
		J:             j,
		K:             k,
		L:             l,
		M:             m,
		N:             n,
	}, nil
}
