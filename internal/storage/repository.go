// Package storage implements the forecast ports over SQLite.
//
// Only the aggregates the schema actually tracks run real queries; the rest
// are placeholder implementations that report zero, kept as independently
// replaceable members of the same interface so the engine never learns which
// is which.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"forecast/internal/core"
	"forecast/internal/forecast"

	_ "modernc.org/sqlite"
)

// committedStatuses are the purchase-order states that count as open or
// partial commitments.
const committedStatuses = `'sent', 'acknowledged', 'partial'`

type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ forecast.AggregateProvider  = (*SQLiteRepository)(nil)
	_ forecast.CostCodeEnumerator = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// DB exposes the underlying handle for test fixtures.
func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) sumCents(ctx context.Context, query string, args ...any) (core.Amount, error) {
	var cents int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&cents); err != nil {
		return core.Amount{}, err
	}
	return core.AmountFromCents(cents), nil
}

// BudgetPlusApprovedChangeOrders sums awarded estimate values for the cost
// code: the original budget plus approved change orders.
func (r *SQLiteRepository) BudgetPlusApprovedChangeOrders(ctx context.Context, projectID, costCodeID string) (core.Amount, error) {
	amount, err := r.sumCents(ctx, `
		SELECT COALESCE(SUM(awarded_value_cents), 0)
		FROM contract_estimates
		WHERE project_id = ? AND cost_code = ?`, projectID, costCodeID)
	if err != nil {
		return core.Amount{}, fmt.Errorf("budget plus approved change orders: %w", err)
	}
	return amount, nil
}

// CommittedPurchaseOrderLines sums open/partial purchase-order commitments.
func (r *SQLiteRepository) CommittedPurchaseOrderLines(ctx context.Context, projectID, costCodeID string) (core.Amount, error) {
	amount, err := r.sumCents(ctx, `
		SELECT COALESCE(SUM(total_amount_cents), 0)
		FROM purchase_orders
		WHERE project_id = ? AND cost_code = ?
		AND status IN (`+committedStatuses+`)`, projectID, costCodeID)
	if err != nil {
		return core.Amount{}, fmt.Errorf("committed purchase order lines: %w", err)
	}
	return amount, nil
}

// SpentOutsideCommitment reports zero: spend outside purchase orders is
// tracked separately and has no table here yet.
func (r *SQLiteRepository) SpentOutsideCommitment(ctx context.Context, projectID, costCodeID string) (core.Amount, error) {
	return core.Amount{}, nil
}

// CurrentPeriodCost reports zero: period posting does not exist in this
// schema yet, with or without a period reference.
func (r *SQLiteRepository) CurrentPeriodCost(ctx context.Context, projectID, costCodeID string, period *core.PeriodRef) (core.Amount, error) {
	return core.Amount{}, nil
}

// UnpostedInternalChangeCost reports zero: pending change orders are not
// tracked in this schema yet.
func (r *SQLiteRepository) UnpostedInternalChangeCost(ctx context.Context, projectID, costCodeID string) (core.Amount, error) {
	return core.Amount{}, nil
}

// UnpostedExternalChangeCost reports zero: pending change orders are not
// tracked in this schema yet.
func (r *SQLiteRepository) UnpostedExternalChangeCost(ctx context.Context, projectID, costCodeID string) (core.Amount, error) {
	return core.Amount{}, nil
}

// UnpostedChangeRevenueBudget reports zero: pending change orders are not
// tracked in this schema yet.
func (r *SQLiteRepository) UnpostedChangeRevenueBudget(ctx context.Context, projectID, costCodeID string) (core.Amount, error) {
	return core.Amount{}, nil
}

// AdvanceSpecialChangeOrders reports zero: SCO tracking has no table here yet.
func (r *SQLiteRepository) AdvanceSpecialChangeOrders(ctx context.Context, projectID, costCodeID string) (core.Amount, error) {
	return core.Amount{}, nil
}

// SpecialChangeOrdersOnUnposted reports zero: SCO tracking has no table here yet.
func (r *SQLiteRepository) SpecialChangeOrdersOnUnposted(ctx context.Context, projectID, costCodeID string) (core.Amount, error) {
	return core.Amount{}, nil
}

// ListCostCodes returns the deduplicated union of codes from contract
// estimates and purchase orders, ordered by code ascending. A code known
// only to purchase orders appears with an empty description; when both
// sources know a code, the estimate's description wins.
func (r *SQLiteRepository) ListCostCodes(ctx context.Context, projectID string) ([]core.CostCode, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT code, MAX(description) AS description FROM (
			SELECT cost_code AS code, COALESCE(material_category, '') AS description
			FROM contract_estimates WHERE project_id = ?
			UNION
			SELECT cost_code AS code, '' AS description
			FROM purchase_orders WHERE project_id = ?
		)
		GROUP BY code
		ORDER BY code`, projectID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list cost codes: %w", err)
	}
	defer rows.Close()

	var codes []core.CostCode
	for rows.Next() {
		var cc core.CostCode
		if err := rows.Scan(&cc.Code, &cc.Description); err != nil {
			return nil, fmt.Errorf("scan cost code: %w", err)
		}
		cc.ID = cc.Code
		codes = append(codes, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cost codes: %w", err)
	}
	return codes, nil
}
