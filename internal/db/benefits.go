package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/plan4you/plan-advisor/internal/types"
)

const benefitColumns = `plan_id, issuer_id, state_code, benefit_name, is_covered,
	copay_inn_tier1, coins_inn_tier1, quant_limit_on_svc, limit_qty, limit_unit`

// FindBenefitsByState returns every catalog row for a state, in insertion
// order. A transient connection error is retried once before surfacing.
func (db *DB) FindBenefitsByState(ctx context.Context, state string) ([]types.BenefitRecord, error) {
	return db.queryBenefits(ctx, state, 0)
}

// ListBenefits returns up to limit catalog rows for a state; limit <= 0
// means no cap.
func (db *DB) ListBenefits(ctx context.Context, state string, limit int) ([]types.BenefitRecord, error) {
	return db.queryBenefits(ctx, state, limit)
}

func (db *DB) queryBenefits(ctx context.Context, state string, limit int) ([]types.BenefitRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM benefit_records WHERE state_code = $1 ORDER BY id`, benefitColumns)
	args := []any{strings.ToUpper(strings.TrimSpace(state))}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil && pgconn.SafeToRetry(err) {
		rows, err = db.pool.Query(ctx, query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query benefit records: %w", err)
	}
	defer rows.Close()

	var records []types.BenefitRecord
	for rows.Next() {
		var rec types.BenefitRecord
		var covered string
		if err := rows.Scan(
			&rec.PlanID, &rec.IssuerID, &rec.StateCode, &rec.BenefitName, &covered,
			&rec.CopayTier1, &rec.CoinsuranceTier1, &rec.QuantLimitOnSvc, &rec.LimitQty, &rec.LimitUnit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan benefit record: %w", err)
		}
		rec.IsCovered = types.ParseCoverage(covered)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read benefit records: %w", err)
	}

	return records, nil
}

// BulkInsertBenefits loads catalog rows with COPY and returns the row count.
func (db *DB) BulkInsertBenefits(ctx context.Context, records []types.BenefitRecord) (int64, error) {
	columns := []string{
		"plan_id", "issuer_id", "state_code", "benefit_name", "is_covered",
		"copay_inn_tier1", "coins_inn_tier1", "quant_limit_on_svc", "limit_qty", "limit_unit",
	}

	count, err := db.pool.CopyFrom(ctx,
		pgx.Identifier{"benefit_records"},
		columns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{
				rec.PlanID, rec.IssuerID, rec.StateCode, rec.BenefitName, string(rec.IsCovered),
				rec.CopayTier1, rec.CoinsuranceTier1, rec.QuantLimitOnSvc, rec.LimitQty, rec.LimitUnit,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert benefit records: %w", err)
	}
	return count, nil
}
