package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/plan4you/plan-advisor/internal/eligibility"
)

// GetEligibilityLevels returns the threshold row for a state, or nil when
// the state has no row. Absence is not an error; the classifier degrades to
// a no-entitlement result.
func (db *DB) GetEligibilityLevels(ctx context.Context, state string) (*eligibility.Thresholds, error) {
	var th eligibility.Thresholds
	err := db.pool.QueryRow(ctx,
		`SELECT state, medicaid_ages_0_1, medicaid_ages_1_5, medicaid_ages_6_18, separate_chip
		 FROM eligibility_levels WHERE UPPER(state) = $1`,
		strings.ToUpper(strings.TrimSpace(state)),
	).Scan(&th.State, &th.Ages0To1, &th.Ages1To5, &th.Ages6To18, &th.SeparateCHIP)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get eligibility levels: %w", err)
	}
	return &th, nil
}

// ListEligibilityLevels returns every state's threshold row.
func (db *DB) ListEligibilityLevels(ctx context.Context) ([]eligibility.Thresholds, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT state, medicaid_ages_0_1, medicaid_ages_1_5, medicaid_ages_6_18, separate_chip
		 FROM eligibility_levels ORDER BY state`)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligibility levels: %w", err)
	}
	defer rows.Close()

	var levels []eligibility.Thresholds
	for rows.Next() {
		var th eligibility.Thresholds
		if err := rows.Scan(&th.State, &th.Ages0To1, &th.Ages1To5, &th.Ages6To18, &th.SeparateCHIP); err != nil {
			return nil, fmt.Errorf("failed to scan eligibility levels: %w", err)
		}
		levels = append(levels, th)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read eligibility levels: %w", err)
	}

	return levels, nil
}

// UpsertEligibilityLevels replaces the threshold rows for the given states.
func (db *DB) UpsertEligibilityLevels(ctx context.Context, levels []eligibility.Thresholds) error {
	batch := &pgx.Batch{}
	for _, th := range levels {
		batch.Queue(
			`INSERT INTO eligibility_levels (state, medicaid_ages_0_1, medicaid_ages_1_5, medicaid_ages_6_18, separate_chip)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (state) DO UPDATE SET
			   medicaid_ages_0_1 = $2, medicaid_ages_1_5 = $3, medicaid_ages_6_18 = $4, separate_chip = $5`,
			th.State, th.Ages0To1, th.Ages1To5, th.Ages6To18, th.SeparateCHIP,
		)
	}

	results := db.pool.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for range levels {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert eligibility levels: %w", err)
		}
	}
	return nil
}
