// Package ranking scores and orders candidate plans and projects them into
// per-plan structures for the recommendation stage.
package ranking

import (
	"strconv"
	"strings"

	"github.com/plan4you/plan-advisor/internal/types"
)

// Per-line point weights. A covered line earns the base points plus copay
// and coinsurance bonuses; an uncovered line contributes nothing regardless
// of its cost-sharing fields.
const (
	coveredPoints     = 2
	zeroCostPoints    = 2
	presentCostPoints = 1
)

// ScoreRecord returns the points one benefit line contributes to its plan.
func ScoreRecord(rec types.BenefitRecord) int {
	if rec.IsCovered != types.CoverageCovered {
		return 0
	}

	score := coveredPoints

	switch {
	case isZeroCopay(rec.CopayTier1):
		score += zeroCostPoints
	case rec.CopayTier1 != "":
		score += presentCostPoints
	}

	switch {
	case isZeroCoinsurance(rec.CoinsuranceTier1):
		score += zeroCostPoints
	case rec.CoinsuranceTier1 != "":
		score += presentCostPoints
	}

	return score
}

// isZeroCopay recognizes the catalog's spellings of a free visit.
func isZeroCopay(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "no charge", "$0.00", "0.00", "$0", "0":
		return true
	}
	return false
}

// isZeroCoinsurance recognizes textual variants of a 0% coinsurance rate,
// including forms like "0.00% Coinsurance after deductible".
func isZeroCoinsurance(value string) bool {
	value = strings.TrimSpace(value)
	idx := strings.Index(value, "%")
	if idx < 0 {
		return false
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(value[:idx]), 64)
	if err != nil {
		return false
	}
	return rate == 0
}
