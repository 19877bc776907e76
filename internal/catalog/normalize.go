// Package catalog provides parsing and normalization of the benefits
// cost-sharing catalog.
package catalog

import (
	"strings"

	"github.com/plan4you/plan-advisor/internal/types"
)

// Normalize cleans raw benefit records and collapses duplicates.
//
// Identifier and state-code fields are trimmed, state codes are upper-cased,
// and a row missing its coverage status passes through with the explicit
// Unknown sentinel rather than being dropped. De-duplication keeps the first
// occurrence of each (plan id, benefit name) pair, preserving input order.
func Normalize(records []types.BenefitRecord) []types.BenefitRecord {
	seen := make(map[dedupeKey]struct{}, len(records))
	out := make([]types.BenefitRecord, 0, len(records))

	for _, rec := range records {
		rec.PlanID = strings.TrimSpace(rec.PlanID)
		rec.IssuerID = strings.TrimSpace(rec.IssuerID)
		rec.StateCode = strings.ToUpper(strings.TrimSpace(rec.StateCode))
		rec.BenefitName = strings.TrimSpace(rec.BenefitName)
		rec.CopayTier1 = strings.TrimSpace(rec.CopayTier1)
		rec.CoinsuranceTier1 = strings.TrimSpace(rec.CoinsuranceTier1)
		if rec.IsCovered == "" {
			rec.IsCovered = types.CoverageUnknown
		}

		key := dedupeKey{planID: rec.PlanID, benefitName: rec.BenefitName}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}

	return out
}

type dedupeKey struct {
	planID      string
	benefitName string
}
