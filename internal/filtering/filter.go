package filtering

import (
	"strings"

	"github.com/plan4you/plan-advisor/internal/types"
)

// Candidates filters normalized records down to those relevant for one
// request.
//
// Records must match the profile's state (case-insensitive). When the
// profile requires dental coverage only dental benefit lines survive; when
// it does not, dental lines are neither required nor excluded. Applicants
// outside the Medicaid/CHIP paths additionally pass through an
// affordability gate: the line must be covered and carry at least one
// cost-sharing figure. Publicly assisted applicants skip that gate since
// their coverage path differs.
func Candidates(records []types.BenefitRecord, profile types.UserProfile, elig types.EligibilityResult) []types.BenefitRecord {
	state := profile.NormalizedState()
	out := make([]types.BenefitRecord, 0, len(records))

	for _, rec := range records {
		if !strings.EqualFold(rec.StateCode, state) {
			continue
		}
		if profile.DentalRequired && !IsDentalBenefit(rec.BenefitName) {
			continue
		}
		if !elig.PubliclyAssisted() {
			if rec.IsCovered != types.CoverageCovered {
				continue
			}
			if rec.CopayTier1 == "" && rec.CoinsuranceTier1 == "" {
				continue
			}
		}
		out = append(out, rec)
	}

	return out
}
