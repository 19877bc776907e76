package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plan4you/plan-advisor/internal/types"
)

func covered(planID, state, benefit, copay, coins string) types.BenefitRecord {
	return types.BenefitRecord{
		PlanID:           planID,
		StateCode:        state,
		BenefitName:      benefit,
		IsCovered:        types.CoverageCovered,
		CopayTier1:       copay,
		CoinsuranceTier1: coins,
	}
}

func TestCandidates_StateMatchCaseInsensitive(t *testing.T) {
	records := []types.BenefitRecord{
		covered("P1", "FL", "Primary Care Visit", "No Charge", ""),
		covered("P2", "GA", "Primary Care Visit", "No Charge", ""),
	}
	profile := types.UserProfile{State: "fl"}

	got := Candidates(records, profile, types.EligibilityResult{})

	require.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].PlanID)
}

func TestCandidates_DentalRequiredKeepsOnlyDental(t *testing.T) {
	records := []types.BenefitRecord{
		covered("P1", "FL", "Routine Dental Services (Adult)", "$20.00", ""),
		covered("P1", "FL", "Primary Care Visit", "No Charge", ""),
		covered("P2", "FL", "Orthodontia - Child", "", "20.00%"),
	}
	profile := types.UserProfile{State: "FL", DentalRequired: true}

	got := Candidates(records, profile, types.EligibilityResult{})

	require.Len(t, got, 2)
	for _, rec := range got {
		assert.True(t, IsDentalBenefit(rec.BenefitName))
	}
}

func TestCandidates_DentalNotRequiredKeepsEverything(t *testing.T) {
	// "no" means don't require dental, not forbid it: dental and non-dental
	// lines both pass.
	records := []types.BenefitRecord{
		covered("P1", "FL", "Routine Dental Services (Adult)", "$20.00", ""),
		covered("P1", "FL", "Primary Care Visit", "No Charge", ""),
	}
	profile := types.UserProfile{State: "FL", DentalRequired: false}

	got := Candidates(records, profile, types.EligibilityResult{})

	assert.Len(t, got, 2)
}

func TestCandidates_AffordabilityGateForUnassisted(t *testing.T) {
	records := []types.BenefitRecord{
		covered("P1", "FL", "Primary Care Visit", "No Charge", ""),
		// Covered but no cost-sharing figures at all.
		covered("P2", "FL", "Primary Care Visit", "", ""),
		// Not covered.
		{PlanID: "P3", StateCode: "FL", BenefitName: "Primary Care Visit", IsCovered: types.CoverageNotCovered, CopayTier1: "$10.00"},
		// Unknown coverage.
		{PlanID: "P4", StateCode: "FL", BenefitName: "Primary Care Visit", IsCovered: types.CoverageUnknown, CopayTier1: "$10.00"},
	}
	profile := types.UserProfile{State: "FL"}

	got := Candidates(records, profile, types.EligibilityResult{})

	require.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].PlanID)
}

func TestCandidates_AssistedUsersSkipAffordabilityGate(t *testing.T) {
	records := []types.BenefitRecord{
		covered("P1", "FL", "Primary Care Visit", "", ""),
		{PlanID: "P2", StateCode: "FL", BenefitName: "Primary Care Visit", IsCovered: types.CoverageNotCovered},
	}
	profile := types.UserProfile{State: "FL"}
	elig := types.EligibilityResult{MedicaidEligible: true}

	got := Candidates(records, profile, elig)

	assert.Len(t, got, 2)
}

func TestIsDentalBenefit(t *testing.T) {
	assert.True(t, IsDentalBenefit("Accidental Dental"))
	assert.True(t, IsDentalBenefit("Major Dental Care - Adult"))
	assert.False(t, IsDentalBenefit("Primary Care Visit"))
	assert.False(t, IsDentalBenefit("routine dental services (adult)"))
}
