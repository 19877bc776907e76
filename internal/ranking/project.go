package ranking

import "github.com/plan4you/plan-advisor/internal/types"

// Project groups candidate records into one Plan per distinct plan
// identifier, preserving first-seen benefit-line order within a plan.
func Project(records []types.BenefitRecord) []types.Plan {
	index := make(map[string]int)
	var plans []types.Plan

	for _, rec := range records {
		i, seen := index[rec.PlanID]
		if !seen {
			i = len(plans)
			index[rec.PlanID] = i
			plans = append(plans, types.Plan{PlanID: rec.PlanID})
		}
		plans[i].Benefits = append(plans[i].Benefits, types.BenefitLine{
			BenefitName:      rec.BenefitName,
			IsCovered:        rec.IsCovered,
			CopayTier1:       rec.CopayTier1,
			CoinsuranceTier1: rec.CoinsuranceTier1,
		})
	}

	return plans
}

// ProjectTop projects only the plans present in the scored top list,
// in the scored order. Records for plans outside the list are dropped.
func ProjectTop(records []types.BenefitRecord, top []types.ScoredPlan) []types.Plan {
	keep := make(map[string]int, len(top))
	for i, sp := range top {
		keep[sp.PlanID] = i
	}

	plans := make([]types.Plan, len(top))
	for i, sp := range top {
		plans[i] = types.Plan{PlanID: sp.PlanID}
	}

	for _, rec := range records {
		i, ok := keep[rec.PlanID]
		if !ok {
			continue
		}
		plans[i].Benefits = append(plans[i].Benefits, types.BenefitLine{
			BenefitName:      rec.BenefitName,
			IsCovered:        rec.IsCovered,
			CopayTier1:       rec.CopayTier1,
			CoinsuranceTier1: rec.CoinsuranceTier1,
		})
	}

	return plans
}
