package types

import "fmt"

// RankedPlan is one entry of the final ranked list.
type RankedPlan struct {
	PlanID        string `json:"planId"`
	Rank          int    `json:"rank"`
	IsBestPlan    bool   `json:"isBestPlan"`
	Justification string `json:"justification"`
}

// RankedRecommendation is the terminal artifact returned to the caller:
// a designated best plan plus the full ranked list with justifications.
type RankedRecommendation struct {
	BestPlanID  string       `json:"best_plan_id"`
	RankedPlans []RankedPlan `json:"ranked_plans"`
}

// Validate enforces the cross-field invariants of a recommendation:
// exactly one entry marked best, that entry's plan id equal to BestPlanID,
// ranks contiguous starting at 1, and non-empty justifications.
func (r RankedRecommendation) Validate() error {
	if r.BestPlanID == "" {
		return fmt.Errorf("best_plan_id is empty")
	}
	if len(r.RankedPlans) == 0 {
		return fmt.Errorf("ranked_plans is empty")
	}

	bestCount := 0
	bestMatches := false
	for i, p := range r.RankedPlans {
		if p.PlanID == "" {
			return fmt.Errorf("ranked_plans[%d]: planId is empty", i)
		}
		if p.Rank != i+1 {
			return fmt.Errorf("ranked_plans[%d]: rank %d breaks the contiguous 1..n ordering", i, p.Rank)
		}
		if p.Justification == "" {
			return fmt.Errorf("ranked_plans[%d]: justification is empty", i)
		}
		if p.IsBestPlan {
			bestCount++
			if p.PlanID == r.BestPlanID {
				bestMatches = true
			}
		}
	}

	if bestCount != 1 {
		return fmt.Errorf("expected exactly one isBestPlan entry, found %d", bestCount)
	}
	if !bestMatches {
		return fmt.Errorf("best_plan_id %q does not match the isBestPlan entry", r.BestPlanID)
	}
	return nil
}
