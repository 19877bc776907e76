package recommend

import (
	"fmt"

	"github.com/plan4you/plan-advisor/internal/types"
)

// fallbackPlanLimit bounds how many plans the deterministic fallback ranks.
const fallbackPlanLimit = 2

// Fallback builds a deterministic RankedRecommendation without any generator
// involvement: up to two distinct plan identifiers in first-encountered
// order, the first marked best, with template justifications referencing the
// user's state. It guarantees a well-formed result shape even under total
// external-service failure.
func Fallback(profile types.UserProfile, plans []types.Plan) types.RankedRecommendation {
	var rec types.RankedRecommendation

	for _, plan := range plans {
		if len(rec.RankedPlans) == fallbackPlanLimit {
			break
		}
		rank := len(rec.RankedPlans) + 1
		best := rank == 1
		if best {
			rec.BestPlanID = plan.PlanID
		}
		rec.RankedPlans = append(rec.RankedPlans, types.RankedPlan{
			PlanID:     plan.PlanID,
			Rank:       rank,
			IsBestPlan: best,
			Justification: fmt.Sprintf(
				"Plan %s matches your filters in %s and scored well on coverage and cost sharing. "+
					"An AI-generated comparison was unavailable for this request, so this ranking reflects the catalog data alone.",
				plan.PlanID, profile.NormalizedState()),
		})
	}

	return rec
}
