package ranking

import (
	"sort"

	"github.com/plan4you/plan-advisor/internal/types"
)

// TopPlanLimit caps how many scored plans move on to the advisory stage.
// It is a hard resource bound that keeps LLM prompt sizes tractable.
const TopPlanLimit = 10

// Score sums the per-line points for every plan in the candidate set and
// returns the plans ordered by descending score. Ties keep the plans'
// first-seen order from the candidate records (stable sort).
func Score(records []types.BenefitRecord) []types.ScoredPlan {
	totals := make(map[string]int)
	var order []string

	for _, rec := range records {
		if _, seen := totals[rec.PlanID]; !seen {
			order = append(order, rec.PlanID)
		}
		totals[rec.PlanID] += ScoreRecord(rec)
	}

	scored := make([]types.ScoredPlan, 0, len(order))
	for _, planID := range order {
		scored = append(scored, types.ScoredPlan{PlanID: planID, Score: totals[planID]})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// Top returns at most limit plans from an already-ordered scored list.
func Top(scored []types.ScoredPlan, limit int) []types.ScoredPlan {
	if limit < 0 {
		limit = 0
	}
	if len(scored) <= limit {
		return scored
	}
	return scored[:limit]
}
