package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plan4you/plan-advisor/internal/types"
)

func TestFallback_TwoPlansFirstSeenOrder(t *testing.T) {
	profile := types.UserProfile{State: "fl"}
	plans := []types.Plan{{PlanID: "P1"}, {PlanID: "P2"}, {PlanID: "P3"}}

	rec := Fallback(profile, plans)

	require.NoError(t, rec.Validate())
	assert.Equal(t, "P1", rec.BestPlanID)
	require.Len(t, rec.RankedPlans, 2)
	assert.True(t, rec.RankedPlans[0].IsBestPlan)
	assert.False(t, rec.RankedPlans[1].IsBestPlan)
	assert.Equal(t, "P2", rec.RankedPlans[1].PlanID)
	assert.Contains(t, rec.RankedPlans[0].Justification, "FL")
}

func TestFallback_SinglePlan(t *testing.T) {
	rec := Fallback(types.UserProfile{State: "TX"}, []types.Plan{{PlanID: "ONLY"}})

	require.NoError(t, rec.Validate())
	assert.Equal(t, "ONLY", rec.BestPlanID)
	assert.Len(t, rec.RankedPlans, 1)
}
