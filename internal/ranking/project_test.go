package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plan4you/plan-advisor/internal/types"
)

func TestProject_GroupsByPlanPreservingOrder(t *testing.T) {
	records := []types.BenefitRecord{
		coveredLine("P1", "Primary Care Visit", "No Charge", "0.00%"),
		coveredLine("P2", "Primary Care Visit", "$20.00", ""),
		coveredLine("P1", "Emergency Room Services", "$250.00", "20.00%"),
	}

	plans := Project(records)

	require.Len(t, plans, 2)
	assert.Equal(t, "P1", plans[0].PlanID)
	require.Len(t, plans[0].Benefits, 2)
	assert.Equal(t, "Primary Care Visit", plans[0].Benefits[0].BenefitName)
	assert.Equal(t, "Emergency Room Services", plans[0].Benefits[1].BenefitName)
	assert.Equal(t, "P2", plans[1].PlanID)
}

func TestProjectTop_KeepsOnlyScoredPlansInScoredOrder(t *testing.T) {
	records := []types.BenefitRecord{
		coveredLine("LOW", "Primary Care Visit", "$20.00", ""),
		coveredLine("HIGH", "Primary Care Visit", "No Charge", "0.00%"),
		coveredLine("DROPPED", "Primary Care Visit", "", "20.00%"),
	}
	top := []types.ScoredPlan{{PlanID: "HIGH", Score: 6}, {PlanID: "LOW", Score: 3}}

	plans := ProjectTop(records, top)

	require.Len(t, plans, 2)
	assert.Equal(t, "HIGH", plans[0].PlanID)
	assert.Equal(t, "LOW", plans[1].PlanID)
	require.Len(t, plans[0].Benefits, 1)
	assert.Equal(t, types.CoverageCovered, plans[0].Benefits[0].IsCovered)
}

func TestProject_Empty(t *testing.T) {
	assert.Empty(t, Project(nil))
}
