package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plan4you/plan-advisor/internal/llm"
	"github.com/plan4you/plan-advisor/internal/types"
)

// fakeClient scripts the generator collaborator call by call.
type fakeClient struct {
	contentResponses []string
	contentErrs      []error
	jsonResponse     string
	jsonErr          error

	contentCalls int
	jsonCalls    int
	prompts      []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	i := f.contentCalls
	f.contentCalls++
	if i < len(f.contentErrs) && f.contentErrs[i] != nil {
		return "", f.contentErrs[i]
	}
	if i < len(f.contentResponses) {
		return f.contentResponses[i], nil
	}
	return "analysis text", nil
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.jsonCalls++
	if f.jsonErr != nil {
		return "", f.jsonErr
	}
	return f.jsonResponse, nil
}

func (f *fakeClient) Close() error { return nil }

var testPlans = []types.Plan{
	{PlanID: "P1", Benefits: []types.BenefitLine{{BenefitName: "Primary Care Visit", IsCovered: types.CoverageCovered, CopayTier1: "No Charge"}}},
	{PlanID: "P2", Benefits: []types.BenefitLine{{BenefitName: "Primary Care Visit", IsCovered: types.CoverageCovered, CopayTier1: "$20.00"}}},
	{PlanID: "P3"},
}

var testProfile = types.UserProfile{Name: "Ana", Age: 34, Income: 12000, State: "FL"}

func TestRecommend_Success(t *testing.T) {
	client := &fakeClient{
		contentResponses: []string{"coverage analysis", "cost analysis"},
		jsonResponse:     validSynthesisJSON,
	}
	o := NewOrchestrator(client, nil, 0)

	result, err := o.Recommend(context.Background(), testProfile, testPlans)

	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.NoError(t, result.AnalysisErr)
	assert.Equal(t, "P1", result.Recommendation.BestPlanID)
	assert.Equal(t, "coverage analysis", result.CoverageAdvisory)
	assert.Equal(t, "cost analysis", result.CostAdvisory)

	// Two advisory calls plus one synthesis call, in sequence.
	assert.Equal(t, 2, client.contentCalls)
	assert.Equal(t, 1, client.jsonCalls)

	// The synthesis prompt embeds both analyses and the canonical plan list.
	synthesisPrompt := client.prompts[2]
	assert.Contains(t, synthesisPrompt, "coverage analysis")
	assert.Contains(t, synthesisPrompt, "cost analysis")
	assert.Contains(t, synthesisPrompt, "P3")
}

func TestRecommend_NoPlans(t *testing.T) {
	o := NewOrchestrator(&fakeClient{}, nil, 0)

	_, err := o.Recommend(context.Background(), testProfile, nil)

	assert.ErrorIs(t, err, ErrNoPlans)
}

func TestRecommend_NonJSONSynthesisFallsBack(t *testing.T) {
	client := &fakeClient{jsonResponse: "Sorry, here is my recommendation in prose."}
	o := NewOrchestrator(client, nil, 0)

	result, err := o.Recommend(context.Background(), testProfile, testPlans)

	require.NoError(t, err)
	assert.True(t, result.Fallback)

	schemaErr, ok := AsSchemaError(result.AnalysisErr)
	require.True(t, ok)
	assert.Equal(t, "Sorry, here is my recommendation in prose.", schemaErr.RawOutput)

	// The fallback is still a well-formed recommendation.
	require.NoError(t, result.Recommendation.Validate())
	assert.Equal(t, "P1", result.Recommendation.BestPlanID)
	assert.Len(t, result.Recommendation.RankedPlans, 2)
}

func TestRecommend_AdvisoryFailureFallsBack(t *testing.T) {
	client := &fakeClient{contentErrs: []error{errors.New("deadline exceeded")}}
	o := NewOrchestrator(client, nil, 0)

	result, err := o.Recommend(context.Background(), testProfile, testPlans)

	require.NoError(t, err)
	assert.True(t, result.Fallback)

	var stageErr *StageError
	require.True(t, errors.As(result.AnalysisErr, &stageErr))
	assert.Equal(t, StageCoverageAdvisory, stageErr.Stage)

	// No later calls are made once a stage fails.
	assert.Equal(t, 1, client.contentCalls)
	assert.Equal(t, 0, client.jsonCalls)
}

func TestRecommend_PolicyBlockIsDistinct(t *testing.T) {
	client := &fakeClient{
		contentResponses: []string{"coverage analysis", "cost analysis"},
		jsonErr:          &llm.BlockedError{Reason: "SAFETY"},
	}
	o := NewOrchestrator(client, nil, 0)

	result, err := o.Recommend(context.Background(), testProfile, testPlans)

	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.True(t, result.PolicyBlocked())
	// Advisory texts survive even when synthesis is blocked.
	assert.Equal(t, "coverage analysis", result.CoverageAdvisory)
}

func TestRecommend_CrossFieldViolationFallsBack(t *testing.T) {
	client := &fakeClient{
		jsonResponse: `{
			"best_plan_id": "P1",
			"ranked_plans": [
				{"planId": "P1", "rank": 1, "isBestPlan": true, "justification": "a"},
				{"planId": "P2", "rank": 2, "isBestPlan": true, "justification": "b"}
			]
		}`,
	}
	o := NewOrchestrator(client, nil, 0)

	result, err := o.Recommend(context.Background(), testProfile, testPlans)

	require.NoError(t, err)
	assert.True(t, result.Fallback)
	_, ok := AsSchemaError(result.AnalysisErr)
	assert.True(t, ok)
}
