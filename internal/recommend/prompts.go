package recommend

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plan4you/plan-advisor/internal/types"
)

// serializePlans renders the plan list as indented JSON for prompt embedding.
func serializePlans(plans []types.Plan) (string, error) {
	data, err := json.MarshalIndent(plans, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize plans: %w", err)
	}
	return string(data), nil
}

func writeProfile(sb *strings.Builder, profile types.UserProfile) {
	dental := "No"
	if profile.DentalRequired {
		dental = "Yes"
	}
	sb.WriteString("User Profile:\n")
	fmt.Fprintf(sb, "- Name: %s\n", profile.Name)
	fmt.Fprintf(sb, "- Age: %d\n", profile.Age)
	fmt.Fprintf(sb, "- Annual Household Income: $%.2f\n", profile.Income)
	fmt.Fprintf(sb, "- Number of Dependents: %d\n", profile.Dependents)
	fmt.Fprintf(sb, "- State: %s\n", profile.NormalizedState())
	fmt.Fprintf(sb, "- Requires Dental Coverage: %s\n", dental)
}

// BuildCoverageAdvisoryPrompt asks for coverage-oriented recommendations
// over the candidate plan list, each referenced by its plan identifier.
func BuildCoverageAdvisoryPrompt(profile types.UserProfile, plansJSON string) string {
	var sb strings.Builder

	sb.WriteString("You are a helpful health insurance agent.\n\n")
	writeProfile(&sb, profile)
	sb.WriteString("\nAvailable plans (already filtered for the user's state and dental preference):\n")
	sb.WriteString(plansJSON)
	sb.WriteString("\n\nRecommend the top 5-10 plans for this user. ")
	sb.WriteString("For each recommendation, concisely explain its key features, benefits, and drawbacks, ")
	sb.WriteString("and why it suits the user's needs. Always reference plans by their planId. ")
	sb.WriteString("Write at most 2-3 paragraphs.\n")

	return sb.String()
}

// BuildCostAdvisoryPrompt asks for a cost-effectiveness analysis of the same
// plan list against the user's income.
func BuildCostAdvisoryPrompt(profile types.UserProfile, plansJSON string) string {
	var sb strings.Builder

	sb.WriteString("You are a financial advisor.\n\n")
	fmt.Fprintf(&sb, "The user's annual household income is $%.2f.\n\n", profile.Income)
	sb.WriteString("Analyze the cost-effectiveness and long-term financial implications of the following plans:\n")
	sb.WriteString(plansJSON)
	sb.WriteString("\n\nExplain the value proposition of each plan and why one might be preferred over another, ")
	sb.WriteString("considering the user's income. Always reference plans by their planId. ")
	sb.WriteString("Write at most 2-3 paragraphs.\n")

	return sb.String()
}

// BuildSynthesisPrompt embeds the profile, both advisory analyses, and the
// canonical plan list, and demands a strict JSON object back.
func BuildSynthesisPrompt(profile types.UserProfile, plansJSON, coverageAnalysis, costAnalysis string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert health insurance and benefits advisor making a final decision.\n\n")
	writeProfile(&sb, profile)

	sb.WriteString("\nCanonical plan list (authoritative planId values):\n")
	sb.WriteString(plansJSON)

	sb.WriteString("\n\nInsurance agent analysis:\n")
	sb.WriteString(coverageAnalysis)
	sb.WriteString("\n\nFinancial analysis:\n")
	sb.WriteString(costAnalysis)

	sb.WriteString("\n\nYour task:\n")
	sb.WriteString("1. Identify the single best plan for the user, weighing coverage and affordability.\n")
	sb.WriteString("2. Rank the remaining plans from 2nd best to least suitable on the same criteria.\n")
	sb.WriteString("3. For each ranked plan, write a concise justification (3-5 sentences) grounded in the two analyses above.\n\n")

	sb.WriteString("Return your output strictly as a single valid JSON object with this structure, and nothing else. ")
	sb.WriteString("No introductory text, no explanations outside the JSON, no markdown code fences:\n\n")
	sb.WriteString(`{
  "best_plan_id": "...",
  "ranked_plans": [
    {
      "planId": "...",
      "rank": 1,
      "isBestPlan": true,
      "justification": "..."
    },
    {
      "planId": "...",
      "rank": 2,
      "isBestPlan": false,
      "justification": "..."
    }
  ]
}`)
	sb.WriteString("\n\nRules:\n")
	sb.WriteString("- planId values must exactly match the canonical plan list.\n")
	sb.WriteString("- Exactly one entry has isBestPlan true, and its planId must equal best_plan_id.\n")
	sb.WriteString("- isBestPlan must be a JSON boolean, not a string.\n")
	sb.WriteString("- rank values are contiguous integers starting at 1 in list order.\n")

	return sb.String()
}
