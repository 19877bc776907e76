package types

// BenefitLine is a single benefit entry carried by a projected Plan.
type BenefitLine struct {
	BenefitName      string   `json:"benefitName"`
	IsCovered        Coverage `json:"isCovered"`
	CopayTier1       string   `json:"copayInnTier1"`
	CoinsuranceTier1 string   `json:"coinsInnTier1"`
}

// Plan groups the surviving benefit lines of one plan identifier.
// Plans are projected fresh per request and never persisted.
type Plan struct {
	PlanID   string        `json:"planId"`
	Benefits []BenefitLine `json:"benefits"`
}

// ScoredPlan pairs a plan identifier with its derived affordability/coverage
// score. The score is a pure function of the plan's benefit lines.
type ScoredPlan struct {
	PlanID string `json:"planId"`
	Score  int    `json:"score"`
}
