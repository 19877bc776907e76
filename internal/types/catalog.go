package types

import "strings"

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Coverage is the coverage status of a single benefit line.
type Coverage string

// Coverage states as they appear in the benefits PUF, plus an explicit
// sentinel for rows where the column is missing or unrecognized.
const (
	CoverageCovered    Coverage = "Covered"
	CoverageNotCovered Coverage = "Not Covered"
	CoverageUnknown    Coverage = "Unknown"
)

// ParseCoverage maps a raw catalog value onto a Coverage state.
// Unrecognized or empty values become CoverageUnknown rather than an error;
// malformed rows flow through the pipeline and simply score nothing.
func ParseCoverage(raw string) Coverage {
	switch normalizeToken(raw) {
	case "covered":
		return CoverageCovered
	case "not covered":
		return CoverageNotCovered
	default:
		return CoverageUnknown
	}
}

// BenefitRecord is one row of the benefits-and-cost-sharing catalog.
// Optional cost-sharing and limit fields are empty strings when absent.
type BenefitRecord struct {
	PlanID           string   `json:"planId"`
	IssuerID         string   `json:"issuerId"`
	StateCode        string   `json:"stateCode"`
	BenefitName      string   `json:"benefitName"`
	IsCovered        Coverage `json:"isCovered"`
	CopayTier1       string   `json:"copayInnTier1"`
	CoinsuranceTier1 string   `json:"coinsInnTier1"`
	QuantLimitOnSvc  string   `json:"quantLimitOnSvc,omitempty"`
	LimitQty         string   `json:"limitQty,omitempty"`
	LimitUnit        string   `json:"limitUnit,omitempty"`
}

// EligibilityResult is the outcome of the Medicaid/CHIP classification.
// At most one of the two flags is true for any evaluation.
type EligibilityResult struct {
	MedicaidEligible bool `json:"isMedicaidEligible"`
	CHIPEligible     bool `json:"isChipEligible"`

	// Derived household figures, carried for reporting.
	HouseholdSize int     `json:"householdSize"`
	FPLPercent    float64 `json:"fplPercent"`
}

// PubliclyAssisted reports whether either public-assistance path applies.
// Assisted users skip the affordability gate in the candidate filter.
func (e EligibilityResult) PubliclyAssisted() bool {
	return e.MedicaidEligible || e.CHIPEligible
}
