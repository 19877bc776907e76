package eligibility

import (
	"math"

	"go.uber.org/zap"

	"github.com/plan4you/plan-advisor/internal/config"
	"github.com/plan4you/plan-advisor/internal/types"
)

// Classifier evaluates Medicaid/CHIP eligibility for user profiles.
type Classifier struct {
	poverty config.PovertyConfig
	logger  *zap.Logger
}

// NewClassifier creates a Classifier with the given poverty-guideline
// parameters. A nil logger defaults to a no-op logger.
func NewClassifier(poverty config.PovertyConfig, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{poverty: poverty, logger: logger}
}

// Classify computes the applicant's income as a percentage of the poverty
// line and evaluates the state's age-banded thresholds in strict order:
// Medicaid ages 0-1, 1-5, 6-18, then the separate CHIP cutoff for anyone 18
// or under. The first satisfied band wins, so at most one of the two flags
// is ever set.
//
// A nil thresholds row returns a neither-eligible result together with
// ErrStateNotFound; callers treat that as a degraded result, not a failure.
func (c *Classifier) Classify(profile types.UserProfile, thresholds *Thresholds) (types.EligibilityResult, error) {
	householdSize := profile.HouseholdSize()
	povertyLine := c.poverty.PovertyLine(householdSize)
	fplPercent := round1(profile.Income / povertyLine * 100)

	result := types.EligibilityResult{
		HouseholdSize: householdSize,
		FPLPercent:    fplPercent,
	}

	if thresholds == nil {
		return result, ErrStateNotFound
	}

	switch {
	case profile.Age <= 1 && c.withinBand(thresholds.Ages0To1, fplPercent, "medicaid ages 0-1"):
		result.MedicaidEligible = true
	case profile.Age > 1 && profile.Age <= 5 && c.withinBand(thresholds.Ages1To5, fplPercent, "medicaid ages 1-5"):
		result.MedicaidEligible = true
	case profile.Age > 5 && profile.Age <= 18 && c.withinBand(thresholds.Ages6To18, fplPercent, "medicaid ages 6-18"):
		result.MedicaidEligible = true
	case profile.Age <= 18 && c.withinBand(thresholds.SeparateCHIP, fplPercent, "separate chip"):
		result.CHIPEligible = true
	}

	return result, nil
}

// withinBand reports whether fplPercent falls at or under the band's cutoff.
// An unparseable cutoff means no entitlement at this band; it is logged and
// classification continues with the remaining bands.
func (c *Classifier) withinBand(rawCutoff string, fplPercent float64, band string) bool {
	cutoff, err := parsePercent(rawCutoff)
	if err != nil {
		c.logger.Warn("skipping eligibility band with unparseable threshold",
			zap.String("band", band),
			zap.String("value", rawCutoff),
			zap.Error(err))
		return false
	}
	return fplPercent <= cutoff
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
