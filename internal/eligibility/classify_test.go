package eligibility

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plan4you/plan-advisor/internal/config"
	"github.com/plan4you/plan-advisor/internal/types"
)

var testPoverty = config.PovertyConfig{
	BaseAmount:         14580,
	PerPersonIncrement: 5140,
}

var floridaThresholds = &Thresholds{
	State:        "FL",
	Ages0To1:     "206%",
	Ages1To5:     "140%",
	Ages6To18:    "133%",
	SeparateCHIP: "210%",
}

func TestClassify_MedicaidInfantBand(t *testing.T) {
	c := NewClassifier(testPoverty, nil)

	// Household of 1, income 20000 -> 137.2% FPL, under the 206% infant cutoff.
	profile := types.UserProfile{Age: 1, Income: 20000}
	result, err := c.Classify(profile, floridaThresholds)

	require.NoError(t, err)
	assert.True(t, result.MedicaidEligible)
	assert.False(t, result.CHIPEligible)
	assert.Equal(t, 1, result.HouseholdSize)
	assert.InDelta(t, 137.2, result.FPLPercent, 0.001)
}

func TestClassify_CHIPWhenMedicaidBandMisses(t *testing.T) {
	c := NewClassifier(testPoverty, nil)

	// 160% FPL: over the 133% ages-6-18 cutoff, under the 210% CHIP cutoff.
	profile := types.UserProfile{Age: 10, Income: 23328}
	result, err := c.Classify(profile, floridaThresholds)

	require.NoError(t, err)
	assert.False(t, result.MedicaidEligible)
	assert.True(t, result.CHIPEligible)
}

func TestClassify_NeverBothFlags(t *testing.T) {
	c := NewClassifier(testPoverty, nil)

	for age := 0; age <= 25; age++ {
		for _, income := range []float64{0, 5000, 14580, 20000, 30640, 50000, 120000} {
			result, err := c.Classify(types.UserProfile{Age: age, Income: income}, floridaThresholds)
			require.NoError(t, err)
			assert.False(t, result.MedicaidEligible && result.CHIPEligible,
				"age %d income %.0f produced both flags", age, income)
		}
	}
}

func TestClassify_AdultsNeverEligible(t *testing.T) {
	c := NewClassifier(testPoverty, nil)

	result, err := c.Classify(types.UserProfile{Age: 34, Income: 0}, floridaThresholds)

	require.NoError(t, err)
	assert.False(t, result.MedicaidEligible)
	assert.False(t, result.CHIPEligible)
}

func TestClassify_HouseholdSizeRaisesPovertyLine(t *testing.T) {
	c := NewClassifier(testPoverty, nil)

	// Same income, bigger household: the FPL percentage drops.
	single, err := c.Classify(types.UserProfile{Age: 10, Income: 30000}, floridaThresholds)
	require.NoError(t, err)
	family, err := c.Classify(types.UserProfile{Age: 10, Income: 30000, Dependents: 3}, floridaThresholds)
	require.NoError(t, err)

	assert.Equal(t, 4, family.HouseholdSize)
	assert.Less(t, family.FPLPercent, single.FPLPercent)
}

func TestClassify_MissingStateThresholds(t *testing.T) {
	c := NewClassifier(testPoverty, nil)

	result, err := c.Classify(types.UserProfile{Age: 3, Income: 1000}, nil)

	require.True(t, errors.Is(err, ErrStateNotFound))
	assert.False(t, result.MedicaidEligible)
	assert.False(t, result.CHIPEligible)
	// Household math is still computed for reporting.
	assert.Equal(t, 1, result.HouseholdSize)
	assert.Greater(t, result.FPLPercent, 0.0)
}

func TestClassify_UnparseableBandFallsThrough(t *testing.T) {
	c := NewClassifier(testPoverty, nil)

	thresholds := &Thresholds{
		State:        "XX",
		Ages6To18:    "N/A",
		SeparateCHIP: "210%",
	}

	// The unusable 6-18 band yields no entitlement there, but the CHIP band
	// is still evaluated.
	result, err := c.Classify(types.UserProfile{Age: 10, Income: 20000}, thresholds)

	require.NoError(t, err)
	assert.False(t, result.MedicaidEligible)
	assert.True(t, result.CHIPEligible)
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"206%", 206, false},
		{" 140 % ", 140, false},
		{"133", 133, false},
		{"0.00%", 0, false},
		{"", 0, true},
		{"N/A", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePercent(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
