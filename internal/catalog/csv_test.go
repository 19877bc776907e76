package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plan4you/plan-advisor/internal/types"
)

const benefitsCSVSample = `BusinessYear,StateCode,IssuerId,StandardComponentId,BenefitName,CopayInnTier1,CoinsInnTier1,IsCovered
2024,FL,11111,11111FL0010001,Primary Care Visit,No Charge,0.00%,Covered
2024,FL,11111,11111FL0010001,Emergency Room Services,$250.00,20.00%,Covered
2024,fl,22222,22222FL0020002,Primary Care Visit,,,Not Covered
`

func TestParseBenefitsCSV(t *testing.T) {
	records, err := ParseBenefitsCSV(strings.NewReader(benefitsCSVSample))

	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "11111FL0010001", records[0].PlanID)
	assert.Equal(t, "11111", records[0].IssuerID)
	assert.Equal(t, "FL", records[0].StateCode)
	assert.Equal(t, "Primary Care Visit", records[0].BenefitName)
	assert.Equal(t, types.CoverageCovered, records[0].IsCovered)
	assert.Equal(t, "No Charge", records[0].CopayTier1)
	assert.Equal(t, "0.00%", records[0].CoinsuranceTier1)

	assert.Equal(t, types.CoverageNotCovered, records[2].IsCovered)
	assert.Empty(t, records[2].CopayTier1)
}

func TestParseBenefitsCSV_MissingRequiredColumn(t *testing.T) {
	csv := "BusinessYear,IssuerId,BenefitName\n2024,11111,Primary Care Visit\n"

	_, err := ParseBenefitsCSV(strings.NewReader(csv))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "StandardComponentId")
}

func TestParseBenefitsCSV_ShortRow(t *testing.T) {
	csv := "StateCode,StandardComponentId,BenefitName,IsCovered\nFL,P1\n"

	records, err := ParseBenefitsCSV(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "P1", records[0].PlanID)
	// Missing coverage column lands on the Unknown sentinel.
	assert.Equal(t, types.CoverageUnknown, records[0].IsCovered)
}
