package eligibility

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const thresholdsCSVSample = `State,Medicaid Ages 0-1,Medicaid Ages 1-5,Medicaid Ages 6-18,Separate CHIP
FL,206%,140%,133%,210%
TX,198%,144%,133%,201%
WY,205%,154%,154%,
`

func TestParseThresholdsCSV(t *testing.T) {
	rows, err := ParseThresholdsCSV(strings.NewReader(thresholdsCSVSample))

	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "FL", rows[0].State)
	assert.Equal(t, "206%", rows[0].Ages0To1)
	assert.Equal(t, "140%", rows[0].Ages1To5)
	assert.Equal(t, "133%", rows[0].Ages6To18)
	assert.Equal(t, "210%", rows[0].SeparateCHIP)

	// A state without a separate CHIP program keeps an empty cell.
	assert.Empty(t, rows[2].SeparateCHIP)
}

func TestParseThresholdsCSV_MissingStateColumn(t *testing.T) {
	csv := "Medicaid Ages 0-1,Separate CHIP\n206%,210%\n"

	_, err := ParseThresholdsCSV(strings.NewReader(csv))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "State")
}
