// Package eligibility classifies applicants against per-state Medicaid and
// CHIP income thresholds.
package eligibility

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Thresholds is one state's row of the Medicaid/CHIP eligibility-levels
// dataset. Values are kept as the raw percentage strings from the source
// (e.g. "213%"), parsed lazily per band so one malformed cell does not
// poison the whole row.
type Thresholds struct {
	State        string `json:"state"`
	Ages0To1     string `json:"medicaidAges0To1"`
	Ages1To5     string `json:"medicaidAges1To5"`
	Ages6To18    string `json:"medicaidAges6To18"`
	SeparateCHIP string `json:"separateChip"`
}

// Column names in the Medicaid/CHIP eligibility-levels CSV.
const (
	colState     = "State"
	colAges0To1  = "Medicaid Ages 0-1"
	colAges1To5  = "Medicaid Ages 1-5"
	colAges6To18 = "Medicaid Ages 6-18"
	colCHIP      = "Separate CHIP"
)

// ParseThresholdsCSV reads the eligibility-levels dataset, keyed by header
// name so column order does not matter.
func ParseThresholdsCSV(r io.Reader) ([]Thresholds, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index[colState]; !ok {
		return nil, fmt.Errorf("eligibility CSV is missing required column %q", colState)
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rows []Thresholds
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		rows = append(rows, Thresholds{
			State:        field(row, colState),
			Ages0To1:     field(row, colAges0To1),
			Ages1To5:     field(row, colAges1To5),
			Ages6To18:    field(row, colAges6To18),
			SeparateCHIP: field(row, colCHIP),
		})
	}

	return rows, nil
}

// parsePercent converts a threshold cell like "213%" into its numeric value.
func parsePercent(raw string) (float64, error) {
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if cleaned == "" {
		return 0, fmt.Errorf("empty percentage value")
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable percentage %q: %w", raw, err)
	}
	return value, nil
}
