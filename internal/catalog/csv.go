package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/plan4you/plan-advisor/internal/types"
)

// Column names in the benefits-and-cost-sharing PUF.
const (
	colPlanID      = "StandardComponentId"
	colIssuerID    = "IssuerId"
	colStateCode   = "StateCode"
	colBenefitName = "BenefitName"
	colIsCovered   = "IsCovered"
	colCopay       = "CopayInnTier1"
	colCoinsurance = "CoinsInnTier1"
	colQuantLimit  = "QuantLimitOnSvc"
	colLimitQty    = "LimitQty"
	colLimitUnit   = "LimitUnit"
)

// ParseBenefitsCSV reads benefit records from the CMS benefits-and-cost-sharing
// PUF. Columns are located by header name, so column order and extra columns
// do not matter. Rows shorter than the header are skipped; rows with missing
// individual fields pass through with empty values and are repaired by
// Normalize.
func ParseBenefitsCSV(r io.Reader) ([]types.BenefitRecord, error) {
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

	for _, required := range []string{colPlanID, colStateCode, colBenefitName} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("benefits CSV is missing required column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []types.BenefitRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		records = append(records, types.BenefitRecord{
			PlanID:           field(row, colPlanID),
			IssuerID:         field(row, colIssuerID),
			StateCode:        field(row, colStateCode),
			BenefitName:      field(row, colBenefitName),
			IsCovered:        types.ParseCoverage(field(row, colIsCovered)),
			CopayTier1:       field(row, colCopay),
			CoinsuranceTier1: field(row, colCoinsurance),
			QuantLimitOnSvc:  field(row, colQuantLimit),
			LimitQty:         field(row, colLimitQty),
			LimitUnit:        field(row, colLimitUnit),
		})
	}

	return records, nil
}
