package eligibility

import "errors"

// ErrStateNotFound indicates the applicant's state has no row in the
// eligibility-levels reference data. Callers proceed with no entitlement
// assumption; this is a degraded result, not a fatal error.
var ErrStateNotFound = errors.New("eligibility thresholds not found for state")
