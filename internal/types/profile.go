// Package types defines the typed records exchanged between pipeline stages.
package types

import "strings"

// UserProfile describes the applicant a recommendation is produced for.
// It is built once from the inbound request and never mutated afterwards.
type UserProfile struct {
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Dependents     int     `json:"dependents"`
	Income         float64 `json:"income"`
	State          string  `json:"state"`
	DentalRequired bool    `json:"dentalRequired"`
}

// HouseholdSize returns the household size used for poverty-line math:
// the applicant plus their dependents.
func (p UserProfile) HouseholdSize() int {
	return 1 + p.Dependents
}

// NormalizedState returns the profile's state code trimmed and upper-cased,
// the form used for catalog and threshold lookups.
func (p UserProfile) NormalizedState() string {
	return strings.ToUpper(strings.TrimSpace(p.State))
}
