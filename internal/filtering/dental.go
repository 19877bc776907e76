// Package filtering narrows the normalized catalog down to the candidate
// records for one request.
package filtering

// dentalBenefitNames is the fixed set of benefit names considered
// dental-related in the benefits PUF.
var dentalBenefitNames = map[string]struct{}{
	"Routine Dental Services (Adult)": {},
	"Dental Check-Up for Children":    {},
	"Basic Dental Care - Child":       {},
	"Orthodontia - Child":             {},
	"Major Dental Care - Child":       {},
	"Basic Dental Care - Adult":       {},
	"Orthodontia - Adult":             {},
	"Major Dental Care - Adult":       {},
	"Accidental Dental":               {},
}

// IsDentalBenefit reports whether a benefit name belongs to the dental set.
func IsDentalBenefit(name string) bool {
	_, ok := dentalBenefitNames[name]
	return ok
}
