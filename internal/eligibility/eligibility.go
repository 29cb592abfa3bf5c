// Package eligibility holds the club's pure membership rules: age computation,
// minor/major classification, annual fees and the inactivity window. Everything
// here is a pure function of its inputs so the rules stay identical no matter
// which layer applies them.
package eligibility

import "time"

const (
	// MinimumJoinAge is the youngest age at which a club member may be registered.
	MinimumJoinAge = 11

	// AgeOfMajority separates minor from major members for display purposes.
	// The stored minor flag remains authoritative for fees.
	AgeOfMajority = 18

	// InactivityLookbackDays is the minimum membership tenure, in days, before a
	// flagged-inactive member shows up in the inactivity report.
	InactivityLookbackDays = 730

	// MinorAnnualFee and MajorAnnualFee are the fixed yearly membership fees.
	MinorAnnualFee = 100.00
	MajorAnnualFee = 200.00
)

// Age returns the number of whole years elapsed between birthdate and ref,
// decrementing when ref's (month, day) falls before the birthday.
func Age(birthdate, ref time.Time) int {
	years := ref.Year() - birthdate.Year()
	if ref.Month() < birthdate.Month() ||
		(ref.Month() == birthdate.Month() && ref.Day() < birthdate.Day()) {
		years--
	}
	return years
}

// IsMinorAge reports whether an age is below the age of majority.
func IsMinorAge(age int) bool {
	return age < AgeOfMajority
}

// AnnualFee returns the expected yearly fee for a member. It is keyed by the
// stored minor classification only, never recomputed from the birthdate.
func AnnualFee(minor bool) float64 {
	if minor {
		return MinorAnnualFee
	}
	return MajorAnnualFee
}

// Donation returns the overpaid portion of a payment against the expected fee.
// It is a derived reporting value, never stored.
func Donation(paid, fee float64) float64 {
	if d := paid - fee; d > 0 {
		return d
	}
	return 0
}

// InactivityCutoff returns the latest joining date a member may have and still
// satisfy the tenure condition of the inactivity rule at ref. The boundary is
// inclusive: joining exactly InactivityLookbackDays before ref qualifies.
func InactivityCutoff(ref time.Time) time.Time {
	return ref.AddDate(0, 0, -InactivityLookbackDays)
}

// PriorMembershipYear returns the membership year whose payment exempts a
// member from the inactivity report.
func PriorMembershipYear(ref time.Time) int {
	return ref.Year() - 1
}
