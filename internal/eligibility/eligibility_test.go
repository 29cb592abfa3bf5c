package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAge(t *testing.T) {
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		birthdate time.Time
		expected  int
	}{
		{
			name:      "Birthday earlier this year",
			birthdate: time.Date(2000, 3, 10, 0, 0, 0, 0, time.UTC),
			expected:  25,
		},
		{
			name:      "Birthday later this year",
			birthdate: time.Date(2000, 9, 10, 0, 0, 0, 0, time.UTC),
			expected:  24,
		},
		{
			name:      "Birthday today",
			birthdate: time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC),
			expected:  25,
		},
		{
			name:      "Birthday tomorrow",
			birthdate: time.Date(2000, 6, 16, 0, 0, 0, 0, time.UTC),
			expected:  24,
		},
		{
			name:      "Same month earlier day",
			birthdate: time.Date(2000, 6, 1, 0, 0, 0, 0, time.UTC),
			expected:  25,
		},
		{
			name:      "Born this year",
			birthdate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expected:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Age(tc.birthdate, ref))
		})
	}
}

func TestAgeMinimumJoinBoundary(t *testing.T) {
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// Turns 11 exactly on ref: old enough
	exactly := time.Date(2014, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, MinimumJoinAge, Age(exactly, ref))

	// One day short of the 11th birthday: too young
	dayShort := time.Date(2014, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, MinimumJoinAge-1, Age(dayShort, ref))
}

func TestIsMinorAge(t *testing.T) {
	assert.True(t, IsMinorAge(0))
	assert.True(t, IsMinorAge(11))
	assert.True(t, IsMinorAge(17))
	assert.False(t, IsMinorAge(18))
	assert.False(t, IsMinorAge(42))
}

func TestAnnualFee(t *testing.T) {
	assert.Equal(t, 100.00, AnnualFee(true))
	assert.Equal(t, 200.00, AnnualFee(false))
}

func TestDonation(t *testing.T) {
	testCases := []struct {
		name     string
		paid     float64
		fee      float64
		expected float64
	}{
		{name: "Overpaid", paid: 250, fee: 200, expected: 50},
		{name: "Exact fee", paid: 200, fee: 200, expected: 0},
		{name: "Underpaid", paid: 150, fee: 200, expected: 0},
		{name: "Nothing paid", paid: 0, fee: 100, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Donation(tc.paid, tc.fee))
		})
	}
}

func TestInactivityCutoff(t *testing.T) {
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	cutoff := InactivityCutoff(ref)

	assert.Equal(t, time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC), cutoff)

	// Joining exactly on the cutoff satisfies the tenure condition
	assert.False(t, cutoff.After(InactivityCutoff(ref)))
}

func TestPriorMembershipYear(t *testing.T) {
	assert.Equal(t, 2024, PriorMembershipYear(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, PriorMembershipYear(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)))
}
