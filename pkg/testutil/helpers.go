// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/fireplan-nl/fireplan/internal/profile"
)

// Float returns a pointer to the given float64, for populating optional
// profile fields in tests.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to the given int.
func Int(v int) *int {
	return &v
}

// ValidProfile returns a profile that passes validation on every wizard step.
func ValidProfile() profile.Profile {
	return profile.Profile{
		Name:              "Anna",
		Age:               Int(35),
		RetirementAge:     Int(60),
		Country:           "Netherlands",
		HasSpouse:         false,
		HasChildren:       false,
		GrossSalary:       Float(85000),
		Savings:           Float(90000),
		Investments:       Float(150000),
		Debt:              Float(0),
		Jaarruimte:        Float(6000),
		FactorA:           Float(1200),
		HomeValue:         Float(450000),
		MortgageBalance:   Float(280000),
		MortgageRate:      Float(3.5),
		MortgageYearsLeft: Int(22),
		ExpectedReturnPct: 7,
	}
}
