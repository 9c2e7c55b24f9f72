// Package finance provides investment growth projections used to fill in
// figures the AI response leaves out.
package finance

import (
	"github.com/fireplan-nl/fireplan/pkg/constants"
	"github.com/fireplan-nl/fireplan/pkg/mathutil"
)

func percentToDecimal(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// ProjectWealth grows a starting balance month by month at the given annual
// return rate while adding a fixed monthly contribution, over the given number
// of years. Non-positive horizons return the starting balance unchanged.
func ProjectWealth(startingValue, annualReturnPct, monthlyContribution float64, years int) float64 {
	if years <= 0 {
		return mathutil.Round(startingValue)
	}

	monthlyRate := percentToDecimal(annualReturnPct) / constants.MonthsPerYear
	value := startingValue
	for month := 0; month < years*constants.MonthsPerYear; month++ {
		value = value*(1+monthlyRate) + monthlyContribution
	}
	return mathutil.Round(value)
}

// YearsToRetirement returns retirementAge − age, floored at zero.
func YearsToRetirement(age, retirementAge int) int {
	if retirementAge <= age {
		return 0
	}
	return retirementAge - age
}
