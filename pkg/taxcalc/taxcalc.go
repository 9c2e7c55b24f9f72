// Package taxcalc computes Dutch Box 3 wealth-tax estimates under the current
// (deemed-return) regime and the proposed actual-return regime.
package taxcalc

import (
	"github.com/fireplan-nl/fireplan/pkg/constants"
	"github.com/fireplan-nl/fireplan/pkg/mathutil"
)

// NetWorth computes the Box 3 base from the raw asset figures.
func NetWorth(savings, investments, realEstateValue, mortgageBalance float64) float64 {
	return savings + investments + realEstateValue - mortgageBalance
}

// CurrentRegimeTax returns the annual tax under the current regime: a fixed
// fictional yield on the taxable base, taxed at the flat rate. Negative net
// worth never produces negative tax.
func CurrentRegimeTax(netWorth float64) float64 {
	taxableBase := mathutil.Max(0, netWorth-constants.TaxFreeAllowance)
	deemedYield := taxableBase * constants.FictionalReturnRate
	return mathutil.Round(deemedYield * constants.Box3Rate)
}

// NewRegimeTax returns the annual tax under the actual-return regime. Losses
// are not taxed and not refunded: a non-positive actual yield yields zero tax.
func NewRegimeTax(netWorth, expectedReturnPct float64) float64 {
	taxableBase := mathutil.Max(0, netWorth-constants.TaxFreeAllowance)
	actualYield := taxableBase * (expectedReturnPct / constants.PercentageMultiplier)
	if actualYield <= 0 {
		return 0
	}
	return mathutil.Round(actualYield * constants.Box3Rate)
}

// Difference returns newRegimeTax − currentRegimeTax for the given inputs.
// A positive result means the new regime costs more.
func Difference(netWorth, expectedReturnPct float64) float64 {
	return mathutil.Round(NewRegimeTax(netWorth, expectedReturnPct) - CurrentRegimeTax(netWorth))
}
