// Package profile defines the household/financial profile collected by the
// wizard. Numeric fields that the wizard requires to be present are pointers
// so that an explicit 0 can be told apart from a missing value.
package profile

// Profile holds everything the user enters across the wizard steps.
type Profile struct {
	// household
	Name          string `json:"name"`
	Age           *int   `json:"age"`
	RetirementAge *int   `json:"retirementAge"`
	Country       string `json:"country"`
	HasSpouse     bool   `json:"hasSpouse"`
	HasChildren   bool   `json:"hasChildren"`
	ChildrenCount *int   `json:"childrenCount,omitempty"`

	// financials
	GrossSalary       *float64 `json:"grossSalary"`
	ThirtyPercentRule bool     `json:"thirtyPercentRuling"`
	Savings           *float64 `json:"savings"`
	Investments       *float64 `json:"investments"`
	Debt              *float64 `json:"debt"`

	// dutchTax
	Jaarruimte *float64 `json:"jaarruimte"`
	FactorA    *float64 `json:"factorA"`

	// realEstate
	HomeValue         *float64 `json:"homeValue"`
	MortgageBalance   *float64 `json:"mortgageBalance"`
	MortgageRate      *float64 `json:"mortgageRate"`
	MortgageYearsLeft *int     `json:"mortgageYearsLeft"`

	ExpectedReturnPct float64 `json:"expectedReturnPct,omitempty"`
}

// New returns a profile with the wizard's starting defaults: everything unset
// except the country, which the form pre-fills.
func New() Profile {
	return Profile{Country: "Netherlands"}
}

// Amount dereferences an optional currency field, treating absent as zero.
func Amount(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Count dereferences an optional integer field, treating absent as zero.
func Count(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// NetWorth is the Box 3 base: savings + investments + home value − mortgage.
func (p Profile) NetWorth() float64 {
	return Amount(p.Savings) + Amount(p.Investments) + Amount(p.HomeValue) - Amount(p.MortgageBalance)
}

// LiquidWealth is savings + investments − debt, the fallback used when the AI
// response does not report current wealth.
func (p Profile) LiquidWealth() float64 {
	return Amount(p.Savings) + Amount(p.Investments) - Amount(p.Debt)
}
