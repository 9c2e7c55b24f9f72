// Package wizard implements the multi-step intake flow as a pure state
// machine: an ordered set of steps, per-step validation that returns error
// maps rather than failing, and a reducer that applies transitions to an
// immutable state value.
package wizard

import (
	"github.com/fireplan-nl/fireplan/internal/profile"
	"github.com/fireplan-nl/fireplan/pkg/constants"
	"github.com/fireplan-nl/fireplan/pkg/validation"
)

// Step identifies one wizard step.
type Step string

const (
	StepHousehold  Step = "household"
	StepFinancials Step = "financials"
	StepDutchTax   Step = "dutchTax"
	StepRealEstate Step = "realEstate"
)

var order = []Step{StepHousehold, StepFinancials, StepDutchTax, StepRealEstate}

// Steps returns the wizard steps in order.
func Steps() []Step {
	return append([]Step(nil), order...)
}

// Valid reports whether s names a known step.
func (s Step) Valid() bool {
	for _, step := range order {
		if step == s {
			return true
		}
	}
	return false
}

// Next returns the following step, or false on the terminal step.
func (s Step) Next() (Step, bool) {
	for i, step := range order {
		if step == s && i+1 < len(order) {
			return order[i+1], true
		}
	}
	return s, false
}

// Prev returns the preceding step, or false on the first step.
func (s Step) Prev() (Step, bool) {
	for i, step := range order {
		if step == s && i > 0 {
			return order[i-1], true
		}
	}
	return s, false
}

// IsTerminal reports whether s is the final data-collection step, where
// advancing triggers submission instead of a transition.
func (s Step) IsTerminal() bool {
	return s == order[len(order)-1]
}

// Validate checks the fields belonging to one step and returns a map of field
// name to error message. An empty map means the step may be left. Errors from
// other steps are never included.
func Validate(step Step, p profile.Profile) map[string]string {
	errs := make(map[string]string)

	put := func(field, msg string) {
		if msg != "" {
			errs[field] = msg
		}
	}

	switch step {
	case StepHousehold:
		put("name", validation.RequiredText("Name", p.Name))
		put("age", validation.IntInRange("Age", p.Age, constants.MinAge, constants.MaxAge))
		put("country", validation.RequiredText("Country", p.Country))
		put("retirementAge", validateRetirementAge(p))
		if p.HasChildren {
			put("childrenCount", validation.IntAtLeast("Number of children", p.ChildrenCount, 1))
		}
	case StepFinancials:
		put("grossSalary", validation.RequiredAmount("Gross salary", p.GrossSalary))
		put("savings", validation.RequiredAmount("Savings", p.Savings))
		put("investments", validation.RequiredAmount("Investments", p.Investments))
		put("debt", validation.RequiredAmount("Debt", p.Debt))
	case StepDutchTax:
		put("jaarruimte", validation.RequiredAmount("Jaarruimte", p.Jaarruimte))
		put("factorA", validation.RequiredAmount("Factor A", p.FactorA))
	case StepRealEstate:
		put("homeValue", validation.RequiredAmount("Home value", p.HomeValue))
		put("mortgageBalance", validation.RequiredAmount("Mortgage balance", p.MortgageBalance))
		put("mortgageRate", validation.RequiredAmount("Mortgage interest rate", p.MortgageRate))
		put("mortgageYearsLeft", validation.RequiredCount("Mortgage years left", p.MortgageYearsLeft))
	}

	return errs
}

func validateRetirementAge(p profile.Profile) string {
	if p.RetirementAge == nil {
		return "Retirement age is required"
	}
	if *p.RetirementAge > constants.MaxAge {
		return "Retirement age must be 100 or below"
	}
	if p.Age != nil && *p.RetirementAge <= *p.Age {
		return "Retirement age must be greater than your age"
	}
	return ""
}

// ValidateAll runs every step's validation and returns the first step with
// errors, or an empty map and the terminal step when the whole profile passes.
func ValidateAll(p profile.Profile) (Step, map[string]string) {
	for _, step := range order {
		if errs := Validate(step, p); len(errs) > 0 {
			return step, errs
		}
	}
	return order[len(order)-1], map[string]string{}
}
