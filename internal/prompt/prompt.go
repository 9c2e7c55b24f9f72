// Package prompt renders the profile into the single text prompt sent to the
// AI provider, including the strict output-format instruction the response
// parser expects. The gateway forwards the prompt untouched.
package prompt

import (
	"fmt"
	"strings"

	"github.com/fireplan-nl/fireplan/internal/profile"
	"github.com/fireplan-nl/fireplan/pkg/format"
)

// BuildPlanPrompt produces the retirement-plan prompt for the given profile.
func BuildPlanPrompt(p profile.Profile) string {
	var b strings.Builder

	b.WriteString("You are a Dutch financial planning expert. Create a FIRE (financial independence, retire early) plan for this household:\n\n")

	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Age: %d, wants to retire at %d\n", profile.Count(p.Age), profile.Count(p.RetirementAge))
	fmt.Fprintf(&b, "Country: %s\n", p.Country)
	fmt.Fprintf(&b, "Partner: %s\n", yesNo(p.HasSpouse))
	if p.HasChildren {
		fmt.Fprintf(&b, "Children: %d\n", profile.Count(p.ChildrenCount))
	} else {
		b.WriteString("Children: none\n")
	}
	fmt.Fprintf(&b, "Gross annual salary: %s (30%% ruling: %s)\n", format.Euro(profile.Amount(p.GrossSalary)), yesNo(p.ThirtyPercentRule))
	fmt.Fprintf(&b, "Savings: %s, Investments: %s, Debt: %s\n",
		format.Euro(profile.Amount(p.Savings)), format.Euro(profile.Amount(p.Investments)), format.Euro(profile.Amount(p.Debt)))
	fmt.Fprintf(&b, "Jaarruimte: %s, Factor A: %s\n", format.Euro(profile.Amount(p.Jaarruimte)), format.Euro(profile.Amount(p.FactorA)))
	fmt.Fprintf(&b, "Home value (WOZ): %s, Mortgage balance: %s at %.2f%% with %d years left\n",
		format.Euro(profile.Amount(p.HomeValue)), format.Euro(profile.Amount(p.MortgageBalance)),
		profile.Amount(p.MortgageRate), profile.Count(p.MortgageYearsLeft))

	b.WriteString("\nRespond EXACTLY in this format, one field per line, keeping the section separator lines:\n\n")
	b.WriteString("MONTHLY_NEED: <euro amount needed per month in retirement>\n")
	b.WriteString("TARGET_NEST_EGG: <total euro amount needed at retirement>\n")
	b.WriteString("CURRENT_WEALTH: <current invested wealth in euros>\n")
	b.WriteString("PROJECTED_AT_RETIREMENT: <projected wealth at retirement in euros>\n")
	b.WriteString("GAP_TO_FILL: <euro gap between projection and target>\n")
	b.WriteString("MONTHLY_SAVINGS_TARGET: <euros to save per month to close the gap>\n")
	b.WriteString("ALLOCATION_STOCKS: <percent>\n")
	b.WriteString("ALLOCATION_BONDS: <percent>\n")
	b.WriteString("ALLOCATION_REAL_ESTATE: <percent>\n")
	b.WriteString("ALLOCATION_CASH: <percent>\n")
	b.WriteString("---ACTIONS---\n")
	b.WriteString("ACTION_STEP_1_TITLE: <short title>\n")
	b.WriteString("ACTION_STEP_1_PRIORITY: <High Priority|Medium Priority|Low Priority>\n")
	b.WriteString("ACTION_STEP_1_TAG: <category tag>\n")
	b.WriteString("ACTION_STEP_1_DESC: <one sentence>\n")
	b.WriteString("(repeat ACTION_STEP_2 ... for up to 5 steps)\n")
	b.WriteString("---DUTCH_TAX---\n")
	b.WriteString("BOX3_STRATEGY: <how to reduce Box 3 wealth tax>\n")
	b.WriteString("PENSION_RECOMMENDATIONS: <how to use jaarruimte and Factor A>\n")
	b.WriteString("ESTIMATED_ANNUAL_BOX3_TAX: <euro amount>\n")
	b.WriteString("---PRODUCTS---\n")
	b.WriteString("PRODUCT_1_NAME: <Dutch provider or fund name>\n")
	b.WriteString("PRODUCT_1_TYPE: <Broker|Pension|Fund|Insurance>\n")
	b.WriteString("PRODUCT_1_DESC: <one sentence>\n")
	b.WriteString("(repeat PRODUCT_2 ... for up to 4 products)\n")
	b.WriteString("---\n")
	b.WriteString("<free-form closing advice>\n")

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
