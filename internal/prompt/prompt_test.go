package prompt

import (
	"strings"
	"testing"

	"github.com/fireplan-nl/fireplan/pkg/testutil"
)

func TestBuildPlanPromptEmbedsProfile(t *testing.T) {
	p := testutil.ValidProfile()

	got := BuildPlanPrompt(p)

	for _, fragment := range []string{
		"Name: Anna",
		"Age: 35, wants to retire at 60",
		"Country: Netherlands",
		"Savings: €90,000",
		"Investments: €150,000",
		"Jaarruimte: €6,000",
		"Mortgage balance: €280,000",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestBuildPlanPromptIncludesFormatInstruction(t *testing.T) {
	got := BuildPlanPrompt(testutil.ValidProfile())

	for _, key := range []string{
		"MONTHLY_NEED:",
		"TARGET_NEST_EGG:",
		"GAP_TO_FILL:",
		"MONTHLY_SAVINGS_TARGET:",
		"CURRENT_WEALTH:",
		"PROJECTED_AT_RETIREMENT:",
		"ALLOCATION_STOCKS:",
		"ALLOCATION_CASH:",
		"---ACTIONS---",
		"ACTION_STEP_1_TITLE:",
		"---DUTCH_TAX---",
		"BOX3_STRATEGY:",
		"PENSION_RECOMMENDATIONS:",
		"ESTIMATED_ANNUAL_BOX3_TAX:",
		"---PRODUCTS---",
		"PRODUCT_1_NAME:",
	} {
		if !strings.Contains(got, key) {
			t.Errorf("prompt format instruction missing %q", key)
		}
	}
}

func TestBuildPlanPromptChildren(t *testing.T) {
	p := testutil.ValidProfile()
	p.HasChildren = true
	p.ChildrenCount = testutil.Int(2)

	if got := BuildPlanPrompt(p); !strings.Contains(got, "Children: 2") {
		t.Error("prompt missing children count")
	}

	p.HasChildren = false
	if got := BuildPlanPrompt(p); !strings.Contains(got, "Children: none") {
		t.Error("prompt missing childless marker")
	}
}
