package aiparse

import (
	"strings"
	"testing"
)

// A synthetic response containing every recognized key with literal values
// must reproduce exactly those values, with no leftover narrative.
func TestParseWellFormedResponse(t *testing.T) {
	text := strings.Join([]string{
		"MONTHLY_NEED: €3,000",
		"TARGET_NEST_EGG: €900,000",
		"GAP_TO_FILL: €660,000",
		"MONTHLY_SAVINGS_TARGET: €1,850",
		"CURRENT_WEALTH: €240,000",
		"PROJECTED_AT_RETIREMENT: €310,000",
		"ALLOCATION_STOCKS: 60",
		"ALLOCATION_BONDS: 20",
		"ALLOCATION_REAL_ESTATE: 10",
		"ALLOCATION_CASH: 10",
		"---ACTIONS---",
		"ACTION_STEP_1_TITLE: Max your jaarruimte",
		"ACTION_STEP_1_PRIORITY: High Priority",
		"ACTION_STEP_1_TAG: NL Tax",
		"ACTION_STEP_1_DESC: Contribute before year end.",
		"ACTION_STEP_2_TITLE: Open a broker account",
		"ACTION_STEP_2_PRIORITY: Medium Priority",
		"ACTION_STEP_2_TAG: Investing",
		"ACTION_STEP_2_DESC: Low-cost index funds.",
		"---DUTCH_TAX---",
		"BOX3_STRATEGY: Shift savings into your partner's allowance.",
		"PENSION_RECOMMENDATIONS: Use jaarruimte via lijfrente.",
		"ESTIMATED_ANNUAL_BOX3_TAX: €1,200",
		"---PRODUCTS---",
		"PRODUCT_1_NAME: DEGIRO",
		"PRODUCT_1_TYPE: Broker",
		"PRODUCT_1_DESC: Low-cost European broker.",
	}, "\n")

	result := Parse(text)

	if result.Metrics.MonthlyNeed != 3000 {
		t.Errorf("MonthlyNeed = %d, expected 3000", result.Metrics.MonthlyNeed)
	}
	if result.Metrics.TargetNestEgg != 900000 {
		t.Errorf("TargetNestEgg = %d, expected 900000", result.Metrics.TargetNestEgg)
	}
	if result.Metrics.GapToFill != 660000 {
		t.Errorf("GapToFill = %d, expected 660000", result.Metrics.GapToFill)
	}
	if result.Metrics.MonthlySavingsTarget != 1850 {
		t.Errorf("MonthlySavingsTarget = %d, expected 1850", result.Metrics.MonthlySavingsTarget)
	}
	if result.WealthProjection.CurrentWealth != 240000 {
		t.Errorf("CurrentWealth = %d, expected 240000", result.WealthProjection.CurrentWealth)
	}
	if result.WealthProjection.ProjectedAtRetirement != 310000 {
		t.Errorf("ProjectedAtRetirement = %d, expected 310000", result.WealthProjection.ProjectedAtRetirement)
	}
	if result.WealthProjection.TargetNestEgg != 900000 {
		t.Errorf("WealthProjection.TargetNestEgg = %d, expected copy of metric 900000", result.WealthProjection.TargetNestEgg)
	}

	if result.Allocation != (Allocation{Stocks: 60, Bonds: 20, RealEstate: 10, Cash: 10}) {
		t.Errorf("Allocation = %+v", result.Allocation)
	}

	if len(result.ActionSteps) != 2 {
		t.Fatalf("ActionSteps = %d entries, expected 2", len(result.ActionSteps))
	}
	first := result.ActionSteps[0]
	if first.Title != "Max your jaarruimte" || first.Priority != "High Priority" ||
		first.Tag != "NL Tax" || first.Description != "Contribute before year end." {
		t.Errorf("ActionSteps[0] = %+v", first)
	}

	if result.TaxOptimization.Box3Strategy != "Shift savings into your partner's allowance." {
		t.Errorf("Box3Strategy = %q", result.TaxOptimization.Box3Strategy)
	}
	if result.TaxOptimization.PensionRecommendations != "Use jaarruimte via lijfrente." {
		t.Errorf("PensionRecommendations = %q", result.TaxOptimization.PensionRecommendations)
	}
	if result.TaxOptimization.EstimatedAnnualBox3Tax != 1200 {
		t.Errorf("EstimatedAnnualBox3Tax = %d, expected 1200", result.TaxOptimization.EstimatedAnnualBox3Tax)
	}

	if len(result.Products) != 1 || result.Products[0].Name != "DEGIRO" ||
		result.Products[0].Type != "Broker" || result.Products[0].Description != "Low-cost European broker." {
		t.Errorf("Products = %+v", result.Products)
	}

	if result.Narrative != "" {
		t.Errorf("Narrative = %q, expected empty", result.Narrative)
	}
}

// Pure prose yields an all-default result with the prose captured verbatim.
func TestParseProseOnly(t *testing.T) {
	text := "I think you are doing quite well.\nKeep saving and revisit in a year."

	result := Parse(text)

	if result.Metrics != (Metrics{}) {
		t.Errorf("Metrics = %+v, expected defaults", result.Metrics)
	}
	if result.Allocation != (Allocation{}) {
		t.Errorf("Allocation = %+v, expected defaults", result.Allocation)
	}
	if len(result.ActionSteps) != 0 || len(result.Products) != 0 {
		t.Errorf("expected no steps/products, got %v / %v", result.ActionSteps, result.Products)
	}
	if result.Narrative != text {
		t.Errorf("Narrative = %q, expected the prose verbatim", result.Narrative)
	}
}

// Sparse indexing: a step 2 without a step 1 yields a one-element list.
func TestParseSparseActionIndex(t *testing.T) {
	result := Parse("ACTION_STEP_2_TITLE: Foo")

	if len(result.ActionSteps) != 1 {
		t.Fatalf("ActionSteps = %d entries, expected 1", len(result.ActionSteps))
	}
	if result.ActionSteps[0].Title != "Foo" {
		t.Errorf("ActionSteps[0].Title = %q, expected Foo", result.ActionSteps[0].Title)
	}
}

// Entries whose identifying field never arrives are dropped.
func TestParseDropsUntitledEntries(t *testing.T) {
	text := strings.Join([]string{
		"ACTION_STEP_1_DESC: An orphaned description.",
		"ACTION_STEP_2_TITLE: Keep me",
		"PRODUCT_1_TYPE: Broker",
		"PRODUCT_2_NAME: Meesman",
	}, "\n")

	result := Parse(text)

	if len(result.ActionSteps) != 1 || result.ActionSteps[0].Title != "Keep me" {
		t.Errorf("ActionSteps = %+v, expected only the titled entry", result.ActionSteps)
	}
	if len(result.Products) != 1 || result.Products[0].Name != "Meesman" {
		t.Errorf("Products = %+v, expected only the named entry", result.Products)
	}
}

// The end-to-end scenario from the product requirements.
func TestParseEndToEndScenario(t *testing.T) {
	text := strings.Join([]string{
		"MONTHLY_NEED: €3,000",
		"TARGET_NEST_EGG: €900,000",
		"CURRENT_WEALTH: €240,000",
		"---ACTIONS---",
		"ACTION_STEP_1_TITLE: Max your jaarruimte",
		"ACTION_STEP_1_PRIORITY: High Priority",
		"ACTION_STEP_1_TAG: NL Tax",
		"ACTION_STEP_1_DESC: Contribute before year end.",
		"---",
		"Your plan looks strong.",
	}, "\n")

	result := Parse(text)
	result.ApplyProfileFallback(90000 + 150000 - 0)

	if result.Metrics.MonthlyNeed != 3000 {
		t.Errorf("MonthlyNeed = %d, expected 3000", result.Metrics.MonthlyNeed)
	}
	if result.Metrics.TargetNestEgg != 900000 {
		t.Errorf("TargetNestEgg = %d, expected 900000", result.Metrics.TargetNestEgg)
	}
	// Parsed wealth wins over the profile fallback.
	if result.WealthProjection.CurrentWealth != 240000 {
		t.Errorf("CurrentWealth = %d, expected 240000", result.WealthProjection.CurrentWealth)
	}
	if len(result.ActionSteps) != 1 || result.ActionSteps[0].Title != "Max your jaarruimte" {
		t.Errorf("ActionSteps = %+v", result.ActionSteps)
	}
	if result.Narrative != "Your plan looks strong." {
		t.Errorf("Narrative = %q, expected the single prose line without separators", result.Narrative)
	}
}

func TestParseCurrentWealthFallback(t *testing.T) {
	result := Parse("MONTHLY_NEED: €3,000")
	result.ApplyProfileFallback(230000)

	if result.WealthProjection.CurrentWealth != 230000 {
		t.Errorf("CurrentWealth = %d, expected fallback 230000", result.WealthProjection.CurrentWealth)
	}

	// The fallback also wins over an explicitly reported zero; accepted
	// ambiguity in the format.
	result = Parse("CURRENT_WEALTH: 0")
	result.ApplyProfileFallback(230000)
	if result.WealthProjection.CurrentWealth != 230000 {
		t.Errorf("CurrentWealth = %d, expected fallback over explicit zero", result.WealthProjection.CurrentWealth)
	}
}

func TestParseMultilineAccumulator(t *testing.T) {
	text := strings.Join([]string{
		"---DUTCH_TAX---",
		"BOX3_STRATEGY: Move savings",
		"into green investments",
		"for the exemption.",
		"",
		"and keep records.",
		"PENSION_RECOMMENDATIONS:",
		"Use your jaarruimte.",
		"ESTIMATED_ANNUAL_BOX3_TAX: €950",
	}, "\n")

	result := Parse(text)

	want := "Move savings into green investments for the exemption. and keep records."
	if result.TaxOptimization.Box3Strategy != want {
		t.Errorf("Box3Strategy = %q, expected %q", result.TaxOptimization.Box3Strategy, want)
	}
	if result.TaxOptimization.PensionRecommendations != "Use your jaarruimte." {
		t.Errorf("PensionRecommendations = %q", result.TaxOptimization.PensionRecommendations)
	}
	if result.TaxOptimization.EstimatedAnnualBox3Tax != 950 {
		t.Errorf("EstimatedAnnualBox3Tax = %d, expected 950", result.TaxOptimization.EstimatedAnnualBox3Tax)
	}
}

func TestParseAccumulatorClosedBySeparator(t *testing.T) {
	text := strings.Join([]string{
		"---DUTCH_TAX---",
		"BOX3_STRATEGY: Spread assets",
		"across partners.",
		"---PRODUCTS---",
		"PRODUCT_1_NAME: Brand New Day",
	}, "\n")

	result := Parse(text)

	if result.TaxOptimization.Box3Strategy != "Spread assets across partners." {
		t.Errorf("Box3Strategy = %q", result.TaxOptimization.Box3Strategy)
	}
	if len(result.Products) != 1 {
		t.Errorf("Products = %+v, expected one entry", result.Products)
	}
}

func TestParseMalformedNumbersKeepDefaults(t *testing.T) {
	text := strings.Join([]string{
		"MONTHLY_NEED: not a number",
		"TARGET_NEST_EGG: €900,000",
		"ALLOCATION_STOCKS: lots",
	}, "\n")

	result := Parse(text)

	if result.Metrics.MonthlyNeed != 0 {
		t.Errorf("MonthlyNeed = %d, expected default 0", result.Metrics.MonthlyNeed)
	}
	if result.Metrics.TargetNestEgg != 900000 {
		t.Errorf("TargetNestEgg = %d, expected 900000", result.Metrics.TargetNestEgg)
	}
	if result.Allocation.Stocks != 0 {
		t.Errorf("Allocation.Stocks = %d, expected default 0", result.Allocation.Stocks)
	}
	// Malformed lines never bleed into the narrative.
	if result.Narrative != "" {
		t.Errorf("Narrative = %q, expected empty", result.Narrative)
	}
}

func TestParseKeysAreCaseInsensitive(t *testing.T) {
	text := strings.Join([]string{
		"monthly_need: €2,500",
		"Action_Step_1_Title: Lower case still counts",
	}, "\n")

	result := Parse(text)

	if result.Metrics.MonthlyNeed != 2500 {
		t.Errorf("MonthlyNeed = %d, expected 2500", result.Metrics.MonthlyNeed)
	}
	if len(result.ActionSteps) != 1 || result.ActionSteps[0].Title != "Lower case still counts" {
		t.Errorf("ActionSteps = %+v", result.ActionSteps)
	}
}

func TestParseUnexpectedProseSwitchesToNarrative(t *testing.T) {
	text := strings.Join([]string{
		"MONTHLY_NEED: €3,000",
		"Here is some general advice the model volunteered.",
		"TARGET_NEST_EGG: €900,000",
	}, "\n")

	result := Parse(text)

	if result.Metrics.MonthlyNeed != 3000 {
		t.Errorf("MonthlyNeed = %d, expected 3000", result.Metrics.MonthlyNeed)
	}
	if !strings.Contains(result.Narrative, "general advice") {
		t.Errorf("Narrative = %q, expected the prose line", result.Narrative)
	}
	// Recognized keys are still honored after the switch.
	if result.Metrics.TargetNestEgg != 900000 {
		t.Errorf("TargetNestEgg = %d, expected 900000", result.Metrics.TargetNestEgg)
	}
}

func TestParseResultIsFresh(t *testing.T) {
	first := Parse("MONTHLY_NEED: €3,000")
	second := Parse("TARGET_NEST_EGG: €900,000")

	if second.Metrics.MonthlyNeed != 0 {
		t.Errorf("second parse inherited MonthlyNeed = %d", second.Metrics.MonthlyNeed)
	}
	if first.Metrics.TargetNestEgg != 0 {
		t.Errorf("first parse gained TargetNestEgg = %d", first.Metrics.TargetNestEgg)
	}
}
