// Package aiparse extracts structured planning data from the free-text
// response of the AI provider. The response is expected to follow the format
// requested by the prompt (KEY: value lines grouped into marked sections),
// but the parser tolerates arbitrary deviation: unparseable values keep their
// defaults, unknown prose becomes narrative, and nothing ever fails.
package aiparse

// Metrics holds the headline retirement figures, in whole euros.
type Metrics struct {
	MonthlyNeed          int `json:"monthlyNeed"`
	TargetNestEgg        int `json:"targetNestEgg"`
	GapToFill            int `json:"gapToFill"`
	MonthlySavingsTarget int `json:"monthlySavingsTarget"`
}

// Allocation is the suggested portfolio split in percentages. The values are
// advisory and deliberately not normalized to sum to 100.
type Allocation struct {
	Stocks     int `json:"stocks"`
	Bonds      int `json:"bonds"`
	RealEstate int `json:"realEstate"`
	Cash       int `json:"cash"`
}

// WealthProjection relates current wealth to the retirement target.
type WealthProjection struct {
	CurrentWealth         int `json:"currentWealth"`
	ProjectedAtRetirement int `json:"projectedAtRetirement"`
	TargetNestEgg         int `json:"targetNestEgg"`
}

// ActionStep is one recommended action.
type ActionStep struct {
	Title       string `json:"title"`
	Priority    string `json:"priority"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

// TaxOptimization carries the Dutch tax narrative and the estimated annual
// Box 3 tax.
type TaxOptimization struct {
	Box3Strategy           string `json:"box3Strategy"`
	PensionRecommendations string `json:"pensionRecommendations"`
	EstimatedAnnualBox3Tax int    `json:"estimatedAnnualBox3Tax"`
}

// Product is one recommended financial product.
type Product struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Result is the fully parsed response. It is rebuilt from scratch on every
// submission; partial results from earlier responses are never merged in.
type Result struct {
	Metrics          Metrics          `json:"metrics"`
	Allocation       Allocation       `json:"allocation"`
	WealthProjection WealthProjection `json:"wealthProjection"`
	ActionSteps      []ActionStep     `json:"actionSteps"`
	TaxOptimization  TaxOptimization  `json:"taxOptimization"`
	Products         []Product        `json:"products"`
	Narrative        string           `json:"narrative"`
}

// ApplyProfileFallback fills in current wealth from the profile (savings +
// investments − debt) when the response did not supply a non-zero value. A
// parsed non-zero value always wins over the computed fallback.
func (r *Result) ApplyProfileFallback(liquidWealth float64) {
	if r.WealthProjection.CurrentWealth == 0 {
		r.WealthProjection.CurrentWealth = int(liquidWealth)
	}
}
