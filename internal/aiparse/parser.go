package aiparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fireplan-nl/fireplan/pkg/format"
)

// section tags the classifier's current position in the response.
type section int

const (
	sectionMetrics section = iota
	sectionActions
	sectionDutchTax
	sectionProducts
	sectionStrategy
)

var (
	// Two or more hyphens, an optional section marker, optional trailing
	// hyphens. Separator lines switch sections and are never narrative.
	separatorPattern = regexp.MustCompile(`^-{2,}\s*(ACTIONS|DUTCH_TAX|PRODUCTS)?\s*-*$`)

	// KEY: value. Keys are matched case-insensitively once captured.
	keyPattern = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9_]*)\s*:\s*(.*)$`)

	actionKeyPattern  = regexp.MustCompile(`^ACTION_STEP_(\d+)_(TITLE|PRIORITY|TAG|DESC)$`)
	productKeyPattern = regexp.MustCompile(`^PRODUCT_(\d+)_(NAME|TYPE|DESC)$`)
)

// knownKeyPrefixes decides whether an unmatched line still "looks like" one of
// the requested keys. Such lines stay in their section and are dropped rather
// than demoting the parser to narrative mode.
var knownKeyPrefixes = []string{
	"MONTHLY_NEED",
	"TARGET_NEST_EGG",
	"GAP_TO_FILL",
	"MONTHLY_SAVINGS_TARGET",
	"CURRENT_WEALTH",
	"PROJECTED_AT_RETIREMENT",
	"ESTIMATED_ANNUAL_BOX3_TAX",
	"ALLOCATION_",
	"ACTION_STEP_",
	"PRODUCT_",
	"BOX3_STRATEGY",
	"PENSION_RECOMMENDATIONS",
}

// multilineField identifies the target of an open multi-line accumulator.
type multilineField int

const (
	fieldBox3Strategy multilineField = iota
	fieldPensionRecommendations
)

// accumulator collects the continuation lines of a multi-line narrative key.
// Only one is open at a time; opening another (or hitting any single-line
// key, separator, or end of input) flushes it into its target field first.
type accumulator struct {
	field multilineField
	parts []string
}

type parser struct {
	result    Result
	section   section
	steps     *stepBuilder
	products  *productBuilder
	pending   *accumulator
	narrative []string
}

// Parse converts a raw response blob into a Result in a single forward pass
// over its lines. It never fails; see the package comment for the leniency
// rules.
func Parse(text string) Result {
	p := &parser{
		section:  sectionMetrics,
		steps:    newStepBuilder(),
		products: newProductBuilder(),
	}

	for _, line := range strings.Split(text, "\n") {
		p.processLine(line)
	}

	return p.finalize()
}

func (p *parser) processLine(line string) {
	trimmed := strings.TrimSpace(line)

	if sec, ok := matchSeparator(trimmed); ok {
		p.flushPending()
		p.section = sec
		return
	}

	// Blank lines carry no information in any section and, in particular,
	// do not close an open accumulator.
	if trimmed == "" {
		return
	}

	if key, value, ok := matchKey(line); ok {
		if p.handleKey(key, value) {
			return
		}
	}

	// Continuation of an open multi-line field while still in DUTCH_TAX.
	if p.section == sectionDutchTax && p.pending != nil {
		p.pending.parts = append(p.pending.parts, trimmed)
		return
	}

	p.flushPending()

	// A garbled but recognizable key line is dropped silently in any section.
	if looksLikeKnownKey(trimmed) {
		return
	}

	// Anything else demotes the parser to narrative mode; the line itself is
	// kept with its original formatting.
	p.section = sectionStrategy
	p.narrative = append(p.narrative, line)
}

func matchSeparator(trimmed string) (section, bool) {
	m := separatorPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, false
	}
	switch m[1] {
	case "ACTIONS":
		return sectionActions, true
	case "DUTCH_TAX":
		return sectionDutchTax, true
	case "PRODUCTS":
		return sectionProducts, true
	default:
		return sectionStrategy, true
	}
}

func matchKey(line string) (string, string, bool) {
	m := keyPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.ToUpper(m[1]), strings.TrimSpace(m[2]), true
}

func looksLikeKnownKey(trimmed string) bool {
	upper := strings.ToUpper(trimmed)
	for _, prefix := range knownKeyPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// handleKey dispatches a KEY: value line. It reports whether the key was one
// of the recognized ones; unrecognized keys are left for narrative handling.
func (p *parser) handleKey(key, value string) bool {
	switch key {
	case "MONTHLY_NEED":
		p.flushPending()
		setAmount(&p.result.Metrics.MonthlyNeed, value)
	case "TARGET_NEST_EGG":
		p.flushPending()
		setAmount(&p.result.Metrics.TargetNestEgg, value)
	case "GAP_TO_FILL":
		p.flushPending()
		setAmount(&p.result.Metrics.GapToFill, value)
	case "MONTHLY_SAVINGS_TARGET":
		p.flushPending()
		setAmount(&p.result.Metrics.MonthlySavingsTarget, value)
	case "CURRENT_WEALTH":
		p.flushPending()
		setAmount(&p.result.WealthProjection.CurrentWealth, value)
	case "PROJECTED_AT_RETIREMENT":
		p.flushPending()
		setAmount(&p.result.WealthProjection.ProjectedAtRetirement, value)
	case "ESTIMATED_ANNUAL_BOX3_TAX":
		p.flushPending()
		setAmount(&p.result.TaxOptimization.EstimatedAnnualBox3Tax, value)
	case "ALLOCATION_STOCKS":
		p.flushPending()
		setAmount(&p.result.Allocation.Stocks, value)
	case "ALLOCATION_BONDS":
		p.flushPending()
		setAmount(&p.result.Allocation.Bonds, value)
	case "ALLOCATION_REAL_ESTATE":
		p.flushPending()
		setAmount(&p.result.Allocation.RealEstate, value)
	case "ALLOCATION_CASH":
		p.flushPending()
		setAmount(&p.result.Allocation.Cash, value)
	case "BOX3_STRATEGY":
		p.openAccumulator(fieldBox3Strategy, value)
	case "PENSION_RECOMMENDATIONS":
		p.openAccumulator(fieldPensionRecommendations, value)
	default:
		if m := actionKeyPattern.FindStringSubmatch(key); m != nil {
			p.flushPending()
			index, _ := strconv.Atoi(m[1])
			p.steps.set(index, m[2], value)
			return true
		}
		if m := productKeyPattern.FindStringSubmatch(key); m != nil {
			p.flushPending()
			index, _ := strconv.Atoi(m[1])
			p.products.set(index, m[2], value)
			return true
		}
		return false
	}
	return true
}

func (p *parser) openAccumulator(field multilineField, seed string) {
	p.flushPending()
	acc := &accumulator{field: field}
	if seed != "" {
		acc.parts = append(acc.parts, seed)
	}
	p.pending = acc
}

func (p *parser) flushPending() {
	if p.pending == nil {
		return
	}
	joined := strings.Join(p.pending.parts, " ")
	switch p.pending.field {
	case fieldBox3Strategy:
		p.result.TaxOptimization.Box3Strategy = joined
	case fieldPensionRecommendations:
		p.result.TaxOptimization.PensionRecommendations = joined
	}
	p.pending = nil
}

func (p *parser) finalize() Result {
	p.flushPending()

	p.result.ActionSteps = p.steps.finalize()
	p.result.Products = p.products.finalize()
	p.result.WealthProjection.TargetNestEgg = p.result.Metrics.TargetNestEgg
	p.result.Narrative = strings.Join(p.narrative, "\n")

	return p.result
}

// setAmount parses a currency- or percentage-like value and stores it; on
// failure the target keeps its default.
func setAmount(target *int, value string) {
	if parsed, err := format.ParseAmount(value); err == nil {
		*target = parsed
	}
}
