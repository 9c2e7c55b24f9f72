// Package constants provides shared constants for the fireplan application.
package constants

// Box 3 (Dutch wealth tax) constants. These mirror the published figures for the
// current tax year and feed the two-regime comparison in pkg/taxcalc.
const (
	// TaxFreeAllowance is the heffingsvrij vermogen: net worth below this
	// threshold is untaxed under both regimes.
	TaxFreeAllowance = 57684.0

	// Box3Rate is the flat rate applied to the (deemed or actual) yield.
	Box3Rate = 0.36

	// FictionalReturnRate is the deemed yield on the taxable base under the
	// current regime, independent of actual returns.
	FictionalReturnRate = 0.0604
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier converts between percentages and decimals
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons
	CurrencyTolerance = 0.01
)

// Wizard constants
const (
	// MinAge is the youngest age the household step accepts
	MinAge = 18

	// MaxAge is the oldest age (and retirement age) the household step accepts
	MaxAge = 100
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultRequestTimeoutSeconds is the advertised budget for a full plan
	// request. It deliberately exceeds the upstream budget so the provider
	// call always aborts first.
	DefaultRequestTimeoutSeconds = 360

	// DefaultUpstreamTimeoutSeconds is the hard ceiling on a single call to
	// the AI provider. No retries are attempted once it fires.
	DefaultUpstreamTimeoutSeconds = 300
)

// AI provider defaults
const (
	// DefaultGeminiEndpoint is the base URL for the Gemini REST API
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com"

	// DefaultGeminiModel is the model used when none is configured
	DefaultGeminiModel = "gemini-2.0-flash"
)
