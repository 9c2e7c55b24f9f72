// Package format provides euro currency formatting and lenient parsing of
// currency-like text extracted from free-form AI responses.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Euro returns a currency string with a euro sign and thousands separators,
// rounded to whole euros (e.g., "-€1,234").
func Euro(amount float64) string {
	formatted := groupThousands(fmt.Sprintf("%.0f", math.Abs(amount)))
	if amount < 0 {
		return "-€" + formatted
	}
	return "€" + formatted
}

// EuroCents returns a currency string with a euro sign, thousands separators,
// and two decimals (e.g., "€1,234.56").
func EuroCents(amount float64) string {
	formatted := fmt.Sprintf("%.2f", math.Abs(amount))
	parts := strings.SplitN(formatted, ".", 2)
	grouped := groupThousands(parts[0]) + "." + parts[1]
	if amount < 0 {
		return "-€" + grouped
	}
	return "€" + grouped
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}

// ParseAmount extracts a whole-euro integer from currency-like text such as
// "€3,000", "EUR 1250" or "900000". Currency symbols, thousands separators,
// and whitespace are stripped; anything after the leading run of digits is
// ignored, mirroring how lenient numeric parsing treats trailing junk like
// "%". Returns an error only when no leading digits remain.
func ParseAmount(text string) (int, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "€", "")
	cleaned = strings.ReplaceAll(cleaned, "EUR", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.TrimSpace(cleaned)

	negative := false
	if strings.HasPrefix(cleaned, "-") {
		negative = true
		cleaned = cleaned[1:]
	} else if strings.HasPrefix(cleaned, "+") {
		cleaned = cleaned[1:]
	}

	value := 0
	digits := 0
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			break
		}
		value = value*10 + int(r-'0')
		digits++
	}
	if digits == 0 {
		return 0, fmt.Errorf("no numeric value in %q", text)
	}
	if negative {
		value = -value
	}
	return value, nil
}
