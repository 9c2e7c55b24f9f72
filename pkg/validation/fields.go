// Package validation provides field validation utilities for wizard input.
// Every validator returns an empty string when the value is acceptable and a
// user-facing message otherwise; validation never produces errors as values
// to be thrown, only data to be rendered.
package validation

import (
	"fmt"
	"strings"
)

// RequiredText checks that a free-text field is non-blank.
func RequiredText(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s is required", label)
	}
	return ""
}

// RequiredAmount checks that a currency field is present. Zero is a valid
// amount; only an absent value fails.
func RequiredAmount(label string, value *float64) string {
	if value == nil {
		return fmt.Sprintf("%s is required", label)
	}
	return ""
}

// RequiredCount checks that an integer field is present.
func RequiredCount(label string, value *int) string {
	if value == nil {
		return fmt.Sprintf("%s is required", label)
	}
	return ""
}

// IntInRange checks that an integer field is present and within [min, max].
func IntInRange(label string, value *int, min, max int) string {
	if value == nil {
		return fmt.Sprintf("%s is required", label)
	}
	if *value < min || *value > max {
		return fmt.Sprintf("%s must be between %d and %d", label, min, max)
	}
	return ""
}

// IntAtLeast checks that an integer field is present and at least min.
func IntAtLeast(label string, value *int, min int) string {
	if value == nil {
		return fmt.Sprintf("%s is required", label)
	}
	if *value < min {
		return fmt.Sprintf("%s must be at least %d", label, min)
	}
	return ""
}
