package utils

import (
	"errors"
	"regexp"
	"strings"
)

const (
	maxNameLength  = 100
	maxValueLength = 64
)

var (
	// Category and unit names: letters, digits, spaces, parentheses, dots and hyphens.
	validNamePattern = regexp.MustCompile(`^[\p{L}\p{N} ().-]+$`)

	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// UnitLookup is the part of the conversion engine used for validation.
type UnitLookup interface {
	HasCategory(category string) bool
	HasUnit(category, unit string) bool
}

// ValidateName checks a category or unit name before it is looked up.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("cannot be empty")
	}
	if len(name) > maxNameLength {
		return errors.New("too long (max 100 characters)")
	}
	if !validNamePattern.MatchString(name) {
		return errors.New("contains invalid characters")
	}
	return nil
}

// ValidateValue checks the length of a raw input value. Whether it parses as
// a number is left to the conversion engine.
func ValidateValue(value string) error {
	if len(value) > maxValueLength {
		return errors.New("too long (max 64 characters)")
	}
	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace.
func SanitizeInput(input string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(input, ""))
}

// ValidateCategory returns field errors for an unknown or malformed category.
func ValidateCategory(lookup UnitLookup, field, category string) map[string][]string {
	fieldErrors := make(map[string][]string)
	if err := ValidateName(category); err != nil {
		fieldErrors[field] = append(fieldErrors[field], field+" "+err.Error())
		return fieldErrors
	}
	if !lookup.HasCategory(category) {
		fieldErrors[field] = append(fieldErrors[field], "unknown category")
	}
	return fieldErrors
}

// ValidateUnits returns field errors for units that do not belong to category.
// The category itself must already be valid.
func ValidateUnits(lookup UnitLookup, category string, units map[string]string, fieldErrors map[string][]string) map[string][]string {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}
	for field, unit := range units {
		if err := ValidateName(unit); err != nil {
			fieldErrors[field] = append(fieldErrors[field], field+" "+err.Error())
			continue
		}
		if !lookup.HasUnit(category, unit) {
			fieldErrors[field] = append(fieldErrors[field], "unknown unit for category "+category)
		}
	}
	return fieldErrors
}
