package utils

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryLabel is the display label of a category name ("length" -> "Length").
func CategoryLabel(category string) string {
	// a Caser keeps state between calls, so each call gets its own
	return cases.Title(language.English).String(category)
}
