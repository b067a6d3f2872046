package models

import "unitconv.dev/internal/conversion"

// Category describes one measurement domain for the categories listing.
type Category struct {
	Name  string   `json:"name"`
	Label string   `json:"label"`
	Kind  string   `json:"kind"`
	Units []string `json:"units"`
}

// UnitsEntry lists the units of a category with its default selection.
type UnitsEntry struct {
	Category    string   `json:"category"`
	Units       []string `json:"units"`
	DefaultFrom string   `json:"defaultFrom"`
	DefaultTo   string   `json:"defaultTo"`
}

// ConversionEntry is the API form of a conversion outcome. Value is only set
// when OK is true.
type ConversionEntry struct {
	Category string   `json:"category"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Input    string   `json:"input"`
	Outcome  string   `json:"outcome"`
	OK       bool     `json:"ok"`
	Value    *float64 `json:"value,omitempty"`
	Display  string   `json:"display,omitempty"`
	Message  string   `json:"message"`
}

// DistinctUnitEntry is the unit chosen by an ensure-distinct request.
type DistinctUnitEntry struct {
	Category string `json:"category"`
	Selected string `json:"selected"`
	Unit     string `json:"unit"`
}

func NewCategory(c conversion.Category, label string) Category {
	units := make([]string, len(c.Units))
	for i, u := range c.Units {
		units[i] = u.Name
	}
	return Category{
		Name:  c.Name,
		Label: label,
		Kind:  c.Kind.String(),
		Units: units,
	}
}

func NewUnitsEntry(category string, units []string, sel conversion.Selection) UnitsEntry {
	return UnitsEntry{
		Category:    category,
		Units:       units,
		DefaultFrom: sel.From,
		DefaultTo:   sel.To,
	}
}

func NewConversionEntry(category, from, to, input string, out conversion.Outcome) ConversionEntry {
	entry := ConversionEntry{
		Category: category,
		From:     from,
		To:       to,
		Input:    input,
		Outcome:  out.Kind.String(),
		OK:       out.OK(),
		Message:  out.Message(),
	}
	if out.OK() {
		value := out.Value
		entry.Value = &value
		entry.Display = out.Display
	}
	return entry
}
