// Package state holds the page state of the converter and counter UIs and the
// event handlers that mutate it. State values are owned by a single caller
// (one request, one REPL); they are not safe for concurrent use.
package state

import "unitconv.dev/internal/conversion"

const (
	DefaultCategory = "length"
	DefaultInput    = "1"
)

// Converter is the session state behind a converter page.
type Converter struct {
	Category string
	FromUnit string
	ToUnit   string
	Input    string

	engine *conversion.Engine
}

// NewConverter returns the initial converter state: the default category with
// its default unit selection and an input of "1".
func NewConverter(engine *conversion.Engine) *Converter {
	c := &Converter{engine: engine, Input: DefaultInput}
	if !c.SetCategory(DefaultCategory) {
		if names := engine.Table().CategoryNames(); len(names) > 0 {
			c.SetCategory(names[0])
		}
	}
	return c
}

// AvailableUnits lists the units of the current category.
func (c *Converter) AvailableUnits() []string {
	return c.engine.ListUnits(c.Category)
}

// Result converts the current input with the current selection.
func (c *Converter) Result() conversion.Outcome {
	return c.engine.Convert(c.Category, c.FromUnit, c.ToUnit, c.Input)
}

// SetCategory switches category and resets the unit selection to the
// category's default. It returns false and leaves the state untouched when
// the category is unknown.
func (c *Converter) SetCategory(category string) bool {
	sel, ok := c.engine.DefaultSelection(category)
	if !ok {
		return false
	}
	c.Category = category
	c.FromUnit = sel.From
	c.ToUnit = sel.To
	return true
}

// SetFromUnit changes the source unit. If it now equals the target unit, the
// target moves to the first other unit of the category.
func (c *Converter) SetFromUnit(unit string) {
	c.FromUnit = unit
	c.ToUnit = c.engine.EnsureDistinct(c.FromUnit, c.ToUnit, c.Category)
}

// SetToUnit changes the target unit. Unlike SetFromUnit it allows the target
// to equal the source.
func (c *Converter) SetToUnit(unit string) {
	c.ToUnit = unit
}

// SwapUnits exchanges source and target units.
func (c *Converter) SwapUnits() {
	c.FromUnit, c.ToUnit = c.ToUnit, c.FromUnit
}

func (c *Converter) SetInput(input string) {
	c.Input = input
}

func (c *Converter) ClearInput() {
	c.Input = ""
}
