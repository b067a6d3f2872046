// Package conversion implements the unit conversion engine: an immutable
// category/unit table, the conversion algorithm and the display format of
// converted values.
//
// Every conversion failure is reported as a tagged Outcome rather than an
// error or a panic, so callers always get something they can display.
package conversion

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Engine converts values between the units of a Table. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	table *Table
}

// Selection is a pair of units picked for a conversion.
type Selection struct {
	From string
	To   string
}

// NewEngine creates an engine over the given table.
func NewEngine(table *Table) *Engine {
	return &Engine{table: table}
}

// DefaultEngine creates an engine over the built-in table.
func DefaultEngine() *Engine {
	table, err := NewTable(DefaultCategories()...)
	if err != nil {
		panic(fmt.Sprintf("conversion: invalid default table: %v", err))
	}
	return NewEngine(table)
}

// Table returns the engine's conversion table.
func (e *Engine) Table() *Table {
	return e.table
}

// HasCategory reports whether category is a key of the table.
func (e *Engine) HasCategory(category string) bool {
	_, _, ok := e.table.category(category)
	return ok
}

// HasUnit reports whether unit belongs to category.
func (e *Engine) HasUnit(category, unit string) bool {
	_, _, ok := e.table.unit(category, unit)
	return ok
}

// ListUnits returns the units of category in declaration order, or nil if the
// category is unknown.
func (e *Engine) ListUnits(category string) []string {
	c, _, ok := e.table.category(category)
	if !ok {
		return nil
	}
	names := make([]string, len(c.Units))
	for i, u := range c.Units {
		names[i] = u.Name
	}
	return names
}

// DefaultSelection returns the first and second units of category. When they
// would be equal, To is the first unit that differs from From. A category with
// a single unit selects it twice. ok is false for unknown or empty categories.
func (e *Engine) DefaultSelection(category string) (sel Selection, ok bool) {
	units := e.ListUnits(category)
	if len(units) == 0 {
		return Selection{}, false
	}

	sel.From = units[0]
	sel.To = units[0]
	if len(units) > 1 {
		sel.To = units[1]
	}
	sel.To = firstOther(units, sel.From, sel.To)
	return sel, true
}

// EnsureDistinct returns other unless it equals selected, in which case it
// returns the first unit of category that differs from selected. If no such
// unit exists, other is returned unchanged.
func (e *Engine) EnsureDistinct(selected, other, category string) string {
	if selected != other {
		return other
	}
	return firstOther(e.ListUnits(category), selected, other)
}

func firstOther(units []string, selected, fallback string) string {
	if selected != fallback {
		return fallback
	}
	for _, u := range units {
		if u != selected {
			return u
		}
	}
	return fallback
}

// Convert parses rawInput and converts it from fromUnit to toUnit within
// category.
func (e *Engine) Convert(category, fromUnit, toUnit, rawInput string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = internalError(fmt.Errorf("%v", r))
		}
	}()

	v, err := ParseNumber(rawInput)
	if err != nil {
		return invalidNumber()
	}

	fromKind, from, ok := e.table.unit(category, fromUnit)
	if !ok {
		return unsupported()
	}
	_, to, ok := e.table.unit(category, toUnit)
	if !ok {
		return unsupported()
	}

	var result float64
	switch fromKind {
	case KindTemperature:
		result, ok = convertTemperature(v, from.Tag, to.Tag)
		if !ok {
			return unsupported()
		}
	case KindLinear:
		if from.Tag != "" || to.Tag != "" {
			return unsupported()
		}
		result, err = convertLinear(v, from.Factor, to.Factor)
		if err != nil {
			return internalError(err)
		}
	default:
		return unsupported()
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return internalError(errors.New("result is not a finite number"))
	}
	return succeeded(result, to.Name)
}

func convertLinear(v, fromFactor, toFactor float64) (float64, error) {
	if fromFactor == 0 {
		return 0, errors.New("division by zero")
	}
	if math.IsNaN(fromFactor) || math.IsInf(fromFactor, 0) || math.IsNaN(toFactor) || math.IsInf(toFactor, 0) {
		return 0, errors.New("conversion factor is not a finite number")
	}
	base := v / fromFactor
	return base * toFactor, nil
}

// ParseNumber parses a base-10 floating point number, ignoring surrounding
// whitespace. Hexadecimal notation, NaN and infinities are rejected.
func ParseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "xX") {
		return 0, ErrInvalidNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	return v, nil
}
