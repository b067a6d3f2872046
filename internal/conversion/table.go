package conversion

import "fmt"

// Kind describes how the units of a category relate to each other.
type Kind int

const (
	// KindLinear categories convert through a multiplicative factor against
	// an implicit base unit.
	KindLinear Kind = iota
	// KindTemperature categories convert through fixed affine formulas.
	KindTemperature
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindTemperature:
		return "temperature"
	default:
		return "unknown"
	}
}

// TemperatureTag identifies a temperature scale.
type TemperatureTag string

const (
	TagCelsius    TemperatureTag = "C"
	TagFahrenheit TemperatureTag = "F"
	TagKelvin     TemperatureTag = "K"
)

// Unit is a named unit within a category. Linear units carry a Factor
// (how many of this unit equal one base unit), temperature units carry a Tag.
type Unit struct {
	Name   string
	Factor float64
	Tag    TemperatureTag
}

// Category is a measurement domain and its units in declaration order.
type Category struct {
	Name  string
	Kind  Kind
	Units []Unit
}

// Linear builds a unit for a linear category.
func Linear(name string, factor float64) Unit {
	return Unit{Name: name, Factor: factor}
}

// Temperature builds a unit for the temperature category.
func Temperature(name string, tag TemperatureTag) Unit {
	return Unit{Name: name, Tag: tag}
}

// Table is an immutable, ordered category -> unit lookup. It is built once and
// only read afterwards, so it can be shared between goroutines.
type Table struct {
	categories []Category
	index      map[string]int
	units      []map[string]int
}

// NewTable copies the given categories into a Table. Category names must be
// unique and unit names must be unique within their category.
func NewTable(categories ...Category) (*Table, error) {
	t := &Table{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
		units:      make([]map[string]int, 0, len(categories)),
	}

	for _, c := range categories {
		if c.Name == "" {
			return nil, fmt.Errorf("category name cannot be empty")
		}
		if _, exists := t.index[c.Name]; exists {
			return nil, fmt.Errorf("duplicate category %q", c.Name)
		}

		unitIndex := make(map[string]int, len(c.Units))
		units := make([]Unit, len(c.Units))
		for i, u := range c.Units {
			if _, exists := unitIndex[u.Name]; exists {
				return nil, fmt.Errorf("duplicate unit %q in category %q", u.Name, c.Name)
			}
			unitIndex[u.Name] = i
			units[i] = u
		}

		t.index[c.Name] = len(t.categories)
		t.categories = append(t.categories, Category{Name: c.Name, Kind: c.Kind, Units: units})
		t.units = append(t.units, unitIndex)
	}

	return t, nil
}

// Categories returns a copy of the categories in declaration order.
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = Category{Name: c.Name, Kind: c.Kind, Units: append([]Unit(nil), c.Units...)}
	}
	return out
}

// CategoryNames returns the category names in declaration order.
func (t *Table) CategoryNames() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

func (t *Table) category(name string) (*Category, map[string]int, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, nil, false
	}
	return &t.categories[i], t.units[i], true
}

func (t *Table) unit(category, name string) (Kind, Unit, bool) {
	c, idx, ok := t.category(category)
	if !ok {
		return 0, Unit{}, false
	}
	i, ok := idx[name]
	if !ok {
		return 0, Unit{}, false
	}
	return c.Kind, c.Units[i], true
}

// DefaultCategories returns the built-in conversion table definition.
func DefaultCategories() []Category {
	return []Category{
		{
			Name: "length",
			Kind: KindLinear,
			Units: []Unit{
				Linear("Meter", 1.0),
				Linear("Kilometer", 0.001),
				Linear("Centimeter", 100.0),
				Linear("Millimeter", 1000.0),
				Linear("Mile", 0.000621371),
				Linear("Yard", 1.09361),
				Linear("Foot", 3.28084),
				Linear("Inch", 39.3701),
			},
		},
		{
			Name: "weight",
			Kind: KindLinear,
			Units: []Unit{
				Linear("Kilogram", 1.0),
				Linear("Gram", 1000.0),
				Linear("Milligram", 1000000.0),
				Linear("Metric Ton", 0.001),
				Linear("Pound", 2.20462),
				Linear("Ounce", 35.274),
			},
		},
		{
			Name: "temperature",
			Kind: KindTemperature,
			Units: []Unit{
				Temperature("Celsius", TagCelsius),
				Temperature("Fahrenheit", TagFahrenheit),
				Temperature("Kelvin", TagKelvin),
			},
		},
		{
			Name: "area",
			Kind: KindLinear,
			Units: []Unit{
				Linear("Square Meter", 1.0),
				Linear("Square Kilometer", 0.000001),
				Linear("Square Centimeter", 10000.0),
				Linear("Square Millimeter", 1000000.0),
				Linear("Square Mile", 3.861e-7),
				Linear("Square Yard", 1.19599),
				Linear("Square Foot", 10.7639),
				Linear("Square Inch", 1550.0),
				Linear("Acre", 0.000247105),
				Linear("Hectare", 0.0001),
			},
		},
		{
			Name: "volume",
			Kind: KindLinear,
			Units: []Unit{
				Linear("Cubic Meter", 1.0),
				Linear("Cubic Centimeter", 1000000.0),
				Linear("Liter", 1000.0),
				Linear("Milliliter", 1000000.0),
				Linear("Gallon (US)", 264.172),
				Linear("Quart (US)", 1056.69),
				Linear("Pint (US)", 2113.38),
				Linear("Cup (US)", 4226.75),
				Linear("Fluid Ounce (US)", 33814.0),
				Linear("Tablespoon (US)", 67628.0),
				Linear("Teaspoon (US)", 202884.0),
			},
		},
	}
}
