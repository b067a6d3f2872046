package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"length", "weight", "temperature", "area", "volume"}, names)

	for _, c := range categories {
		t.Run(c.Name, func(t *testing.T) {
			require.GreaterOrEqual(t, len(c.Units), 2)
			for _, u := range c.Units {
				if c.Kind == KindTemperature {
					assert.True(t, knownTag(u.Tag), "unit %s", u.Name)
					continue
				}
				assert.Empty(t, u.Tag, "unit %s", u.Name)
				assert.Greater(t, u.Factor, 0.0, "unit %s", u.Name)
			}
			// the base unit comes first
			if c.Kind == KindLinear {
				assert.Equal(t, 1.0, c.Units[0].Factor)
			}
		})
	}
}

func TestNewTable(t *testing.T) {
	t.Run("rejects duplicate categories", func(t *testing.T) {
		_, err := NewTable(
			Category{Name: "length", Units: []Unit{Linear("Meter", 1)}},
			Category{Name: "length", Units: []Unit{Linear("Foot", 3.28084)}},
		)
		assert.ErrorContains(t, err, `duplicate category "length"`)
	})

	t.Run("rejects duplicate units", func(t *testing.T) {
		_, err := NewTable(Category{Name: "length", Units: []Unit{Linear("Meter", 1), Linear("Meter", 2)}})
		assert.ErrorContains(t, err, `duplicate unit "Meter"`)
	})

	t.Run("rejects unnamed categories", func(t *testing.T) {
		_, err := NewTable(Category{Units: []Unit{Linear("Meter", 1)}})
		assert.Error(t, err)
	})

	t.Run("is not affected by later changes to its input", func(t *testing.T) {
		units := []Unit{Linear("Meter", 1), Linear("Foot", 3.28084)}
		table, err := NewTable(Category{Name: "length", Units: units})
		require.NoError(t, err)

		units[1] = Linear("Furlong", 0.00497097)
		assert.Equal(t, []string{"Meter", "Foot"}, NewEngine(table).ListUnits("length"))
	})

	t.Run("returns copies of its categories", func(t *testing.T) {
		table, err := NewTable(DefaultCategories()...)
		require.NoError(t, err)

		categories := table.Categories()
		categories[0].Units[0] = Linear("Parsec", 3.24e-17)
		assert.Equal(t, "Meter", table.Categories()[0].Units[0].Name)
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "linear", KindLinear.String())
	assert.Equal(t, "temperature", KindTemperature.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
