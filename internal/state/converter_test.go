package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"unitconv.dev/internal/conversion"
)

func TestNewConverter(t *testing.T) {
	c := NewConverter(conversion.DefaultEngine())

	assert.Equal(t, "length", c.Category)
	assert.Equal(t, "Meter", c.FromUnit)
	assert.Equal(t, "Kilometer", c.ToUnit)
	assert.Equal(t, "1", c.Input)
	assert.Equal(t, "0.001 Kilometer", c.Result().Display)
}

func TestNewConverterWithoutDefaultCategory(t *testing.T) {
	table, err := conversion.NewTable(conversion.Category{
		Name:  "time",
		Units: []conversion.Unit{conversion.Linear("Second", 1), conversion.Linear("Minute", 1.0/60)},
	})
	require.NoError(t, err)

	c := NewConverter(conversion.NewEngine(table))
	assert.Equal(t, "time", c.Category)
	assert.Equal(t, "Second", c.FromUnit)
	assert.Equal(t, "Minute", c.ToUnit)
}

func TestConverterSetCategory(t *testing.T) {
	c := NewConverter(conversion.DefaultEngine())
	c.SetFromUnit("Inch")

	require.True(t, c.SetCategory("temperature"))
	assert.Equal(t, "Celsius", c.FromUnit)
	assert.Equal(t, "Fahrenheit", c.ToUnit)
	assert.Equal(t, []string{"Celsius", "Fahrenheit", "Kelvin"}, c.AvailableUnits())

	assert.False(t, c.SetCategory("time"))
	assert.Equal(t, "temperature", c.Category)
	assert.Equal(t, "Celsius", c.FromUnit)
}

func TestConverterSetFromUnit(t *testing.T) {
	c := NewConverter(conversion.DefaultEngine())

	t.Run("keeps a distinct target", func(t *testing.T) {
		c.SetFromUnit("Foot")
		assert.Equal(t, "Foot", c.FromUnit)
		assert.Equal(t, "Kilometer", c.ToUnit)
	})

	t.Run("moves a colliding target", func(t *testing.T) {
		c.SetFromUnit("Kilometer")
		assert.Equal(t, "Kilometer", c.FromUnit)
		assert.Equal(t, "Meter", c.ToUnit)
	})
}

func TestConverterSetToUnitAllowsSameUnit(t *testing.T) {
	c := NewConverter(conversion.DefaultEngine())

	c.SetToUnit("Meter")
	assert.Equal(t, "Meter", c.FromUnit)
	assert.Equal(t, "Meter", c.ToUnit)
	assert.Equal(t, "1 Meter", c.Result().Display)
}

func TestConverterSwapUnits(t *testing.T) {
	c := NewConverter(conversion.DefaultEngine())
	c.SetInput("15")

	c.SwapUnits()
	assert.Equal(t, "Kilometer", c.FromUnit)
	assert.Equal(t, "Meter", c.ToUnit)
	assert.Equal(t, "15000 Meter", c.Result().Display)

	c.SetToUnit("Kilometer")
	c.SwapUnits()
	assert.Equal(t, "Kilometer", c.FromUnit)
	assert.Equal(t, "Kilometer", c.ToUnit)
}

func TestConverterClearInput(t *testing.T) {
	c := NewConverter(conversion.DefaultEngine())

	c.ClearInput()
	assert.Equal(t, "", c.Input)

	out := c.Result()
	assert.Equal(t, conversion.OutcomeInvalidNumber, out.Kind)
	assert.Equal(t, conversion.InvalidNumberMessage, out.Message())
}

func TestCounter(t *testing.T) {
	var c Counter

	c.Increment()
	c.Increment()
	c.Decrement()
	assert.Equal(t, 1, c.Count)

	c.Decrement()
	c.Decrement()
	assert.Equal(t, -1, c.Count)
}
