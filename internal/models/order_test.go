package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeBasePrice(t *testing.T) {
	testCases := []struct {
		size     Size
		label    string
		expected float64
	}{
		{SizeSmall, "Small", 8.00},
		{SizeMedium, "Medium", 12.00},
		{SizeLarge, "Large", 16.00},
		{SizeSuper, "Super", 20.00},
	}

	for _, tt := range testCases {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.size.String())
			assert.Equal(t, tt.expected, tt.size.BasePrice())

			parsed, err := ParseSize(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.size, parsed)
		})
	}
}

func TestSizeDefaultsToSmall(t *testing.T) {
	var s Size
	assert.Equal(t, SizeSmall, s)
	assert.Equal(t, SizeSmall, DefaultSize)
	assert.Equal(t, SizeSmall, Sizes()[0])
}

func TestSizeOutOfRange(t *testing.T) {
	assert.Equal(t, 0.0, Size(9).BasePrice())
	assert.Equal(t, "Size(9)", Size(9).String())

	_, err := ParseSize("Gigantic")
	assert.Error(t, err)
}

func TestCrustLabels(t *testing.T) {
	assert.Equal(t, []string{"Thin", "Regular", "Deep-dish"}, []string{
		CrustThin.String(), CrustRegular.String(), CrustDeepDish.String(),
	})
	assert.False(t, CrustNone.IsSet())
	assert.Equal(t, "", CrustNone.String())

	for _, c := range Crusts() {
		assert.True(t, c.IsSet())
		parsed, err := ParseCrust(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	none, err := ParseCrust("")
	require.NoError(t, err)
	assert.Equal(t, CrustNone, none)

	_, err = ParseCrust("Stuffed")
	assert.Error(t, err)
}

func TestToppings(t *testing.T) {
	var tp Toppings
	assert.Equal(t, 0, tp.Count())
	assert.Empty(t, tp.Selected())

	tp[4] = true
	tp[0] = true
	assert.Equal(t, 2, tp.Count())
	assert.Equal(t, []int{0, 4}, tp.Selected())

	assert.Equal(t, "Topping 1", ToppingLabel(0))
	assert.Equal(t, "Topping 6", ToppingLabel(5))
}

func TestSelectionIsComplete(t *testing.T) {
	sel := NewSelection()
	assert.Equal(t, CrustNone, sel.Crust)
	assert.Equal(t, SizeSmall, sel.Size)
	assert.False(t, sel.IsComplete())

	sel.Crust = CrustRegular
	assert.False(t, sel.IsComplete(), "crust without toppings")

	sel.Crust = CrustNone
	sel.Toppings[2] = true
	assert.False(t, sel.IsComplete(), "toppings without crust")

	sel.Crust = CrustThin
	assert.True(t, sel.IsComplete())
}
