package services

import (
	"testing"

	"pizza-order-form/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRejectsIncompleteOrders(t *testing.T) {
	withTopping := models.Toppings{}
	withTopping[3] = true

	testCases := []struct {
		name string
		sel  models.Selection
	}{
		{
			name: "startup defaults",
			sel:  models.NewSelection(),
		},
		{
			name: "no crust",
			sel:  models.Selection{Crust: models.CrustNone, Size: models.SizeLarge, Toppings: withTopping},
		},
		{
			name: "no toppings",
			sel:  models.Selection{Crust: models.CrustThin, Size: models.SizeMedium},
		},
	}

	ps := NewPricingService()
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ps.Quote(tt.sel)
			assert.ErrorIs(t, err, ErrIncompleteOrder)

			_, receipt, err := ps.Receipt(tt.sel)
			assert.ErrorIs(t, err, ErrIncompleteOrder)
			assert.True(t, receipt.IsEmpty())
		})
	}
}

func TestReceiptForCompleteOrder(t *testing.T) {
	sel := models.Selection{Crust: models.CrustDeepDish, Size: models.SizeSuper}
	for i := range sel.Toppings {
		sel.Toppings[i] = true
	}

	quote, receipt, err := NewPricingService().Receipt(sel)
	require.NoError(t, err)

	assert.InDelta(t, 27.82, quote.Total, 1e-9)
	assert.Equal(t, sel, quote.Selection)
	assert.Contains(t, receipt.String(), "Total:                        $27.82")
	assert.Contains(t, receipt.String(), "Tax:                          $1.82")
}
