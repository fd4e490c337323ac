package services

import (
	"errors"
	"fmt"

	"pizza-order-form/internal/models"
)

// ErrIncompleteOrder is returned when an order is missing its crust or has no
// toppings.
var ErrIncompleteOrder = errors.New("incomplete order")

// PricingService prices selections and lays out their receipts. It holds no
// state and never touches the UI.
type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// Quote validates sel and returns its price breakdown.
func (ps *PricingService) Quote(sel models.Selection) (models.Quote, error) {
	if !sel.Crust.IsSet() {
		return models.Quote{}, fmt.Errorf("%w: no crust selected", ErrIncompleteOrder)
	}
	if sel.Toppings.Count() == 0 {
		return models.Quote{}, fmt.Errorf("%w: no toppings selected", ErrIncompleteOrder)
	}

	return models.NewQuote(sel), nil
}

// Receipt prices sel and formats the result.
func (ps *PricingService) Receipt(sel models.Selection) (models.Quote, models.Receipt, error) {
	quote, err := ps.Quote(sel)
	if err != nil {
		return models.Quote{}, models.Receipt{}, err
	}
	return quote, models.NewReceipt(quote), nil
}
