package models

import (
	"fmt"
	"strings"
)

// TaxRate is applied to the sub-total.
const TaxRate = 0.07

const (
	receiptBanner    = "========================================="
	receiptSeparator = "-----------------------------------------"
	receiptColumn    = 30
)

// Quote is the price breakdown of a priced selection. Values are not rounded.
type Quote struct {
	Selection   Selection
	BaseCost    float64
	ToppingCost float64
	SubTotal    float64
	Tax         float64
	Total       float64
}

// NewQuote prices sel. Callers are expected to check sel.IsComplete first.
func NewQuote(sel Selection) Quote {
	base := sel.Size.BasePrice()
	toppings := float64(sel.Toppings.Count()) * ToppingPrice
	subTotal := base + toppings
	tax := TaxRate * subTotal

	return Quote{
		Selection:   sel,
		BaseCost:    base,
		ToppingCost: toppings,
		SubTotal:    subTotal,
		Tax:         tax,
		Total:       subTotal + tax,
	}
}

// Receipt is the printable summary of a quote. The zero value is the empty
// receipt shown before any order is placed.
type Receipt struct {
	text string
}

// NewReceipt lays out q in the fixed receipt format.
func NewReceipt(q Quote) Receipt {
	var b strings.Builder

	b.WriteString(receiptBanner + "\n")
	writeRow(&b, "Type of Crust & Size", "Price")
	writeRow(&b, fmt.Sprintf("%s - %s", q.Selection.Crust, q.Selection.Size), money(q.BaseCost))
	b.WriteString("\n")

	writeRow(&b, "Ingredients", "Price")
	for _, i := range q.Selection.Toppings.Selected() {
		writeRow(&b, ToppingLabel(i), money(ToppingPrice))
	}
	b.WriteString("\n")

	writeRow(&b, "Sub-total:", money(q.SubTotal))
	writeRow(&b, "Tax:", money(q.Tax))
	b.WriteString(receiptSeparator + "\n")
	writeRow(&b, "Total:", money(q.Total))
	b.WriteString(receiptBanner)

	return Receipt{text: b.String()}
}

func (r Receipt) String() string {
	return r.text
}

// IsEmpty reports whether no order has been rendered.
func (r Receipt) IsEmpty() bool {
	return r.text == ""
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-*s%s\n", receiptColumn, label, value)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
