package invoicify

// Totals are derived from the line items and the tax rate, they are never stored.
type Totals struct {
	Subtotal Money `json:"subtotal"`
	Tax      Money `json:"taxAmount"`
	Total    Money `json:"total"`
}

// ComputeTotals returns
//
//	subtotal = Σ quantity × price
//	tax      = subtotal × taxRate / 100
//	total    = subtotal + tax
//
// Computation is exact, rounding is a display concern (see Money.Format).
// Negative quantities or prices are not rejected.
func ComputeTotals(items []LineItem, taxRate Percent) Totals {
	var subtotal Money
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount())
	}
	tax := subtotal.Percentage(taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
