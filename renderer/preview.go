package renderer

import (
	"github.com/etnz/invoicify"
	"github.com/etnz/invoicify/date"
)

// Preview is the read-only view of an invoice. Numbers keep their exact
// decimal types, templates format them with the invoice currency.
type Preview struct {
	Sender      invoicify.Party   `json:"sender"`
	Recipient   invoicify.Party   `json:"recipient"`
	Number      string            `json:"number"`
	InvoiceDate string            `json:"invoiceDate"` // as displayed, empty if invalid
	DueDate     string            `json:"dueDate"`     // as displayed, empty if invalid
	Items       []PreviewItem     `json:"items"`
	TaxRate     invoicify.Percent `json:"taxRate"`
	Totals      invoicify.Totals  `json:"totals"`
	Notes       string            `json:"notes,omitempty"`
	Currency    string            `json:"currency"`
}

// PreviewItem is a line of the items table.
type PreviewItem struct {
	Description string             `json:"description"`
	Quantity    invoicify.Quantity `json:"quantity"`
	Price       invoicify.Money    `json:"price"`
	Amount      invoicify.Money    `json:"amount"`
}

// NewPreview builds the preview of inv, with its totals.
func NewPreview(inv invoicify.Invoice) *Preview {
	p := &Preview{
		Sender:      inv.Sender,
		Recipient:   inv.Recipient,
		Number:      inv.InvoiceNumber,
		InvoiceDate: date.Display(inv.InvoiceDate),
		DueDate:     date.Display(inv.DueDate),
		Items:       make([]PreviewItem, 0, len(inv.Items)),
		TaxRate:     inv.TaxRate,
		Totals:      inv.Totals(),
		Notes:       inv.Notes,
		Currency:    inv.Currency,
	}
	if p.Currency == "" {
		p.Currency = invoicify.DefaultCurrency
	}
	for _, it := range inv.Items {
		p.Items = append(p.Items, PreviewItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Amount:      it.Amount(),
		})
	}
	return p
}

// Money formats m in the preview currency.
func (p *Preview) Money(m invoicify.Money) string { return m.Format(p.Currency) }

// TaxLabel is the label of the tax line, e.g. "Tax (8.5%)".
func (p *Preview) TaxLabel() string { return "Tax (" + p.TaxRate.String() + "%)" }
