package invoicify

import (
	"slices"

	"github.com/etnz/invoicify/date"
)

// Party is the sender or the recipient of an invoice. All fields are free text.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// LineItem is one billed line. ID is generated when the item is created and never changes.
type LineItem struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Quantity    Quantity `json:"quantity"`
	Price       Money    `json:"price"`
}

// Amount returns quantity × price.
func (it LineItem) Amount() Money { return it.Price.Mul(it.Quantity) }

// Invoice is the editable state of the single invoice being worked on.
//
// Dates are kept as the ISO-8601 text the user typed. They may be empty or
// invalid, readers use date.Display to show them.
type Invoice struct {
	Sender        Party      `json:"sender"`
	Recipient     Party      `json:"recipient"`
	InvoiceNumber string     `json:"invoiceNumber"`
	InvoiceDate   string     `json:"invoiceDate"`
	DueDate       string     `json:"dueDate"`
	Items         []LineItem `json:"items"`
	Notes         string     `json:"notes"`
	TaxRate       Percent    `json:"taxRate"`
	Currency      string     `json:"currency,omitempty"`
}

// PaymentTerm is the number of days between the invoice date and the due date of a new invoice.
const PaymentTerm = 30

// Defaults returns the content of a brand new invoice issued on today.
// Line item ids are generated by newID.
func Defaults(today date.Date, newID func() string) Invoice {
	return Invoice{
		Sender: Party{
			Name:    "Your Company",
			Address: "123 Main St, Anytown, USA",
			Email:   "your.company@example.com",
		},
		Recipient: Party{
			Name:    "Client Company",
			Address: "456 Oak Ave, Othertown, USA",
			Email:   "client.company@example.com",
		},
		InvoiceNumber: "INV-001",
		InvoiceDate:   today.String(),
		DueDate:       today.Add(PaymentTerm).String(),
		Items: []LineItem{
			{ID: newID(), Description: "Web Design Services", Quantity: Q(10), Price: M(150)},
			{ID: newID(), Description: "Backend Development", Quantity: Q(20), Price: M(200)},
		},
		Notes:   "Thank you for your business. Please pay within 30 days.",
		TaxRate: P(8.5),
	}
}

// Clone returns a deep copy of inv.
func (inv Invoice) Clone() Invoice {
	inv.Items = slices.Clone(inv.Items)
	return inv
}

// Totals returns the derived totals of inv.
func (inv Invoice) Totals() Totals { return ComputeTotals(inv.Items, inv.TaxRate) }

// Item returns the line item with the given id.
func (inv Invoice) Item(id string) (LineItem, bool) {
	i := inv.indexOf(id)
	if i < 0 {
		return LineItem{}, false
	}
	return inv.Items[i], true
}

func (inv Invoice) indexOf(id string) int {
	return slices.IndexFunc(inv.Items, func(it LineItem) bool { return it.ID == id })
}

// party returns the section of inv, or nil if section is unknown.
func (inv *Invoice) party(section Section) *Party {
	switch section {
	case Sender:
		return &inv.Sender
	case Recipient:
		return &inv.Recipient
	}
	return nil
}
