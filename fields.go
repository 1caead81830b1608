package invoicify

import (
	"fmt"
	"strings"
)

// Field names a top-level scalar field of an Invoice.
type Field string

const (
	InvoiceNumber Field = "invoiceNumber"
	InvoiceDate   Field = "invoiceDate"
	DueDate       Field = "dueDate"
	Notes         Field = "notes"
	TaxRate       Field = "taxRate"
	Currency      Field = "currency"
)

// Fields lists the scalar fields in display order.
var Fields = []Field{InvoiceNumber, InvoiceDate, DueDate, Notes, TaxRate, Currency}

// Section names one of the two parties of an Invoice.
type Section string

const (
	Sender    Section = "sender"
	Recipient Section = "recipient"
)

var Sections = []Section{Sender, Recipient}

// PartyField names a field of a Party.
type PartyField string

const (
	Name    PartyField = "name"
	Address PartyField = "address"
	Email   PartyField = "email"
)

var PartyFields = []PartyField{Name, Address, Email}

// ItemField names an editable field of a LineItem. The id is not editable.
type ItemField string

const (
	Description ItemField = "description"
	ItemQty     ItemField = "quantity"
	ItemPrice   ItemField = "price"
)

var ItemFields = []ItemField{Description, ItemQty, ItemPrice}

// parseName matches s against names, ignoring case, dashes and underscores.
func parseName[T ~string](kind, s string, names []T) (T, error) {
	normalize := func(s string) string {
		return strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
	}
	for _, n := range names {
		if normalize(string(n)) == normalize(s) {
			return n, nil
		}
	}
	valid := make([]string, len(names))
	for i, n := range names {
		valid[i] = string(n)
	}
	return "", fmt.Errorf("unknown %s %q, want one of %s", kind, s, strings.Join(valid, ", "))
}

// ParseField parses a scalar field name such as "invoiceNumber" or "due-date".
func ParseField(s string) (Field, error) { return parseName("field", s, Fields) }

// ParseSection parses "sender" or "recipient".
func ParseSection(s string) (Section, error) { return parseName("section", s, Sections) }

// ParsePartyField parses "name", "address" or "email".
func ParsePartyField(s string) (PartyField, error) { return parseName("party field", s, PartyFields) }

// ParseItemField parses "description", "quantity" or "price".
func ParseItemField(s string) (ItemField, error) { return parseName("item field", s, ItemFields) }
