package tui

import (
	"github.com/etnz/invoicify"
	"github.com/etnz/invoicify/renderer"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const fieldWidth = 40

// binding ties a form field to the invoice.
type binding struct {
	label string
	get   func(invoicify.Invoice) string
	set   func(s *invoicify.Store, value string) error
	area  bool // multi-line field
}

func field(label string, f invoicify.Field, get func(invoicify.Invoice) string) binding {
	return binding{label: label, get: get, set: func(s *invoicify.Store, v string) error { return s.UpdateField(f, v) }}
}

func partyField(label string, section invoicify.Section, f invoicify.PartyField, get func(invoicify.Invoice) string, area bool) binding {
	return binding{label: label, get: get, area: area, set: func(s *invoicify.Store, v string) error {
		return s.UpdateNestedField(section, f, v)
	}}
}

// invoiceBindings lists the fields of the invoice form, in display order.
var invoiceBindings = []binding{
	partyField("From", invoicify.Sender, invoicify.Name, func(inv invoicify.Invoice) string { return inv.Sender.Name }, false),
	partyField("Address", invoicify.Sender, invoicify.Address, func(inv invoicify.Invoice) string { return inv.Sender.Address }, true),
	partyField("Email", invoicify.Sender, invoicify.Email, func(inv invoicify.Invoice) string { return inv.Sender.Email }, false),
	partyField("To", invoicify.Recipient, invoicify.Name, func(inv invoicify.Invoice) string { return inv.Recipient.Name }, false),
	partyField("Client Address", invoicify.Recipient, invoicify.Address, func(inv invoicify.Invoice) string { return inv.Recipient.Address }, true),
	partyField("Client Email", invoicify.Recipient, invoicify.Email, func(inv invoicify.Invoice) string { return inv.Recipient.Email }, false),
	field("Invoice Number", invoicify.InvoiceNumber, func(inv invoicify.Invoice) string { return inv.InvoiceNumber }),
	field("Invoice Date", invoicify.InvoiceDate, func(inv invoicify.Invoice) string { return inv.InvoiceDate }),
	field("Due Date", invoicify.DueDate, func(inv invoicify.Invoice) string { return inv.DueDate }),
	field("Tax Rate (%)", invoicify.TaxRate, func(inv invoicify.Invoice) string { return inv.TaxRate.String() }),
	{
		label: "Notes",
		area:  true,
		get:   func(inv invoicify.Invoice) string { return inv.Notes },
		set:   func(s *invoicify.Store, v string) error { return s.UpdateField(invoicify.Notes, v) },
	},
}

func (e *Editor) addField(form *tview.Form, label, value string, area bool, set func(string) error) {
	changed := func(text string) {
		if e.syncing {
			return
		}
		if err := set(text); err != nil {
			e.saveFailed(err)
		}
	}
	if area {
		form.AddTextArea(label, value, fieldWidth, 3, 0, changed)
	} else {
		form.AddInputField(label, value, fieldWidth, nil, changed)
	}
}

func (e *Editor) createForm() *tview.Form {
	form := tview.NewForm()
	form.SetBorder(true).SetTitle("Invoice Details (F1)")
	for _, b := range invoiceBindings {
		e.addField(form, b.label, "", b.area, func(v string) error { return b.set(e.store, v) })
	}
	return form
}

// itemBindings lists the fields of the item form.
var itemBindings = []struct {
	label string
	field invoicify.ItemField
	get   func(invoicify.LineItem) string
}{
	{"Description", invoicify.Description, func(it invoicify.LineItem) string { return it.Description }},
	{"Quantity", invoicify.ItemQty, func(it invoicify.LineItem) string { return it.Quantity.String() }},
	{"Price", invoicify.ItemPrice, func(it invoicify.LineItem) string { return it.Price.String() }},
}

func (e *Editor) createItemForm() *tview.Form {
	form := tview.NewForm()
	form.SetBorder(true).SetTitle("Item (F3)")
	for _, b := range itemBindings {
		e.addField(form, b.label, "", false, func(v string) error {
			return e.store.UpdateItem(e.selected, b.field, v)
		})
	}
	return form
}

func (e *Editor) createItems() *tview.Table {
	table := tview.NewTable()
	table.SetBorder(true).SetTitle("Items (F2)  Ctrl-N add  Ctrl-D delete")
	table.SetSelectable(true, false)
	table.SetFixed(1, 0)
	table.SetSelectionChangedFunc(func(row, _ int) {
		if row < 1 || row > len(e.rowIDs) {
			return
		}
		if id := e.rowIDs[row-1]; id != e.selected {
			e.selected = id
			e.syncItemForm(e.store.Snapshot())
		}
	})
	return table
}

// fillItems redraws the items table and keeps the selection on a valid item.
func (e *Editor) fillItems(inv invoicify.Invoice) {
	e.items.Clear()
	for col, h := range []string{"Description", "Qty", "Price", "Total"} {
		e.items.SetCell(0, col, tview.NewTableCell(h).SetSelectable(false).SetAttributes(tcell.AttrBold))
	}
	p := renderer.NewPreview(inv)
	e.rowIDs = e.rowIDs[:0]
	for i, it := range p.Items {
		e.items.SetCell(i+1, 0, tview.NewTableCell(tview.Escape(it.Description)).SetExpansion(1))
		e.items.SetCell(i+1, 1, tview.NewTableCell(it.Quantity.String()).SetAlign(tview.AlignRight))
		e.items.SetCell(i+1, 2, tview.NewTableCell(p.Money(it.Price)).SetAlign(tview.AlignRight))
		e.items.SetCell(i+1, 3, tview.NewTableCell(p.Money(it.Amount)).SetAlign(tview.AlignRight))
		e.rowIDs = append(e.rowIDs, inv.Items[i].ID)
	}

	if _, ok := inv.Item(e.selected); !ok {
		e.selected = ""
		if len(inv.Items) > 0 {
			e.selected = inv.Items[0].ID
		}
		e.syncItemForm(inv)
	}
	for i, id := range e.rowIDs {
		if id == e.selected {
			e.items.Select(i+1, 0)
		}
	}
}

// selectItem shows the item id in the item form.
func (e *Editor) selectItem(id string) {
	e.selected = id
	for i, rid := range e.rowIDs {
		if rid == id {
			e.items.Select(i+1, 0)
		}
	}
	e.syncItemForm(e.store.Snapshot())
}

func (e *Editor) addItem() {
	id, err := e.store.AddItem()
	if err != nil {
		e.saveFailed(err)
	}
	e.selectItem(id)
	e.App.SetFocus(e.itemForm)
}

func (e *Editor) removeItem() {
	if e.selected == "" {
		return
	}
	if err := e.store.RemoveItem(e.selected); err != nil {
		e.saveFailed(err)
	}
}

// syncForms copies the invoice into the form fields.
func (e *Editor) syncForms(inv invoicify.Invoice) {
	e.syncing = true
	defer func() { e.syncing = false }()
	for _, b := range invoiceBindings {
		setText(e.form.GetFormItemByLabel(b.label), b.get(inv))
	}
	e.syncing = false
	e.syncItemForm(inv)
}

func (e *Editor) syncItemForm(inv invoicify.Invoice) {
	e.syncing = true
	defer func() { e.syncing = false }()
	it, ok := inv.Item(e.selected)
	for _, b := range itemBindings {
		text := ""
		if ok {
			text = b.get(it)
		}
		setText(e.itemForm.GetFormItemByLabel(b.label), text)
	}
}

func setText(item tview.FormItem, text string) {
	switch f := item.(type) {
	case *tview.InputField:
		f.SetText(text)
	case *tview.TextArea:
		f.SetText(text, false)
	}
}
