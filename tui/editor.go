// Package tui is the interactive invoice editor: a form on the left, the
// live preview on the right, and key bindings to export, print and reset.
package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/etnz/invoicify"
	"github.com/etnz/invoicify/export"
	"github.com/etnz/invoicify/renderer"
	"github.com/rivo/tview"
)

const toastDuration = 4 * time.Second

// Editor wires the store to the views. All its methods run on the tview
// event loop, except the export job which reports back with QueueUpdateDraw.
type Editor struct {
	store    *invoicify.Store
	exporter *export.Exporter
	printer  export.Printer

	App      *tview.Application
	layout   *tview.Grid
	header   *tview.TextView
	form     *tview.Form
	items    *tview.Table
	itemForm *tview.Form
	preview  *tview.TextView
	footer   *tview.TextView

	// selected is the id of the item shown in itemForm, "" if none.
	selected string
	// rowIDs are the item ids of the table rows, after the header row.
	rowIDs []string
	// syncing is set while the widgets are refreshed from the store, so that
	// their changed callbacks do not write back.
	syncing   bool
	exporting bool
	toastSeq  int

	unsubscribe func()
}

// New creates the editor of store.
func New(store *invoicify.Store, exporter *export.Exporter, printer export.Printer) *Editor {
	e := &Editor{
		store:    store,
		exporter: exporter,
		printer:  printer,
	}
	e.header = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	e.header.SetBorder(true)
	e.footer = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	e.footer.SetBorder(true)
	e.preview = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	e.preview.SetBorder(true).SetTitle("Preview")

	e.form = e.createForm()
	e.items = e.createItems()
	e.itemForm = e.createItemForm()
	e.layout = e.createLayout()

	e.App = tview.NewApplication().SetRoot(e.layout, true).SetFocus(e.form)
	e.setupKeyBindings()

	e.unsubscribe = store.Subscribe(e.refresh)
	e.refresh(store.Snapshot())
	e.syncForms(store.Snapshot())
	e.toast("Ready")
	return e
}

// Run runs the application until the user quits.
func (e *Editor) Run() error {
	defer e.unsubscribe()
	return e.App.Run()
}

func (e *Editor) createLayout() *tview.Grid {
	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(e.form, 0, 3, true).
		AddItem(e.items, 0, 1, false).
		AddItem(e.itemForm, 9, 0, false)

	grid := tview.NewGrid().
		SetRows(3, 0, 3).
		SetColumns(0, 0).
		SetBorders(false)
	grid.AddItem(e.header, 0, 0, 1, 2, 0, 0, false)
	grid.AddItem(e.footer, 2, 0, 1, 2, 0, 0, false)
	grid.AddItem(left, 1, 0, 1, 1, 0, 0, true)
	grid.AddItem(e.preview, 1, 1, 1, 1, 0, 0, false)
	return grid
}

// refresh is the store observer: it redraws the derived views.
func (e *Editor) refresh(inv invoicify.Invoice) {
	e.header.SetText(fmt.Sprintf("[::b]Invoicify[::-]  #%s  total %s",
		tview.Escape(inv.InvoiceNumber), tview.Escape(renderer.NewPreview(inv).Money(inv.Totals().Total))))
	e.showPreview(inv)
	e.fillItems(inv)
}

func (e *Editor) showPreview(inv invoicify.Invoice) {
	md := renderer.RenderInvoice(renderer.NewPreview(inv))
	// the preview is not laid out before the first draw.
	_, _, width, _ := e.preview.GetInnerRect()
	if width < 40 {
		width = 80
	}
	out, err := renderer.Terminal(md, width, "light")
	if err != nil {
		log.Printf("cannot render preview: %v", err)
		e.preview.SetText(tview.Escape(md))
		return
	}
	e.preview.SetText(tview.TranslateANSI(out))
}

// toast shows a transient message in the footer.
func (e *Editor) toast(msg string) {
	e.toastSeq++
	seq := e.toastSeq
	e.footer.SetText(msg + "  |  " + help)
	time.AfterFunc(toastDuration, func() {
		e.App.QueueUpdateDraw(func() {
			if e.toastSeq == seq {
				e.footer.SetText(help)
			}
		})
	})
}

// exportPDF starts a background export of the invoice as it is now.
func (e *Editor) exportPDF() {
	if e.exporting {
		return
	}
	e.exporting = true
	e.toast("[yellow]Generating PDF...[-]")
	results := e.exporter.Start(context.Background(), e.store.Snapshot())
	go func() {
		res := <-results
		e.App.QueueUpdateDraw(func() { e.exportDone(res) })
	}()
}

func (e *Editor) exportDone(res export.Result) {
	e.exporting = false
	if res.Err != nil {
		e.toast("[red]Failed to generate PDF.[-]")
		return
	}
	e.toast(fmt.Sprintf("[green]PDF saved to %s[-]", tview.Escape(res.Path)))
}

func (e *Editor) print() {
	if err := e.printer.Print(context.Background(), renderer.NewPreview(e.store.Snapshot())); err != nil {
		log.Printf("print failed: %v", err)
		e.toast("[red]Failed to print.[-]")
		return
	}
	e.toast("[green]Sent to printer.[-]")
}

func (e *Editor) reset() {
	if err := e.store.Reset(); err != nil {
		e.saveFailed(err)
	}
	e.syncForms(e.store.Snapshot())
	e.toast("[green]Invoice form has been reset.[-]")
}

// saveFailed reports a persistence error, the edit itself is kept.
func (e *Editor) saveFailed(err error) {
	log.Printf("cannot save invoice: %v", err)
	e.toast("[red]Cannot save the invoice, see the log.[-]")
}
