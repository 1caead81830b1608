package tui

import (
	"github.com/gdamore/tcell/v2"
)

const help = "Ctrl-S export PDF | Ctrl-P print | Ctrl-R reset | Ctrl-N add item | Ctrl-D delete item | F1/F2/F3 focus | Ctrl-Q quit"

// setupKeyBindings configures the global key bindings.
func (e *Editor) setupKeyBindings() {
	e.App.SetInputCapture(e.handleKey)
}

func (e *Editor) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlS:
		e.exportPDF()
	case tcell.KeyCtrlP:
		e.print()
	case tcell.KeyCtrlR:
		e.reset()
	case tcell.KeyCtrlN:
		e.addItem()
	case tcell.KeyCtrlD:
		e.removeItem()
	case tcell.KeyCtrlQ:
		e.App.Stop()
	case tcell.KeyF1:
		e.App.SetFocus(e.form)
	case tcell.KeyF2:
		e.App.SetFocus(e.items)
	case tcell.KeyF3:
		e.App.SetFocus(e.itemForm)
	default:
		return event
	}
	return nil
}
