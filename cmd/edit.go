package cmd

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/invoicify/export"
	"github.com/etnz/invoicify/tui"
	"github.com/google/subcommands"
)

type editCmd struct{}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit the invoice interactively" }
func (*editCmd) Usage() string {
	return `invoicify edit

  Opens the interactive editor: the invoice form and its items on the left,
  the live preview on the right. Every change is saved immediately.

  Ctrl-S export PDF, Ctrl-P print, Ctrl-R reset, Ctrl-N add item,
  Ctrl-D delete item, F1/F2/F3 move between panels, Ctrl-Q quit.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	// The screen belongs to the editor, logs go to a file.
	if err := os.MkdirAll(s.cfg.Storage.Dir, 0755); err != nil {
		return fail("Error: %v", err)
	}
	logFile, err := os.OpenFile(filepath.Join(s.cfg.Storage.Dir, "invoicify.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fail("Error opening log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	tui.SetupTheme()
	editor := tui.New(s.store, &export.Exporter{Path: s.cfg.ExportPath()}, newPrinter(s, ""))
	if err := editor.Run(); err != nil {
		return fail("Error: %v", err)
	}
	return subcommands.ExitSuccess
}
