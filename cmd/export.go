package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/invoicify/export"
	"github.com/etnz/invoicify/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the invoice as a PDF document" }
func (*exportCmd) Usage() string {
	return `invoicify export [-o <file>]

  Writes the invoice as a one page PDF document, invoice.pdf in the export
  directory by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (default: export.dir/export.file settings).")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	path := c.output
	if path == "" {
		path = s.cfg.ExportPath()
	}
	fmt.Fprintln(os.Stderr, "Generating PDF...")
	exporter := &export.Exporter{Path: path}
	res := <-exporter.Start(ctx, s.store.Snapshot())
	if res.Err != nil {
		return fail("Failed to generate PDF: %v", res.Err)
	}
	fmt.Fprintf(os.Stderr, "PDF saved to %s\n", res.Path)
	return subcommands.ExitSuccess
}

type printCmd struct {
	output string
}

func (*printCmd) Name() string     { return "print" }
func (*printCmd) Synopsis() string { return "print the invoice" }
func (*printCmd) Usage() string {
	return `invoicify print [-o <file>]

  Sends the printable page of the invoice to the print command (print.command
  setting, "lp" by default). With -o, writes the HTML page to a file instead.
`
}

func (c *printCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the printable HTML page to this file.")
}

func (c *printCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	if err := newPrinter(s, c.output).Print(ctx, renderer.NewPreview(s.store.Snapshot())); err != nil {
		return fail("Failed to print: %v", err)
	}
	return subcommands.ExitSuccess
}

// newPrinter returns a FilePrinter on output, or the configured print command.
func newPrinter(s *session, output string) export.Printer {
	if output != "" {
		return export.FilePrinter{Path: output}
	}
	return export.CommandPrinter{Command: s.cfg.Print.Command}
}
