package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/invoicify/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	raw bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the invoice preview" }
func (*showCmd) Usage() string {
	return `invoicify show [-raw]

  Displays the invoice as it will be exported: parties, dates, line items
  with their totals, subtotal, tax and total.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	md := renderer.RenderInvoice(renderer.NewPreview(s.store.Snapshot()))
	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
