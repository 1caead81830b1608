package cmd

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/etnz/invoicify/renderer"
	"github.com/google/subcommands"
)

type totalsCmd struct{}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "print the subtotal, tax and total" }
func (*totalsCmd) Usage() string {
	return `invoicify totals

  Prints the totals derived from the line items and the tax rate.
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	p := renderer.NewPreview(s.store.Snapshot())
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Subtotal:\t%s\t\n", p.Money(p.Totals.Subtotal))
	fmt.Fprintf(w, "%s:\t%s\t\n", p.TaxLabel(), p.Money(p.Totals.Tax))
	fmt.Fprintf(w, "Total:\t%s\t\n", p.Money(p.Totals.Total))
	if err := w.Flush(); err != nil {
		return fail("Error: %v", err)
	}
	return subcommands.ExitSuccess
}
