package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/invoicify"
	"github.com/google/subcommands"
)

type setCmd struct{}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set an invoice field" }
func (*setCmd) Usage() string {
	return `invoicify set <field> <value>...

  Sets one of the invoice fields: invoiceNumber, invoiceDate, dueDate, notes,
  taxRate or currency. Dates are written YYYY-MM-DD, the tax rate is a
  percentage (8.5 for 8.5%), an invalid number sets it to 0.

Usage Examples:
$ invoicify set invoiceNumber INV-042
$ invoicify set taxRate 20
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	field, err := invoicify.ParseField(f.Arg(0))
	if err != nil {
		return fail("Error: %v", err)
	}

	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	if err := s.store.UpdateField(field, strings.Join(f.Args()[1:], " ")); err != nil {
		return fail("Error: %v", err)
	}
	return subcommands.ExitSuccess
}
