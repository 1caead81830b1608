package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/invoicify"
	"github.com/google/subcommands"
)

type partyCmd struct{}

func (*partyCmd) Name() string     { return "party" }
func (*partyCmd) Synopsis() string { return "set the sender or recipient details" }
func (*partyCmd) Usage() string {
	return `invoicify party <sender|recipient> <name|address|email> <value>...

  Sets a detail of the party issuing (sender) or receiving (recipient) the
  invoice. Use "\n" in an address to break lines.

Usage Examples:
$ invoicify party recipient name "ACME Corp"
$ invoicify party recipient address '1 Road Runner Way\nDesert, USA'
`
}

func (c *partyCmd) SetFlags(f *flag.FlagSet) {}

func (c *partyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	section, err := invoicify.ParseSection(f.Arg(0))
	if err != nil {
		return fail("Error: %v", err)
	}
	field, err := invoicify.ParsePartyField(f.Arg(1))
	if err != nil {
		return fail("Error: %v", err)
	}
	value := strings.ReplaceAll(strings.Join(f.Args()[2:], " "), `\n`, "\n")

	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	if err := s.store.UpdateNestedField(section, field, value); err != nil {
		return fail("Error: %v", err)
	}
	return subcommands.ExitSuccess
}
