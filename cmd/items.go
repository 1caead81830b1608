package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/invoicify"
	"github.com/google/subcommands"
)

type addItemCmd struct {
	description string
	quantity    string
	price       string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "append a line item and print its id" }
func (*addItemCmd) Usage() string {
	return `invoicify add-item [-d <description>] [-q <quantity>] [-p <price>]

  Appends a line item, "New Item" 1 x 0 unless the flags say otherwise, and
  prints its id. Other item commands accept any unique prefix of the id.

Usage Examples:
$ invoicify add-item -d "Hosting (12 months)" -q 12 -p 9.90
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description of the item.")
	f.StringVar(&c.quantity, "q", "", "Quantity, 0 if not a number.")
	f.StringVar(&c.price, "p", "", "Unit price, 0 if not a number.")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	id, err := s.store.AddItem()
	if err != nil {
		return fail("Error: %v", err)
	}
	updates := map[string]invoicify.ItemField{"d": invoicify.Description, "q": invoicify.ItemQty, "p": invoicify.ItemPrice}
	values := map[string]string{"d": c.description, "q": c.quantity, "p": c.price}
	f.Visit(func(fl *flag.Flag) {
		if err == nil {
			err = s.store.UpdateItem(id, updates[fl.Name], values[fl.Name])
		}
	})
	if err != nil {
		return fail("Error: %v", err)
	}
	fmt.Fprintln(stdout, id)
	return subcommands.ExitSuccess
}

type rmItemCmd struct{}

func (*rmItemCmd) Name() string     { return "rm-item" }
func (*rmItemCmd) Synopsis() string { return "remove a line item" }
func (*rmItemCmd) Usage() string {
	return `invoicify rm-item <id>

  Removes the line item with the given id, or unique id prefix.
`
}

func (c *rmItemCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	id, err := resolveItem(s.store.Snapshot(), f.Arg(0))
	if err != nil {
		return fail("Error: %v", err)
	}
	if err := s.store.RemoveItem(id); err != nil {
		return fail("Error: %v", err)
	}
	return subcommands.ExitSuccess
}

type setItemCmd struct{}

func (*setItemCmd) Name() string     { return "set-item" }
func (*setItemCmd) Synopsis() string { return "set a field of a line item" }
func (*setItemCmd) Usage() string {
	return `invoicify set-item <id> <description|quantity|price> <value>...

  Sets a field of the line item with the given id, or unique id prefix.
  Quantity and price that are not numbers are set to 0.
`
}

func (c *setItemCmd) SetFlags(f *flag.FlagSet) {}

func (c *setItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	field, err := invoicify.ParseItemField(f.Arg(1))
	if err != nil {
		return fail("Error: %v", err)
	}
	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	id, err := resolveItem(s.store.Snapshot(), f.Arg(0))
	if err != nil {
		return fail("Error: %v", err)
	}
	if err := s.store.UpdateItem(id, field, strings.Join(f.Args()[2:], " ")); err != nil {
		return fail("Error: %v", err)
	}
	return subcommands.ExitSuccess
}
