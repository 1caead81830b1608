package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "start over from a new default invoice" }
func (*resetCmd) Usage() string {
	return `invoicify reset

  Replaces the saved invoice with a new one, dated today and due in 30 days.
  This cannot be undone.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	if err := s.store.Reset(); err != nil {
		return fail("Error: %v", err)
	}
	fmt.Fprintln(os.Stderr, "Invoice form has been reset.")
	return subcommands.ExitSuccess
}
