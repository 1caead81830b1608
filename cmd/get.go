package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/invoicify"
	"github.com/google/subcommands"
)

type getCmd struct{}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "query the invoice with a JSONPath expression" }
func (*getCmd) Usage() string {
	return `invoicify get <jsonpath>

  Evaluates a JSONPath expression against the saved invoice, as stored, and
  prints the result. Strings are printed as is, other values as JSON.

Usage Examples:
$ invoicify get $.recipient.name
$ invoicify get '$.items[*].description'
`
}

func (c *getCmd) SetFlags(f *flag.FlagSet) {}

func (c *getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	s, err := openSession()
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.Close()

	v, err := query(s.store.Snapshot(), f.Arg(0))
	if err != nil {
		return fail("Error: %v", err)
	}
	if str, ok := v.(string); ok {
		fmt.Fprintln(stdout, str)
		return subcommands.ExitSuccess
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fail("Error: %v", err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// query evaluates path on the JSON document of inv.
func query(inv invoicify.Invoice, path string) (any, error) {
	data, err := json.Marshal(inv)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return v, nil
}
