package cmd

import (
	"context"
	"flag"

	"github.com/etnz/invoicify/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `invoicify topic [<topic>...]

  Show documentation for the given topics, "*" shows them all.
  Without a topic, lists the available topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail("Error reading doc: %v", err)
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
