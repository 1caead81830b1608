// Command invoicify edits, previews and exports a single invoice.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/invoicify"
	"github.com/etnz/invoicify/cmd"
	"github.com/etnz/invoicify/docs"
	"github.com/etnz/invoicify/storage"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Answers the shell when invoked for completion, and exits.
	completion(commander).Complete(commander.Name())

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	top := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	top.Flags["data-dir"] = predict.Dirs("*")
	top.Flags["storage"] = predict.Set{storage.DriverFile, storage.DriverSQLite}
	top.Flags["config"] = predict.Files("*.yaml")

	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		if p, ok := args[c.Name()]; ok {
			sub.Args = p
		}
		top.Sub[c.Name()] = sub
	})
	if sub, ok := top.Sub["export"]; ok {
		sub.Flags["o"] = predict.Files("*.pdf")
	}
	if sub, ok := top.Sub["print"]; ok {
		sub.Flags["o"] = predict.Files("*.html")
	}
	return top
}

// args predicts the first positional argument of the commands.
var args = map[string]complete.Predictor{
	"set":      names(invoicify.Fields),
	"party":    names(invoicify.Sections),
	"set-item": predict.Something,
	"rm-item":  predict.Something,
	"get":      predict.Set{"$.invoiceNumber", "$.sender", "$.recipient", "$.items[*]", "$.taxRate", "$.notes"},
	"topic":    topics(),
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

func names[T ~string](values []T) predict.Set {
	set := make(predict.Set, len(values))
	for i, v := range values {
		set[i] = string(v)
	}
	return set
}

func topics() predict.Set {
	all, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(predict.Set{"*"}, all...)
}
