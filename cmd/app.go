// Package cmd implements the invoicify command line.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/etnz/invoicify"
	"github.com/etnz/invoicify/config"
	"github.com/etnz/invoicify/date"
	"github.com/etnz/invoicify/renderer"
	"github.com/etnz/invoicify/storage"
	"github.com/google/subcommands"
)

// Commands lists the subcommands with their group.
var Commands = []struct {
	Group   string
	Command subcommands.Command
}{
	{"invoice", &showCmd{}},
	{"invoice", &setCmd{}},
	{"invoice", &partyCmd{}},
	{"invoice", &totalsCmd{}},
	{"invoice", &getCmd{}},
	{"invoice", &resetCmd{}},
	{"items", &addItemCmd{}},
	{"items", &rmItemCmd{}},
	{"items", &setItemCmd{}},
	{"output", &exportCmd{}},
	{"output", &printCmd{}},
	{"output", &editCmd{}},
	{"help", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd.Command, cmd.Group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataDir       = flag.String("data-dir", "", "Directory of the saved invoice (default: storage.dir setting)")
	storageDriver = flag.String("storage", "", "Storage driver, file or sqlite (default: storage.driver setting)")
	configFile    = flag.String("config", "", "Config file (default: invoicify.yaml in the config directory)")
	verbose       = flag.Bool("v", false, "Print diagnostic logs")
)

// stdout receives the command outputs.
var stdout io.Writer = os.Stdout

// LoadConfig reads the settings and applies the global flags on top of them.
func LoadConfig() (*config.Config, error) {
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		cfg.Storage.Dir = *dataDir
	}
	if *storageDriver != "" {
		cfg.Storage.Driver = *storageDriver
	}
	if *verbose || cfg.Verbose {
		cfg.Verbose = true
		log.SetOutput(os.Stderr)
	}
	return cfg, nil
}

// session is the invoice store opened by a command.
type session struct {
	cfg   *config.Config
	blobs storage.Store
	store *invoicify.Store
}

// openSession is the central function to open the saved invoice.
func openSession() (*session, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	blobs, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Dir)
	if err != nil {
		return nil, err
	}
	opts := []invoicify.Option{invoicify.WithCurrency(cfg.Currency)}
	if today := os.Getenv("INVOICIFY_TESTING_TODAY"); today != "" {
		d, err := date.Parse(today)
		if err != nil {
			blobs.Close()
			return nil, fmt.Errorf("invalid INVOICIFY_TESTING_TODAY: %w", err)
		}
		opts = append(opts, invoicify.WithToday(func() date.Date { return d }))
	}
	store, err := invoicify.Open(blobs, opts...)
	if err != nil {
		blobs.Close()
		return nil, err
	}
	log.Printf("opened invoice from %s storage in %s", cfg.Storage.Driver, cfg.Storage.Dir)
	return &session{cfg: cfg, blobs: blobs, store: store}, nil
}

func (s *session) Close() error { return s.blobs.Close() }

// resolveItem returns the id of the item whose id is, or starts with, prefix.
func resolveItem(inv invoicify.Invoice, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("missing item id")
	}
	var found []string
	for _, it := range inv.Items {
		if it.ID == prefix {
			return it.ID, nil
		}
		if strings.HasPrefix(it.ID, prefix) {
			found = append(found, it.ID)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no item with id %q", prefix)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("item id %q is ambiguous: %s", prefix, strings.Join(found, ", "))
	}
}

// printMarkdown renders md for the terminal, falling back to the raw markdown.
func printMarkdown(md string) {
	out, err := renderer.Terminal(md, 100, "")
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// fail prints err on stderr and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
