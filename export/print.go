package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/etnz/invoicify/renderer"
)

// Printer sends the preview of an invoice to a printer.
type Printer interface {
	Print(ctx context.Context, p *renderer.Preview) error
}

// Page returns the printable HTML page of the preview.
func Page(p *renderer.Preview) ([]byte, error) {
	return renderer.HTML("Invoice "+p.Number, renderer.RenderInvoice(p))
}

// CommandPrinter pipes the printable page to a spooler command such as "lp".
type CommandPrinter struct {
	// Command line, split on blanks: "lp -d office".
	Command string
}

func (c CommandPrinter) Print(ctx context.Context, p *renderer.Preview) error {
	args := strings.Fields(c.Command)
	if len(args) == 0 {
		return errors.New("no print command configured")
	}
	page, err := Page(p)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = bytes.NewReader(page)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", args[0], err, bytes.TrimSpace(out))
	}
	return nil
}

// FilePrinter writes the printable page to a file, to be printed from a browser.
type FilePrinter struct {
	Path string
}

func (f FilePrinter) Print(_ context.Context, p *renderer.Preview) error {
	page, err := Page(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.Path, page, 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", f.Path, err)
	}
	return nil
}
