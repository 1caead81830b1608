package export

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/invoicify"
	"github.com/etnz/invoicify/renderer"
)

// DefaultFile is the name of the exported document.
const DefaultFile = "invoice.pdf"

// Result is the outcome of an export.
type Result struct {
	Path string
	Err  error
}

// Exporter writes the PDF of an invoice in the background.
type Exporter struct {
	// Path of the PDF file, DefaultFile if empty.
	Path string
}

func (e *Exporter) path() string {
	if e.Path == "" {
		return DefaultFile
	}
	return e.Path
}

// Start exports inv as it is now and returns a channel that receives exactly
// one Result. The invoice is copied before Start returns, later edits are not
// part of this export. Canceling ctx abandons the export if the file has not
// been written yet.
func (e *Exporter) Start(ctx context.Context, inv invoicify.Invoice) <-chan Result {
	preview := renderer.NewPreview(inv.Clone())
	path := e.path()
	results := make(chan Result, 1)
	go func() {
		defer close(results)
		err := writeFile(ctx, path, preview)
		if err != nil {
			log.Printf("export of %q failed: %v", path, err)
		} else {
			log.Printf("exported invoice %q to %q", preview.Number, path)
		}
		results <- Result{Path: path, Err: err}
	}()
	return results
}

// Export is the synchronous version of Start.
func (e *Exporter) Export(ctx context.Context, inv invoicify.Invoice) error {
	return (<-e.Start(ctx, inv)).Err
}

// writeFile renders the PDF in memory and then replaces path, so that a
// failed export never leaves a partial document.
func writeFile(ctx context.Context, path string, p *renderer.Preview) error {
	var buf bytes.Buffer
	if err := WritePDF(&buf, p); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("export canceled: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}
