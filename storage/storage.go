// Package storage provides the local blob stores the invoice is persisted in.
package storage

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/etnz/invoicify"
	"github.com/spf13/afero"
)

// Drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Store is a BlobStore that holds resources until closed.
type Store interface {
	invoicify.BlobStore
	io.Closer
}

// Open opens the blob store of the given driver in dir.
func Open(driver, dir string) (Store, error) {
	switch driver {
	case DriverFile, "":
		return NewFiles(afero.NewOsFs(), dir), nil
	case DriverSQLite:
		return OpenSQLite(filepath.Join(dir, "invoicify.db"))
	default:
		return nil, fmt.Errorf("unknown storage driver %q, want %q or %q", driver, DriverFile, DriverSQLite)
	}
}
