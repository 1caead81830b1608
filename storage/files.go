package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/etnz/invoicify"
	"github.com/spf13/afero"
)

// Files stores each blob in its own file, named after the key, in a directory.
//
// Files are replaced atomically: a blob is written in a temporary file that is
// then renamed, so a crash never leaves a truncated invoice behind.
type Files struct {
	fs  afero.Fs
	dir string
}

// NewFiles returns a Files store in dir. The directory is created on the first Save.
func NewFiles(fsys afero.Fs, dir string) *Files {
	return &Files{fs: fsys, dir: dir}
}

func (f *Files) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

// Load implements invoicify.BlobStore.
func (f *Files) Load(key string) ([]byte, error) {
	name, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(f.fs, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, invoicify.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", name, err)
	}
	return data, nil
}

// Save implements invoicify.BlobStore.
func (f *Files) Save(key string, data []byte) error {
	name, err := f.path(key)
	if err != nil {
		return err
	}
	if err := f.fs.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("cannot create %q: %w", f.dir, err)
	}
	tmp, err := afero.TempFile(f.fs, f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %q: %w", f.dir, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		f.fs.Remove(tmp.Name())
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		f.fs.Remove(tmp.Name())
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := f.fs.Rename(tmp.Name(), name); err != nil {
		f.fs.Remove(tmp.Name())
		return fmt.Errorf("cannot replace %q: %w", name, err)
	}
	return nil
}

// Close implements io.Closer, there is nothing to release.
func (f *Files) Close() error { return nil }
