package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/etnz/invoicify"
	"github.com/spf13/afero"
)

// testBlobStore runs the BlobStore contract against s.
func testBlobStore(t *testing.T, s invoicify.BlobStore) {
	t.Helper()

	if _, err := s.Load(invoicify.StorageKey); !errors.Is(err, invoicify.ErrNotFound) {
		t.Fatalf("Load(missing) error = %v, want ErrNotFound", err)
	}
	if err := s.Save(invoicify.StorageKey, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Save(invoicify.StorageKey, []byte(`{"v":2}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := s.Load(invoicify.StorageKey)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("Load() = %s, want the last saved blob", got)
	}
	if _, err := s.Load("other"); !errors.Is(err, invoicify.ErrNotFound) {
		t.Errorf("Load(other) error = %v, want ErrNotFound", err)
	}
}

func TestFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testBlobStore(t, NewFiles(fsys, "/data/invoicify"))

	ok, err := afero.Exists(fsys, "/data/invoicify/invoicify-storage.json")
	if err != nil || !ok {
		t.Errorf("blob file not found: %v", err)
	}
	tmps, _ := afero.Glob(fsys, "/data/invoicify/*.tmp")
	if len(tmps) != 0 {
		t.Errorf("temporary files left behind: %v", tmps)
	}
}

func TestFilesInvalidKey(t *testing.T) {
	f := NewFiles(afero.NewMemMapFs(), "/data")
	for _, key := range []string{"", "../escape", `a\b`, ".."} {
		if err := f.Save(key, []byte("x")); err == nil {
			t.Errorf("Save(%q) succeeded, want an error", key)
		}
	}
}

func TestFilesReadOnly(t *testing.T) {
	fsys := afero.NewMemMapFs()
	afero.WriteFile(fsys, "/data/invoicify-storage.json", []byte("{}"), 0644)
	f := NewFiles(afero.NewReadOnlyFs(fsys), "/data")

	if _, err := f.Load(invoicify.StorageKey); err != nil {
		t.Errorf("Load() error = %v", err)
	}
	if err := f.Save(invoicify.StorageKey, []byte("{}")); err == nil {
		t.Errorf("Save() on a read-only filesystem succeeded")
	}
}

func TestSQLite(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "sub", "invoicify.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer s.Close()
	testBlobStore(t, s)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for _, driver := range []string{"", DriverFile, DriverSQLite} {
		s, err := Open(driver, dir)
		if err != nil {
			t.Errorf("Open(%q) error = %v", driver, err)
			continue
		}
		s.Close()
	}
	if _, err := Open("redis", dir); err == nil {
		t.Errorf("Open(redis) succeeded, want an error")
	}
}
