package invoicify

import (
	"errors"
	"fmt"
	"testing"

	"github.com/etnz/invoicify/date"
)

// memBlobs is an in-memory BlobStore.
type memBlobs map[string][]byte

func (m memBlobs) Load(key string) ([]byte, error) {
	data, ok := m[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (m memBlobs) Save(key string, data []byte) error {
	m[key] = append([]byte(nil), data...)
	return nil
}

// brokenBlobs fails every Save.
type brokenBlobs struct{ memBlobs }

func (brokenBlobs) Save(string, []byte) error { return errors.New("disk full") }

// sequence returns an id generator yielding id-1, id-2...
func sequence() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

var testDay = date.New(2025, 1, 15)

func fixedToday() date.Date { return testDay }

// openTestStore opens a store on fresh memory blobs, with deterministic ids and day.
func openTestStore(t *testing.T) (*Store, memBlobs) {
	t.Helper()
	blobs := memBlobs{}
	s, err := Open(blobs, WithToday(fixedToday), WithIDs(sequence()))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s, blobs
}
