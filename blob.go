package invoicify

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StorageKey is the key under which the invoice is persisted.
const StorageKey = "invoicify-storage"

// ErrNotFound is returned by a BlobStore when the key has never been saved.
var ErrNotFound = errors.New("blob not found")

// BlobStore is a key-value store of opaque blobs that survives restarts.
type BlobStore interface {
	// Load returns the blob saved under key, or ErrNotFound.
	Load(key string) ([]byte, error)
	// Save replaces the blob saved under key.
	Save(key string, data []byte) error
}

// storageVersion is bumped when the persisted layout changes.
const storageVersion = 0

// envelope is the persisted form: the state plus a layout version.
type envelope struct {
	State   Invoice `json:"state"`
	Version int     `json:"version"`
}

// Encode serializes inv in its persisted form.
func Encode(inv Invoice) ([]byte, error) {
	if inv.Items == nil {
		inv.Items = []LineItem{}
	}
	return json.MarshalIndent(envelope{State: inv, Version: storageVersion}, "", "  ")
}

// Decode reads an invoice persisted by Encode.
func Decode(data []byte) (Invoice, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Invoice{}, fmt.Errorf("cannot decode invoice: %w", err)
	}
	if env.Version > storageVersion {
		return Invoice{}, fmt.Errorf("cannot decode invoice: unsupported version %d", env.Version)
	}
	if env.State.Items == nil {
		env.State.Items = []LineItem{}
	}
	return env.State, nil
}
