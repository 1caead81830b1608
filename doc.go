// Package invoicify models a single editable invoice and computes its totals.
//
// The Store owns the live Invoice. It is created once with Open, handed to
// the views that need it, and every edit goes through one of its mutation
// methods:
//   - UpdateField and UpdateNestedField edit scalar and party fields.
//   - AddItem, RemoveItem and UpdateItem edit the line items.
//   - Reset starts over from the default invoice.
//
// After each mutation the whole invoice is saved in a BlobStore under
// StorageKey and the observers registered with Subscribe are called, so that
// derived views (totals, preview) are refreshed.
//
// Edits are lenient: invalid numbers become 0 and unknown item ids
// are ignored. Totals are computed exactly with decimals; rounding to cents
// only happens when an amount is formatted.
//
// This package is the foundation of the `invoicify` command-line tool.
package invoicify
