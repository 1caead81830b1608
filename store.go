package invoicify

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/etnz/invoicify/date"
	"github.com/google/uuid"
)

// Observer is called after each mutation with the new state.
// The invoice is shared between observers and must not be modified.
type Observer func(inv Invoice)

// Store owns the live Invoice. Every mutation is applied atomically, persisted
// in the BlobStore and then announced to the observers.
//
// Mutations never fail because of their input: unknown ids are ignored and
// invalid numbers become 0. The only error they return comes from persistence,
// in which case the mutation is still applied in memory.
type Store struct {
	blobs BlobStore
	today func() date.Date
	newID func() string
	// currency of new invoices, empty for DefaultCurrency.
	currency string

	mu        sync.Mutex
	inv       Invoice
	observers []observerEntry
	nextObs   int
}

type observerEntry struct {
	id int
	f  Observer
}

// Option configures a Store.
type Option func(*Store)

// WithToday sets the clock used for default dates.
func WithToday(today func() date.Date) Option { return func(s *Store) { s.today = today } }

// WithIDs sets the generator of line item ids. It must never return the same id twice.
func WithIDs(newID func() string) Option { return func(s *Store) { s.newID = newID } }

// WithCurrency sets the currency of new invoices.
func WithCurrency(code string) Option { return func(s *Store) { s.currency = code } }

func (s *Store) defaults() Invoice {
	inv := Defaults(s.today(), s.newID)
	if s.currency != DefaultCurrency {
		inv.Currency = s.currency
	}
	return inv
}

// Open loads the invoice persisted in blobs, or starts a default one if none was saved.
// A nil blobs keeps the invoice in memory only.
func Open(blobs BlobStore, opts ...Option) (*Store, error) {
	s := &Store{
		blobs: blobs,
		today: date.Today,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.inv = s.defaults()
	if blobs == nil {
		return s, nil
	}

	data, err := blobs.Load(StorageKey)
	if errors.Is(err, ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load invoice: %w", err)
	}
	inv, err := Decode(data)
	if err != nil {
		log.Printf("warning, stored invoice is unreadable, starting from defaults: %v", err)
		return s, nil
	}
	s.inv = inv
	return s, nil
}

// Snapshot returns a copy of the current invoice.
func (s *Store) Snapshot() Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Clone()
}

// Totals returns the derived totals of the current invoice.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Totals()
}

// Subscribe registers f to be called after every mutation. It returns a
// function that unregisters f.
//
// Observers are called outside the store lock, in mutation order for a given
// caller. Mutations from several goroutines at once may reach an observer out
// of order, callers that mutate concurrently must serialize their mutations.
func (s *Store) Subscribe(f Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers = append(s.observers, observerEntry{id: id, f: f})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(e observerEntry) bool { return e.id == id })
	}
}

// mutate applies f, persists the result and notifies the observers.
// Observers run outside the lock so that they can read the store.
func (s *Store) mutate(f func(inv *Invoice)) error {
	s.mu.Lock()
	f(&s.inv)
	snapshot := s.inv.Clone()
	err := s.persist(snapshot)
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		o.f(snapshot)
	}
	return err
}

// validText replaces invalid UTF-8 sequences the way the JSON encoding does,
// so that the live invoice equals the persisted one.
func validText(value string) string { return strings.ToValidUTF8(value, "\uFFFD") }

func (s *Store) persist(inv Invoice) error {
	if s.blobs == nil {
		return nil
	}
	data, err := Encode(inv)
	if err != nil {
		return err
	}
	if err := s.blobs.Save(StorageKey, data); err != nil {
		return fmt.Errorf("cannot save invoice: %w", err)
	}
	return nil
}

// UpdateField sets a scalar field. The tax rate is read as a number, 0 if invalid.
// Other fields are stored as text.
func (s *Store) UpdateField(field Field, value string) error {
	value = validText(value)
	return s.mutate(func(inv *Invoice) {
		switch field {
		case InvoiceNumber:
			inv.InvoiceNumber = value
		case InvoiceDate:
			inv.InvoiceDate = value
		case DueDate:
			inv.DueDate = value
		case Notes:
			inv.Notes = value
		case TaxRate:
			inv.TaxRate = ParsePercent(value)
		case Currency:
			inv.Currency = value
		}
	})
}

// SetTaxRate sets the tax rate.
func (s *Store) SetTaxRate(rate Percent) error {
	return s.mutate(func(inv *Invoice) { inv.TaxRate = rate })
}

// UpdateNestedField sets one field of the sender or the recipient.
func (s *Store) UpdateNestedField(section Section, field PartyField, value string) error {
	value = validText(value)
	return s.mutate(func(inv *Invoice) {
		p := inv.party(section)
		if p == nil {
			return
		}
		switch field {
		case Name:
			p.Name = value
		case Address:
			p.Address = value
		case Email:
			p.Email = value
		}
	})
}

// AddItem appends a "New Item" of quantity 1 and price 0, and returns its id.
func (s *Store) AddItem() (id string, err error) {
	err = s.mutate(func(inv *Invoice) {
		id = s.newID()
		inv.Items = append(inv.Items, LineItem{
			ID:          id,
			Description: "New Item",
			Quantity:    Q(1),
			Price:       M(0),
		})
	})
	return id, err
}

// RemoveItem removes the item with the given id. Unknown ids are ignored.
func (s *Store) RemoveItem(id string) error {
	return s.mutate(func(inv *Invoice) {
		inv.Items = slices.DeleteFunc(inv.Items, func(it LineItem) bool { return it.ID == id })
	})
}

// UpdateItem sets one field of the item with the given id. Quantity and price
// are read as numbers, 0 if invalid. Unknown ids are ignored.
func (s *Store) UpdateItem(id string, field ItemField, value string) error {
	value = validText(value)
	return s.mutate(func(inv *Invoice) {
		i := inv.indexOf(id)
		if i < 0 {
			return
		}
		it := &inv.Items[i]
		switch field {
		case ItemQty:
			it.Quantity = ParseQuantity(value)
		case ItemPrice:
			it.Price = ParseMoney(value)
		default:
			it.Description = value
		}
	})
}

// Reset replaces the invoice with a brand new default one.
func (s *Store) Reset() error {
	return s.mutate(func(inv *Invoice) {
		*inv = s.defaults()
	})
}
