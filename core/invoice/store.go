package invoice

import (
	"errors"
	"sync"
	"time"

	"github.com/rotemed/pharmastore/money"
	"github.com/rotemed/pharmastore/random"
	"github.com/rotemed/pharmastore/validate"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNoLines         = errors.New("invoice has no lines")
	ErrNoCustomer      = errors.New("customer name is required")
)

// Store keeps the per-session billing drafts and every generated
// invoice. The billing page manages its own lines, independent of the
// cart, but both derive their summaries through the same calculator.
type Store struct {
	rateBP int

	mu        sync.Mutex
	drafts    map[string]*draft
	generated []Invoice
}

type draft struct {
	customer Customer
	lines    []Line
}

func NewStore(rateBP int) *Store {
	return &Store{
		rateBP: rateBP,
		drafts: make(map[string]*draft),
	}
}

// Get returns the draft with its summary derived at the configured rate.
func (s *Store) Get(draftID string) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(s.draft(draftID))
}

func (s *Store) SetCustomer(draftID string, c Customer) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(draftID)
	d.customer = c
	return s.snapshot(d)
}

// AddLine appends a new row with a fresh synthetic line ID. Unlike the
// cart, repeated adds of the same product stay separate rows.
func (s *Store) AddLine(draftID string, name string, price money.Amount, quantity int) (Draft, error) {
	if quantity < 1 {
		return Draft{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(draftID)
	d.lines = append(d.lines, Line{
		LineID:   validate.GenerateID(),
		Name:     name,
		Price:    price,
		Quantity: quantity,
	})
	return s.snapshot(d), nil
}

// UpdateLineQuantity sets a row's quantity, with the same clamp-at-one
// no-op policy as the cart.
func (s *Store) UpdateLineQuantity(draftID string, lineID string, quantity int) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(draftID)
	if quantity >= 1 {
		for i := range d.lines {
			if d.lines[i].LineID == lineID {
				d.lines[i].Quantity = quantity
				break
			}
		}
	}
	return s.snapshot(d)
}

func (s *Store) RemoveLine(draftID string, lineID string) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(draftID)
	for i := range d.lines {
		if d.lines[i].LineID == lineID {
			d.lines = append(d.lines[:i], d.lines[i+1:]...)
			break
		}
	}
	return s.snapshot(d)
}

func (s *Store) Clear(draftID string) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(draftID)
	d.customer = Customer{}
	d.lines = nil
	return s.snapshot(d)
}

// Generate freezes the draft into a numbered invoice and resets the
// draft's lines. The customer name and at least one line are required;
// that guard lives here because generation is a store transition, not a
// view nicety.
func (s *Store) Generate(draftID string) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(draftID)
	if d.customer.Name == "" {
		return Invoice{}, ErrNoCustomer
	}
	if len(d.lines) == 0 {
		return Invoice{}, ErrNoLines
	}

	snap := s.snapshot(d)
	inv := Invoice{
		Number:   "INV-" + random.String(8),
		IssuedAt: time.Now().UTC(),
		Customer: snap.Customer,
		Lines:    snap.Lines,
		Summary:  snap.Summary,
	}

	s.generated = append(s.generated, inv)
	d.lines = nil
	return inv, nil
}

// Generated lists every invoice issued so far, newest last.
func (s *Store) Generated() []Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Invoice, len(s.generated))
	copy(out, s.generated)
	return out
}

// Revenue sums the grand totals of all generated invoices.
func (s *Store) Revenue() money.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum money.Amount
	for _, inv := range s.generated {
		sum += inv.Summary.GrandTotal
	}
	return sum
}

func (s *Store) draft(draftID string) *draft {
	d, ok := s.drafts[draftID]
	if !ok {
		d = &draft{}
		s.drafts[draftID] = d
	}
	return d
}

// snapshot copies the lines, fills the derived per-line totals and
// attaches the summary, all in one consistent view.
func (s *Store) snapshot(d *draft) Draft {
	lines := make([]Line, len(d.lines))
	copy(lines, d.lines)
	for i := range lines {
		lines[i].LineTotal = LineTotal(lines[i].Price, lines[i].Quantity)
	}

	return Draft{
		Customer: d.customer,
		Lines:    lines,
		Summary:  Summarize(lines, s.rateBP),
	}
}
