package cart

import (
	"errors"
	"sync"
	"time"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Subscriber receives a consistent snapshot after every mutation. The
// snapshot is taken once the aggregate has been recomputed, so observers
// can never see an item list that disagrees with its total.
type Subscriber func(cartID string, snapshot Cart)

// Store holds every active cart, keyed by the session-scoped cart ID.
// Mutations are total functions: absent rows and out-of-range quantities
// degrade to no-ops rather than errors, matching the storefront's
// clamp-at-the-edge policy.
type Store struct {
	mu    sync.Mutex
	carts map[string]*state
	subs  []Subscriber
}

type state struct {
	items     []Item
	updatedAt time.Time
}

func NewStore() *Store {
	return &Store{
		carts: make(map[string]*state),
	}
}

// Subscribe registers a callback for cart changes. Not safe to call once
// mutations have started; wire subscribers during startup.
func (s *Store) Subscribe(fn Subscriber) {
	s.subs = append(s.subs, fn)
}

// AddItem appends the item, or merges it into the existing row when the
// product is already in the cart, adding the quantities instead of
// duplicating the line.
func (s *Store) AddItem(cartID string, item Item) (Cart, error) {
	if item.Quantity < 1 {
		return Cart{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	st := s.state(cartID)

	merged := false
	for i := range st.items {
		if st.items[i].ProductID == item.ProductID {
			st.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		st.items = append(st.items, item)
	}
	st.updatedAt = time.Now().UTC()

	snap := snapshot(st)
	s.mu.Unlock()

	s.notify(cartID, snap)
	return snap, nil
}

// RemoveItem drops the row for the given product. Removing a product
// that is not in the cart is a no-op.
func (s *Store) RemoveItem(cartID string, productID string) Cart {
	s.mu.Lock()
	st := s.state(cartID)

	for i := range st.items {
		if st.items[i].ProductID == productID {
			st.items = append(st.items[:i], st.items[i+1:]...)
			st.updatedAt = time.Now().UTC()
			break
		}
	}

	snap := snapshot(st)
	s.mu.Unlock()

	s.notify(cartID, snap)
	return snap
}

// UpdateQuantity sets the quantity of the given row. A requested
// quantity below 1 leaves the row untouched; removal is explicit, never
// a side effect of decrementing.
func (s *Store) UpdateQuantity(cartID string, productID string, quantity int) Cart {
	s.mu.Lock()
	st := s.state(cartID)

	if quantity >= 1 {
		for i := range st.items {
			if st.items[i].ProductID == productID {
				st.items[i].Quantity = quantity
				st.updatedAt = time.Now().UTC()
				break
			}
		}
	}

	snap := snapshot(st)
	s.mu.Unlock()

	s.notify(cartID, snap)
	return snap
}

// Clear empties the cart.
func (s *Store) Clear(cartID string) Cart {
	s.mu.Lock()
	st := s.state(cartID)
	st.items = nil
	st.updatedAt = time.Now().UTC()

	snap := snapshot(st)
	s.mu.Unlock()

	s.notify(cartID, snap)
	return snap
}

// Get returns a consistent snapshot of the cart.
func (s *Store) Get(cartID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.state(cartID))
}

// Count is the badge number: the sum of quantities, not the row count.
func (s *Store) Count(cartID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, it := range s.state(cartID).items {
		count += it.Quantity
	}
	return count
}

func (s *Store) state(cartID string) *state {
	st, ok := s.carts[cartID]
	if !ok {
		st = &state{}
		s.carts[cartID] = st
	}
	return st
}

func (s *Store) notify(cartID string, snap Cart) {
	for _, fn := range s.subs {
		fn(cartID, snap)
	}
}

func snapshot(st *state) Cart {
	items := make([]Item, len(st.items))
	copy(items, st.items)

	snap := Cart{
		Items:     items,
		UpdatedAt: st.updatedAt,
	}
	for _, it := range items {
		snap.Total += it.LineTotal()
		snap.Count += it.Quantity
	}
	return snap
}
