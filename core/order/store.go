package order

import (
	"errors"
	"sync"
	"time"

	"github.com/rotemed/pharmastore/money"
	"github.com/rotemed/pharmastore/validate"
)

var ErrNotFound = errors.New("order not found")

type Store struct {
	mu     sync.Mutex
	orders map[string]Order
	order  []string
}

func NewStore() *Store {
	return &Store{
		orders: make(map[string]Order),
	}
}

func (s *Store) Create(o Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[o.ID] = o
	s.order = append(s.order, o.ID)
}

func (s *Store) List() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Order, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.orders[id])
	}
	return out
}

func (s *Store) UpdateStatus(id string, status Status) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	o.Status = status
	s.orders[id] = o
	return o, nil
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Revenue sums the totals of every non-pending order.
func (s *Store) Revenue() money.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum money.Amount
	for _, id := range s.order {
		if o := s.orders[id]; o.Status != Pending {
			sum += o.Total
		}
	}
	return sum
}

// Seed loads the reference back-office rows so the admin screens have
// history on a fresh start.
func Seed(store *Store) {
	now := time.Now().UTC()

	seeded := []Order{
		{
			Customer: "City Hospital Pharmacy",
			Status:   Delivered,
			Lines: []Line{
				{Name: "Paracetamol 500mg", Price: 2599, Quantity: 20, LineTotal: 51980},
				{Name: "Surgical Masks (Box of 50)", Price: 1599, Quantity: 10, LineTotal: 15990},
			},
			Total:     67970,
			CreatedAt: now.AddDate(0, 0, -14),
		},
		{
			Customer: "Shree Medical Stores",
			Status:   Confirmed,
			Lines: []Line{
				{Name: "Amoxicillin 250mg", Price: 4550, Quantity: 12, LineTotal: 54600},
			},
			Total:     54600,
			CreatedAt: now.AddDate(0, 0, -6),
		},
		{
			Customer: "Wellness Clinic",
			Status:   Pending,
			Lines: []Line{
				{Name: "Blood Pressure Monitor", Price: 12500, Quantity: 2, LineTotal: 25000},
				{Name: "Vitamin D3 1000IU", Price: 1875, Quantity: 6, LineTotal: 11250},
			},
			Total:     36250,
			CreatedAt: now.AddDate(0, 0, -1),
		},
	}

	for _, o := range seeded {
		o.ID = validate.GenerateID()
		store.Create(o)
	}
}
