package order

import (
	"time"

	"github.com/rotemed/pharmastore/money"
)

type Status string

const (
	Pending   Status = "pending"
	Confirmed Status = "confirmed"
	Delivered Status = "delivered"
)

// Line is a frozen copy of a cart row at checkout time.
type Line struct {
	Name      string       `json:"name"`
	Price     money.Amount `json:"price"`
	Quantity  int          `json:"quantity"`
	LineTotal money.Amount `json:"lineTotal"`
}

// Order records a checkout that was handed off to WhatsApp. Confirmation
// and delivery happen over that channel, so the back office tracks the
// status by hand.
type Order struct {
	ID        string       `json:"id"`
	Customer  string       `json:"customer"`
	Status    Status       `json:"status"`
	Lines     []Line       `json:"lines"`
	Total     money.Amount `json:"total"`
	CreatedAt time.Time    `json:"createdAt"`
}

type StatusUp struct {
	Status Status `json:"status" validate:"required,oneof=pending confirmed delivered"`
}
