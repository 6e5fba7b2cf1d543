package cart

import (
	"time"

	"github.com/rotemed/pharmastore/money"
)

// Item is one cart row. Name, category and image are display metadata
// carried through untouched; the store only computes over price and
// quantity.
type Item struct {
	ProductID string       `json:"productId"`
	Name      string       `json:"name"`
	Category  string       `json:"category"`
	ImageURL  string       `json:"imageUrl"`
	Price     money.Amount `json:"price"`
	Quantity  int          `json:"quantity"`
}

// LineTotal is the line extension for this row.
func (it Item) LineTotal() money.Amount {
	return it.Price.Mul(it.Quantity)
}

// Cart is a consistent snapshot: Total always equals the sum of line
// extensions of Items at the moment the snapshot was taken.
type Cart struct {
	Items     []Item       `json:"items"`
	Total     money.Amount `json:"total"`
	Count     int          `json:"count"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type ItemNew struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

type QuantityUp struct {
	Quantity int `json:"quantity"`
}
