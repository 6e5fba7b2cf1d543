package catalog

import (
	"time"

	"github.com/rotemed/pharmastore/money"
)

type Product struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	Price       money.Amount `json:"price"`
	InStock     bool         `json:"inStock"`
	Rating      float64      `json:"rating"`
	Reviews     int          `json:"reviews"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type ProductNew struct {
	Name        string       `json:"name" validate:"required"`
	Category    string       `json:"category" validate:"required"`
	Description string       `json:"description" validate:"required"`
	ImageURL    string       `json:"imageUrl" validate:"required"`
	Price       money.Amount `json:"price" validate:"gte=0"`
	InStock     bool         `json:"inStock"`
}

type ProductUp struct {
	Name        *string       `json:"name"`
	Category    *string       `json:"category"`
	Description *string       `json:"description"`
	ImageURL    *string       `json:"imageUrl"`
	Price       *money.Amount `json:"price" validate:"omitempty,gte=0"`
	InStock     *bool         `json:"inStock"`
}
