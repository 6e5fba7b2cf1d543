package invoice

import (
	"time"

	"github.com/rotemed/pharmastore/money"
)

// Line is one billing row. LineID is synthetic, assigned at add time, so
// the same product can appear on several rows of a draft.
type Line struct {
	LineID    string       `json:"lineId"`
	Name      string       `json:"name"`
	Price     money.Amount `json:"price"`
	Quantity  int          `json:"quantity"`
	LineTotal money.Amount `json:"lineTotal"`
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}

// Draft is the mutable billing-page state for one session.
type Draft struct {
	Customer Customer `json:"customer"`
	Lines    []Line   `json:"lines"`
	Summary  Summary  `json:"summary"`
}

// Invoice is a generated, numbered document. It is frozen: mutating the
// draft afterwards does not touch it.
type Invoice struct {
	Number   string    `json:"number"`
	IssuedAt time.Time `json:"issuedAt"`
	Customer Customer  `json:"customer"`
	Lines    []Line    `json:"lines"`
	Summary  Summary   `json:"summary"`
}

type LineNew struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

type QuantityUp struct {
	Quantity int `json:"quantity"`
}
