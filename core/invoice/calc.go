package invoice

import "github.com/rotemed/pharmastore/money"

// The derivation functions are pure: both the cart summary and the
// billing page call them fresh on every observation. The tax rate is in
// basis points and always supplied by the caller, because the deployed
// skins bill different rates.

// LineTotal is the line extension for one row.
func LineTotal(price money.Amount, quantity int) money.Amount {
	return price.Mul(quantity)
}

// Subtotal sums the line extensions.
func Subtotal(lines []Line) money.Amount {
	var sum money.Amount
	for _, l := range lines {
		sum += LineTotal(l.Price, l.Quantity)
	}
	return sum
}

// Tax derives the tax amount from a basis-point rate, rounded half-up to
// whole paise. Amounts never leave integer minor units, so repeated
// derivations cannot drift.
func Tax(subtotal money.Amount, rateBP int) money.Amount {
	n := int64(subtotal) * int64(rateBP)
	if n >= 0 {
		return money.Amount((n + 5000) / 10000)
	}
	return money.Amount(-((-n + 5000) / 10000))
}

// GrandTotal is the payable amount.
func GrandTotal(subtotal, tax money.Amount) money.Amount {
	return subtotal + tax
}

// Summary is the three-number result shown under every item table.
type Summary struct {
	Subtotal   money.Amount `json:"subtotal"`
	Tax        money.Amount `json:"tax"`
	TaxRateBP  int          `json:"taxRateBp"`
	GrandTotal money.Amount `json:"grandTotal"`
}

// Summarize derives the full summary for a set of lines at the given
// rate.
func Summarize(lines []Line, rateBP int) Summary {
	sub := Subtotal(lines)
	tax := Tax(sub, rateBP)
	return Summary{
		Subtotal:   sub,
		Tax:        tax,
		TaxRateBP:  rateBP,
		GrandTotal: GrandTotal(sub, tax),
	}
}
