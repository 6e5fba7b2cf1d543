package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value in paise. Keeping money as integer minor
// units makes repeated additions exact; rendering to rupees happens only
// at the boundary.
type Amount int64

// FromRupees builds an Amount from whole rupees and paise.
func FromRupees(rupees int64, paise int64) Amount {
	return Amount(rupees*100 + paise)
}

// Mul returns the line extension for a unit price and quantity.
func (a Amount) Mul(quantity int) Amount {
	return a * Amount(quantity)
}

// String renders the amount with two decimals and no currency symbol,
// e.g. "25.99".
func (a Amount) String() string {
	neg := a < 0
	if neg {
		a = -a
	}
	s := fmt.Sprintf("%d.%02d", a/100, a%100)
	if neg {
		return "-" + s
	}
	return s
}

// Format renders the amount as a rupee string with Indian digit grouping,
// e.g. "₹1,25,000.50".
func Format(a Amount) string {
	neg := a < 0
	if neg {
		a = -a
	}

	whole := strconv.FormatInt(int64(a/100), 10)

	var b strings.Builder
	b.Grow(len(whole) + len(whole)/2 + 8)
	if neg {
		b.WriteString("-₹")
	} else {
		b.WriteString("₹")
	}

	// Indian grouping: last three digits, then pairs. The final 3-digit
	// group always follows a non-empty head, so every head segment gets
	// a trailing comma.
	if len(whole) <= 3 {
		b.WriteString(whole)
	} else {
		head := whole[:len(whole)-3]
		if len(head)%2 == 1 {
			b.WriteString(head[:1])
			b.WriteByte(',')
			head = head[1:]
		}
		for i := 0; i < len(head); i += 2 {
			b.WriteString(head[i : i+2])
			b.WriteByte(',')
		}
		b.WriteString(whole[len(whole)-3:])
	}

	fmt.Fprintf(&b, ".%02d", a%100)
	return b.String()
}

// MarshalJSON renders amounts as decimal strings so clients never see raw
// paise counts.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts either a decimal string ("25.99") or a plain
// number of rupees.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Parse reads a decimal rupee string with up to two fractional digits.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimals", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}

	// ParseUint rejects sign characters, so strays like "1.-5" or
	// "+1.00" fail instead of silently parsing.
	w, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	f, err := strconv.ParseUint(frac, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	a := Amount(int64(w)*100 + int64(f))
	if neg {
		a = -a
	}
	return a, nil
}
