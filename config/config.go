package config

import "time"

type Config struct {
	Web       Web
	Cors      Cors
	Store     Store
	Admin     Admin
	RateLimit RateLimit
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:8000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type Cors struct {
	Origin string
}

// Store carries the per-skin knobs. The two deployed skins differ only in
// these values, so nothing here may be hard-coded elsewhere.
type Store struct {
	// Skin selects the storefront branding: "rotemed" or "samarth".
	Skin string `conf:"default:rotemed"`

	// Name is the store name used in customer-facing text. Empty means
	// derive it from the skin.
	Name string

	// TaxRateBP is the tax rate in basis points (1000 = 10%). Zero means
	// use the skin default: the rotemed skin bills 10%, the samarth
	// skin 18%.
	TaxRateBP int

	// WhatsAppNumber receives checkout orders, in international format
	// without the plus sign.
	WhatsAppNumber string `conf:"default:9325638959"`

	// Greeting and Closing frame the WhatsApp order message. Empty
	// means derive them from the skin.
	Greeting string
	Closing  string
}

type Admin struct {
	Email string `conf:"default:admin@rotemed.com"`

	// PasswordHash is the bcrypt hash of the back-office password.
	PasswordHash string `conf:"mask"`
}

type RateLimit struct {
	RPS    float64 `conf:"default:20"`
	Burst  int     `conf:"default:40"`
	Expiry int     `conf:"default:10"`
}

// StoreName resolves the display name for the active skin.
func (s Store) StoreName() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Skin == "samarth" {
		return "Samarth Pharma"
	}
	return "RoteMed"
}

// TaxRate resolves the billing rate in basis points for the active
// skin, unless an explicit rate overrides it.
func (s Store) TaxRate() int {
	if s.TaxRateBP != 0 {
		return s.TaxRateBP
	}
	if s.Skin == "samarth" {
		return 1800
	}
	return 1000
}

// OrderGreeting opens the WhatsApp order message in the skin's voice.
func (s Store) OrderGreeting() string {
	if s.Greeting != "" {
		return s.Greeting
	}
	if s.Skin == "samarth" {
		return "नमस्कार"
	}
	return "Hello"
}

// OrderClosing ends the WhatsApp order message in the skin's voice.
func (s Store) OrderClosing() string {
	if s.Closing != "" {
		return s.Closing
	}
	if s.Skin == "samarth" {
		return "Please confirm availability and delivery details with Swami Samarth's grace."
	}
	return "Please confirm availability and delivery details."
}
