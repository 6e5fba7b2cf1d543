package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rotemed/pharmastore/config"
	"github.com/rotemed/pharmastore/core/cart"
	"github.com/rotemed/pharmastore/money"
)

// Message builds the order text sent to the wholesaler over WhatsApp,
// framed in the active skin's voice. The totals are computed before
// this point; the message only renders them.
func Message(cfg config.Store, snap cart.Cart) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s, I would like to place the following order:\n\n", cfg.OrderGreeting(), cfg.StoreName())
	for _, it := range snap.Items {
		fmt.Fprintf(&b, "%s x%d - %s\n", it.Name, it.Quantity, money.Format(it.LineTotal()))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n\n", money.Format(snap.Total))
	b.WriteString(cfg.OrderClosing())

	return b.String()
}

// Link builds the wa.me deep link that opens a chat with the given
// number and the message prefilled.
func Link(number string, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
