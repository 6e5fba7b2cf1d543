package order

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/rotemed/pharmastore/api/web"
	"github.com/rotemed/pharmastore/api/weberr"
	"github.com/rotemed/pharmastore/config"
	"github.com/rotemed/pharmastore/core/cart"
	"github.com/rotemed/pharmastore/core/claims"
	"github.com/rotemed/pharmastore/validate"
)

type CheckoutNew struct {
	Customer string `json:"customer"`
}

type CheckoutResponse struct {
	OrderID     string `json:"orderId"`
	WhatsAppURL string `json:"whatsappUrl"`
}

// HandleWhatsAppCheckout snapshots the session's cart, records a pending
// order and answers with the wa.me link the storefront opens. The cart
// stays intact; clearing it is the shopper's call.
func HandleWhatsAppCheckout(orders *Store, carts *cart.Store, session *scs.SessionManager, cfg config.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in CheckoutNew
		if r.ContentLength > 0 {
			if err := web.Decode(w, r, &in); err != nil {
				return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
			}
		}

		snap := carts.Get(cart.ID(ctx, session))
		if len(snap.Items) == 0 {
			err := errors.New("no items to checkout")
			return weberr.Unprocessable(err)
		}

		lines := make([]Line, 0, len(snap.Items))
		for _, it := range snap.Items {
			lines = append(lines, Line{
				Name:      it.Name,
				Price:     it.Price,
				Quantity:  it.Quantity,
				LineTotal: it.LineTotal(),
			})
		}

		ord := Order{
			ID:        validate.GenerateID(),
			Customer:  in.Customer,
			Status:    Pending,
			Lines:     lines,
			Total:     snap.Total,
			CreatedAt: time.Now().UTC(),
		}
		orders.Create(ord)

		resp := CheckoutResponse{
			OrderID:     ord.ID,
			WhatsAppURL: Link(cfg.WhatsAppNumber, Message(cfg, snap)),
		}
		return web.Respond(ctx, w, resp, http.StatusOK)
	}
}

func HandleList(orders *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, orders.List(), http.StatusOK)
	}
}

func HandleUpdateStatus(orders *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.Unprocessable(err)
		}

		var up StatusUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(up); err != nil {
			return weberr.Unprocessable(err)
		}

		ord, err := orders.UpdateStatus(id, up.Status)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				fields := map[string]any{"order_id": id}
				if clm, err := claims.Get(ctx); err == nil {
					fields["admin"] = clm.Email
				}
				return weberr.NotFound(err, weberr.WithFields(fields))
			}
			return fmt.Errorf("updating order[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, ord, http.StatusOK)
	}
}
