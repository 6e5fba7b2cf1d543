package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/rotemed/pharmastore/api/web"
	"github.com/rotemed/pharmastore/api/weberr"
	"github.com/rotemed/pharmastore/core/catalog"
	"github.com/rotemed/pharmastore/validate"
)

const sessionKey = "cart_id"

// ID returns the cart ID bound to the session, minting one on first use.
// Shoppers don't log in, so the session cookie is the cart's whole
// identity and the cart dies with it.
func ID(ctx context.Context, session *scs.SessionManager) string {
	id := session.GetString(ctx, sessionKey)
	if id == "" {
		id = validate.GenerateID()
		session.Put(ctx, sessionKey, id)
	}
	return id
}

func HandleShow(store *Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		snap := store.Get(ID(ctx, session))
		return web.Respond(ctx, w, snap, http.StatusOK)
	}
}

func HandleCount(store *Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		count := struct {
			Count int `json:"count"`
		}{
			Count: store.Count(ID(ctx, session)),
		}
		return web.Respond(ctx, w, count, http.StatusOK)
	}
}

// HandleCreateItem resolves the product from the catalog and adds it to
// the session's cart, merging by product ID.
func HandleCreateItem(store *Store, products *catalog.Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in ItemNew
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.Unprocessable(err)
		}

		p, err := products.Fetch(in.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching product[%s]: %w", in.ProductID, err)
		}

		item := Item{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			ImageURL:  p.ImageURL,
			Price:     p.Price,
			Quantity:  in.Quantity,
		}

		snap, err := store.AddItem(ID(ctx, session), item)
		if err != nil {
			return weberr.Unprocessable(err)
		}

		return web.Respond(ctx, w, snap, http.StatusOK)
	}
}

// HandleUpdateItem sets a row's quantity. Requests below the minimum of
// 1 are clamped to a no-op, mirroring the quantity steppers in the UI.
func HandleUpdateItem(store *Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		productID := web.Param(r, "product_id")

		var up QuantityUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		snap := store.UpdateQuantity(ID(ctx, session), productID, up.Quantity)
		return web.Respond(ctx, w, snap, http.StatusOK)
	}
}

func HandleDeleteItem(store *Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		productID := web.Param(r, "product_id")

		snap := store.RemoveItem(ID(ctx, session), productID)
		return web.Respond(ctx, w, snap, http.StatusOK)
	}
}

func HandleDelete(store *Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		snap := store.Clear(ID(ctx, session))
		return web.Respond(ctx, w, snap, http.StatusOK)
	}
}
