package invoice

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

const sessionKey = "billing_id"

func draftID(ctx context.Context, session *scs.SessionManager) string {
	id := session.GetString(ctx, sessionKey)
	if id == "" {
		id = validate.GenerateID()
		session.Put(ctx, sessionKey, id)
	}
	return id
}

func HandleShow(store *Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		d := store.Get(draftID(ctx, session))
		return web.Respond(ctx, w, d, http.StatusOK)
	}
}

func HandleSetCustomer(store *Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var c Customer
		if err := web.Decode(w, r, &c); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(c); err != nil {
			return weberr.Unprocessable(err)
		}

		d := store.SetCustomer(draftID(ctx, session), c)
		return web.Respond(ctx, w, d, http.StatusOK)
	}
}

// HandleCreateLine looks the product up in the catalog and appends a
// billing row at its current price.
func HandleCreateLine(store *Store, products *catalog.Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in LineNew
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

		d, err := store.AddLine(draftID(ctx, session), p.Name, p.Price, in.Quantity)
		if err != nil {
			return weberr.Unprocessable(err)
		}

		return web.Respond(ctx, w, d, http.StatusOK)
	}
}

func HandleUpdateLine(store *Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		lineID := web.Param(r, "line_id")

		var up QuantityUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		d := store.UpdateLineQuantity(draftID(ctx, session), lineID, up.Quantity)
		return web.Respond(ctx, w, d, http.StatusOK)
	}
}

func HandleDeleteLine(store *Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		lineID := web.Param(r, "line_id")

		d := store.RemoveLine(draftID(ctx, session), lineID)
		return web.Respond(ctx, w, d, http.StatusOK)
	}
}

func HandleDelete(store *Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		d := store.Clear(draftID(ctx, session))
		return web.Respond(ctx, w, d, http.StatusOK)
	}
}

// HandleGenerate freezes the draft into a numbered invoice.
func HandleGenerate(store *Store, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		inv, err := store.Generate(draftID(ctx, session))
		if err != nil {
			if errors.Is(err, ErrNoCustomer) || errors.Is(err, ErrNoLines) {
				return weberr.Unprocessable(err)
			}
			return fmt.Errorf("generating invoice: %w", err)
		}

		return web.Respond(ctx, w, inv, http.StatusCreated)
	}
}

// HandleList is the admin view over everything generated so far.
func HandleList(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, store.Generated(), http.StatusOK)
	}
}
