package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rotemed/pharmastore/api/web"
	"github.com/rotemed/pharmastore/api/weberr"
	"github.com/rotemed/pharmastore/validate"
)

func HandleList(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		q := r.URL.Query()
		products := store.List(q.Get("category"), q.Get("search"))
		return web.Respond(ctx, w, products, http.StatusOK)
	}
}

func HandleShow(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.Unprocessable(err)
		}

		p, err := store.Fetch(id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(err, weberr.WithFields(map[string]any{"product_id": id}))
			}
			return fmt.Errorf("fetching product[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, p, http.StatusOK)
	}
}

func HandleCreate(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var pn ProductNew
		if err := web.Decode(w, r, &pn); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(pn); err != nil {
			return weberr.Unprocessable(err)
		}

		now := time.Now().UTC()
		p := Product{
			ID:          validate.GenerateID(),
			Name:        pn.Name,
			Category:    pn.Category,
			Description: pn.Description,
			ImageURL:    pn.ImageURL,
			Price:       pn.Price,
			InStock:     pn.InStock,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		store.Create(p)
		return web.Respond(ctx, w, p, http.StatusCreated)
	}
}

func HandleUpdate(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.Unprocessable(err)
		}

		var up ProductUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(up); err != nil {
			return weberr.Unprocessable(err)
		}

		p, err := store.Update(id, up)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(err, weberr.WithFields(map[string]any{"product_id": id}))
			}
			return fmt.Errorf("updating product[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, p, http.StatusOK)
	}
}

func HandleDelete(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.Unprocessable(err)
		}

		if err := store.Delete(id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(err, weberr.WithFields(map[string]any{"product_id": id}))
			}
			return fmt.Errorf("deleting product[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
