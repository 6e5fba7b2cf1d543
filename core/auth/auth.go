package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/rotemed/pharmastore/api/web"
	"github.com/rotemed/pharmastore/api/weberr"
	"github.com/rotemed/pharmastore/config"
	"github.com/rotemed/pharmastore/core/claims"
	"github.com/rotemed/pharmastore/validate"
	"golang.org/x/crypto/bcrypt"
)

const (
	emailKey = "admin_email"
	roleKey  = "admin_role"
)

// LoadAndSave adapts the scs middleware to the web.Handler chain so every
// request carries a session context.
func LoadAndSave(session *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			var err error
			sh := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				err = handler(r.Context(), w, r)
			})

			session.LoadAndSave(sh).ServeHTTP(w, r)
			return err
		}
		return h
	}
	return m
}

// Admin lets the request through only when the session belongs to a
// logged-in back-office user, and stores the claims in the context.
func Admin(session *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			clm := claims.Claims{
				Email: session.GetString(ctx, emailKey),
				Role:  session.GetString(ctx, roleKey),
			}
			ctx = claims.Set(ctx, clm)

			if !claims.IsAdmin(ctx) {
				return weberr.NotAuthorized(errors.New("user is not an admin"))
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}

type LoginNew struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin checks the credentials against the single configured
// back-office account and promotes the session on success.
func HandleLogin(session *scs.SessionManager, cfg config.Admin) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var login LoginNew
		if err := web.Decode(w, r, &login); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(login); err != nil {
			return weberr.Unprocessable(err)
		}

		if login.Email != cfg.Email {
			return weberr.NotAuthorized(errors.New("unknown admin email"))
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(login.Password)); err != nil {
			return weberr.NotAuthorized(fmt.Errorf("password mismatch: %w", err))
		}

		if err := session.RenewToken(ctx); err != nil {
			return fmt.Errorf("renewing session token: %w", err)
		}

		session.Put(ctx, emailKey, login.Email)
		session.Put(ctx, roleKey, claims.RoleAdmin)

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

// HandleLogout drops the whole session, including any cart bound to it.
func HandleLogout(session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := session.Destroy(ctx); err != nil {
			return fmt.Errorf("destroying session: %w", err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
