package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/rotemed/pharmastore/api/web"
	"github.com/rotemed/pharmastore/api/weberr"
	"github.com/rotemed/pharmastore/rate"
)

// RateLimit rejects clients that exceed their per-IP token bucket.
func RateLimit(limiter *rate.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !limiter.Check(host) {
				err := errors.New("too many requests")
				return weberr.NewError(err, err.Error(), http.StatusTooManyRequests)
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
