package api

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"github.com/rotemed/pharmastore/api/middleware"
	"github.com/rotemed/pharmastore/api/web"
	"github.com/rotemed/pharmastore/config"
	"github.com/rotemed/pharmastore/core/admin"
	"github.com/rotemed/pharmastore/core/auth"
	"github.com/rotemed/pharmastore/core/cart"
	"github.com/rotemed/pharmastore/core/catalog"
	"github.com/rotemed/pharmastore/core/invoice"
	"github.com/rotemed/pharmastore/core/order"
	"github.com/rotemed/pharmastore/rate"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin string
	Log        logrus.FieldLogger
	Session    *scs.SessionManager
	Limiter    *rate.Limiter
	Store      config.Store
	Admin      config.Admin
	Products   *catalog.Store
	Carts      *cart.Store
	Orders     *order.Store
	Invoices   *invoice.Store
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, auth.LoadAndSave(cfg.Session))
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.Limiter != nil {
		a.mw = append(a.mw, middleware.RateLimit(cfg.Limiter))
	}

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	admn := auth.Admin(cfg.Session)

	a.Handle(http.MethodGet, "/products/{id}", catalog.HandleShow(cfg.Products))
	a.Handle(http.MethodGet, "/products", catalog.HandleList(cfg.Products))
	a.Handle(http.MethodPost, "/products", catalog.HandleCreate(cfg.Products), admn)
	a.Handle(http.MethodPut, "/products/{id}", catalog.HandleUpdate(cfg.Products), admn)
	a.Handle(http.MethodDelete, "/products/{id}", catalog.HandleDelete(cfg.Products), admn)

	a.Handle(http.MethodGet, "/cart", cart.HandleShow(cfg.Carts, cfg.Session))
	a.Handle(http.MethodGet, "/cart/count", cart.HandleCount(cfg.Carts, cfg.Session))
	a.Handle(http.MethodDelete, "/cart", cart.HandleDelete(cfg.Carts, cfg.Session))
	a.Handle(http.MethodPut, "/cart/items", cart.HandleCreateItem(cfg.Carts, cfg.Products, cfg.Session))
	a.Handle(http.MethodPut, "/cart/items/{product_id}", cart.HandleUpdateItem(cfg.Carts, cfg.Session))
	a.Handle(http.MethodDelete, "/cart/items/{product_id}", cart.HandleDeleteItem(cfg.Carts, cfg.Session))

	a.Handle(http.MethodGet, "/billing", invoice.HandleShow(cfg.Invoices, cfg.Session))
	a.Handle(http.MethodPut, "/billing/customer", invoice.HandleSetCustomer(cfg.Invoices, cfg.Session))
	a.Handle(http.MethodPut, "/billing/items", invoice.HandleCreateLine(cfg.Invoices, cfg.Products, cfg.Session))
	a.Handle(http.MethodPut, "/billing/items/{line_id}", invoice.HandleUpdateLine(cfg.Invoices, cfg.Session))
	a.Handle(http.MethodDelete, "/billing/items/{line_id}", invoice.HandleDeleteLine(cfg.Invoices, cfg.Session))
	a.Handle(http.MethodDelete, "/billing", invoice.HandleDelete(cfg.Invoices, cfg.Session))
	a.Handle(http.MethodPost, "/billing/generate", invoice.HandleGenerate(cfg.Invoices, cfg.Session))

	a.Handle(http.MethodPost, "/orders/whatsapp", order.HandleWhatsAppCheckout(cfg.Orders, cfg.Carts, cfg.Session, cfg.Store))

	a.Handle(http.MethodPost, "/admin/login", auth.HandleLogin(cfg.Session, cfg.Admin))
	a.Handle(http.MethodPost, "/admin/logout", auth.HandleLogout(cfg.Session))
	a.Handle(http.MethodGet, "/admin/stats", admin.HandleStats(cfg.Products, cfg.Orders, cfg.Invoices), admn)
	a.Handle(http.MethodGet, "/admin/orders", order.HandleList(cfg.Orders), admn)
	a.Handle(http.MethodPut, "/admin/orders/{id}/status", order.HandleUpdateStatus(cfg.Orders), admn)
	a.Handle(http.MethodGet, "/admin/invoices", invoice.HandleList(cfg.Invoices), admn)

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
