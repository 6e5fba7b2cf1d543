package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
	"github.com/rotemed/pharmastore/api"
	"github.com/rotemed/pharmastore/config"
	"github.com/rotemed/pharmastore/core/cart"
	"github.com/rotemed/pharmastore/core/catalog"
	"github.com/rotemed/pharmastore/core/invoice"
	"github.com/rotemed/pharmastore/core/order"
	"github.com/rotemed/pharmastore/rate"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := Run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func Run(logger *logrus.Logger) error {
	logger.Infof("starting server")
	defer logger.Info("shutdown complete")

	_ = godotenv.Load()

	const prefix = "PHARMA"
	var cfg config.Config
	if _, err := conf.Parse(prefix, &cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	lw := logger.Writer()
	defer lw.Close()
	errLog := log.New(lw, "", 0)

	sessionManager := scs.New()
	sessionManager.Lifetime = 24 * time.Hour

	products := catalog.NewStore()
	catalog.Seed(products)

	carts := cart.NewStore()
	carts.Subscribe(func(cartID string, snap cart.Cart) {
		logger.WithFields(logrus.Fields{
			"cart_id": cartID,
			"items":   len(snap.Items),
			"total":   snap.Total.String(),
		}).Debug("cart updated")
	})

	orders := order.NewStore()
	order.Seed(orders)

	invoices := invoice.NewStore(cfg.Store.TaxRate())

	limiter := rate.NewLimiter(cfg.RateLimit.Burst, cfg.RateLimit.Expiry, cfg.RateLimit.RPS)

	mux := api.APIMux(api.APIConfig{
		CorsOrigin: cfg.Cors.Origin,
		Log:        logger,
		Session:    sessionManager,
		Limiter:    limiter,
		Store:      cfg.Store,
		Admin:      cfg.Admin,
		Products:   products,
		Carts:      carts,
		Orders:     orders,
		Invoices:   invoices,
	})

	api := http.Server{
		Handler:      mux,
		Addr:         cfg.Web.Address,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     errLog,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Infof("starting api router at %s for the %s skin", api.Addr, cfg.Store.StoreName())
		serverErrors <- api.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Infof("shutting down: signal %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
