package test

import (
	"net/http"
	"testing"

	"github.com/rotemed/pharmastore/core/admin"
	"github.com/rotemed/pharmastore/core/catalog"
	"github.com/rotemed/pharmastore/core/order"
)

func TestAdminRequiresLogin(t *testing.T) {
	env := NewTestEnv(t)

	for _, path := range []string{"/admin/stats", "/admin/orders", "/admin/invoices"} {
		w := env.do(t, http.MethodGet, path, nil, nil)
		wantStatus(t, w, http.StatusUnauthorized)
	}

	w := env.do(t, http.MethodPost, "/products",
		map[string]any{"name": "x", "category": "y", "description": "z", "imageUrl": "/i.jpg", "price": "1.00"}, nil)
	wantStatus(t, w, http.StatusUnauthorized)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	env := NewTestEnv(t)

	w := env.do(t, http.MethodPost, "/admin/login",
		map[string]string{"email": adminEmail, "password": "wrong"}, nil)
	wantStatus(t, w, http.StatusUnauthorized)

	w = env.do(t, http.MethodPost, "/admin/login",
		map[string]string{"email": "intruder@example.com", "password": adminPass}, nil)
	wantStatus(t, w, http.StatusUnauthorized)
}

func TestAdminProductCRUD(t *testing.T) {
	env := NewTestEnv(t)
	env.login(t)
	defer env.logout(t)

	var created catalog.Product
	w := env.do(t, http.MethodPost, "/products", map[string]any{
		"name":        "Cough Syrup 100ml",
		"category":    "Cold & Flu",
		"description": "Non-drowsy cough relief syrup",
		"imageUrl":    "/images/product7.jpg",
		"price":       "32.50",
		"inStock":     true,
	}, &created)
	wantStatus(t, w, http.StatusCreated)
	if created.Price != 3250 {
		t.Fatalf("created price = %d, want 3250", created.Price)
	}

	var updated catalog.Product
	w = env.do(t, http.MethodPut, "/products/"+created.ID,
		map[string]any{"price": "29.99", "inStock": false}, &updated)
	wantStatus(t, w, http.StatusOK)
	if updated.Price != 2999 || updated.InStock {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Name != "Cough Syrup 100ml" {
		t.Fatalf("partial update clobbered name: %q", updated.Name)
	}

	w = env.do(t, http.MethodDelete, "/products/"+created.ID, nil, nil)
	wantStatus(t, w, http.StatusNoContent)

	w = env.do(t, http.MethodGet, "/products/"+created.ID, nil, nil)
	wantStatus(t, w, http.StatusNotFound)
}

func TestAdminOrdersAndStats(t *testing.T) {
	env := NewTestEnv(t)
	order.Seed(env.Orders)

	env.login(t)
	defer env.logout(t)

	var orders []order.Order
	w := env.do(t, http.MethodGet, "/admin/orders", nil, &orders)
	wantStatus(t, w, http.StatusOK)
	if len(orders) != 3 {
		t.Fatalf("expected 3 seeded orders, got %d", len(orders))
	}

	var pending order.Order
	for _, o := range orders {
		if o.Status == order.Pending {
			pending = o
			break
		}
	}
	if pending.ID == "" {
		t.Fatal("no pending order seeded")
	}

	var confirmed order.Order
	w = env.do(t, http.MethodPut, "/admin/orders/"+pending.ID+"/status",
		map[string]string{"status": "confirmed"}, &confirmed)
	wantStatus(t, w, http.StatusOK)
	if confirmed.Status != order.Confirmed {
		t.Fatalf("status = %s, want confirmed", confirmed.Status)
	}

	var stats admin.Stats
	w = env.do(t, http.MethodGet, "/admin/stats", nil, &stats)
	wantStatus(t, w, http.StatusOK)

	if stats.Products != 6 {
		t.Fatalf("stats.Products = %d, want 6", stats.Products)
	}
	if stats.Orders != 3 {
		t.Fatalf("stats.Orders = %d, want 3", stats.Orders)
	}
	// All three seeded orders are now past pending.
	if stats.Revenue != 67970+54600+36250 {
		t.Fatalf("stats.Revenue = %d", stats.Revenue)
	}
	if len(stats.MonthlySales) == 0 {
		t.Fatal("stats.MonthlySales is empty")
	}
}
