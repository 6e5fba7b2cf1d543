package test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/rotemed/pharmastore/core/invoice"
)

func TestBillingFlow(t *testing.T) {
	env := NewTestEnv(t)

	paracetamol := env.product(t, "Paracetamol 500mg")
	vitamin := env.product(t, "Vitamin D3 1000IU")

	// Generation is guarded until the draft is complete.
	w := env.do(t, http.MethodPost, "/billing/generate", nil, nil)
	wantStatus(t, w, http.StatusUnprocessableEntity)

	var d invoice.Draft
	w = env.do(t, http.MethodPut, "/billing/customer",
		map[string]string{"name": "Shree Medical Stores", "phone": "9876543210"}, &d)
	wantStatus(t, w, http.StatusOK)

	w = env.do(t, http.MethodPut, "/billing/items",
		map[string]any{"productId": paracetamol.ID, "quantity": 2}, &d)
	wantStatus(t, w, http.StatusOK)

	w = env.do(t, http.MethodPut, "/billing/items",
		map[string]any{"productId": vitamin.ID, "quantity": 1}, &d)
	wantStatus(t, w, http.StatusOK)

	if len(d.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(d.Lines))
	}
	if d.Summary.Subtotal != 7073 || d.Summary.Tax != 707 || d.Summary.GrandTotal != 7780 {
		t.Fatalf("unexpected summary: %+v", d.Summary)
	}

	// The billing draft is independent of the cart.
	var count struct {
		Count int `json:"count"`
	}
	w = env.do(t, http.MethodGet, "/cart/count", nil, &count)
	wantStatus(t, w, http.StatusOK)
	if count.Count != 0 {
		t.Fatalf("billing lines leaked into the cart: count %d", count.Count)
	}

	// Clamp law applies to billing rows too.
	w = env.do(t, http.MethodPut, "/billing/items/"+d.Lines[0].LineID,
		map[string]any{"quantity": -5}, &d)
	wantStatus(t, w, http.StatusOK)
	if d.Lines[0].Quantity != 2 {
		t.Fatalf("clamped update changed quantity to %d", d.Lines[0].Quantity)
	}

	var inv invoice.Invoice
	w = env.do(t, http.MethodPost, "/billing/generate", nil, &inv)
	wantStatus(t, w, http.StatusCreated)

	if !strings.HasPrefix(inv.Number, "INV-") {
		t.Fatalf("invoice number %q lacks INV- prefix", inv.Number)
	}
	if inv.Summary.GrandTotal != 7780 {
		t.Fatalf("grand total = %d, want 7780", inv.Summary.GrandTotal)
	}

	// Generated invoices show up for the back office only.
	w = env.do(t, http.MethodGet, "/admin/invoices", nil, nil)
	wantStatus(t, w, http.StatusUnauthorized)

	env.login(t)
	defer env.logout(t)

	var invs []invoice.Invoice
	w = env.do(t, http.MethodGet, "/admin/invoices", nil, &invs)
	wantStatus(t, w, http.StatusOK)
	if len(invs) != 1 || invs[0].Number != inv.Number {
		t.Fatalf("unexpected invoice list: %+v", invs)
	}
}
