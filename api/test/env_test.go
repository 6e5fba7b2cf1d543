package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/rotemed/pharmastore/api"
	"github.com/rotemed/pharmastore/config"
	"github.com/rotemed/pharmastore/core/cart"
	"github.com/rotemed/pharmastore/core/catalog"
	"github.com/rotemed/pharmastore/core/invoice"
	"github.com/rotemed/pharmastore/core/order"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail = "admin@rotemed.com"
	adminPass  = "admin123"
)

// TestEnv runs the whole API against in-memory stores. Each env gets its
// own HTTP client with a cookie jar, so the session (and therefore the
// cart) persists across requests like a browser's would.
type TestEnv struct {
	Server   *httptest.Server
	URL      string
	Products *catalog.Store
	Carts    *cart.Store
	Orders   *order.Store
	Invoices *invoice.Store

	client *http.Client
}

func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	session := scs.New()

	products := catalog.NewStore()
	catalog.Seed(products)

	carts := cart.NewStore()
	orders := order.NewStore()
	invoices := invoice.NewStore(1000)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing admin password: %v", err)
	}

	mux := api.APIMux(api.APIConfig{
		Log:     logger,
		Session: session,
		Store: config.Store{
			Skin:           "rotemed",
			TaxRateBP:      1000,
			WhatsAppNumber: "9325638959",
		},
		Admin: config.Admin{
			Email:        adminEmail,
			PasswordHash: string(hash),
		},
		Products: products,
		Carts:    carts,
		Orders:   orders,
		Invoices: invoices,
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("creating cookie jar: %v", err)
	}

	return &TestEnv{
		Server:   srv,
		URL:      srv.URL,
		Products: products,
		Carts:    carts,
		Orders:   orders,
		Invoices: invoices,
		client:   &http.Client{Jar: jar},
	}
}

func (env *TestEnv) Client() *http.Client {
	return env.client
}

// do sends an optionally-JSON-bodied request and decodes the response
// into out when it is non-nil.
func (env *TestEnv) do(t *testing.T, method string, path string, body any, out any) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		rd = bytes.NewReader(raw)
	}

	r, err := http.NewRequest(method, env.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	w, err := env.client.Do(r)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Body.Close()

	if out != nil {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s %s response: %v", method, path, err)
		}
	} else {
		io.Copy(io.Discard, w.Body)
	}

	return w
}

func (env *TestEnv) login(t *testing.T) {
	t.Helper()

	creds := map[string]string{"email": adminEmail, "password": adminPass}
	w := env.do(t, http.MethodPost, "/admin/login", creds, nil)
	if w.StatusCode != http.StatusNoContent {
		t.Fatalf("admin login failed: status %s", w.Status)
	}
}

func (env *TestEnv) logout(t *testing.T) {
	t.Helper()

	w := env.do(t, http.MethodPost, "/admin/logout", nil, nil)
	if w.StatusCode != http.StatusNoContent {
		t.Fatalf("admin logout failed: status %s", w.Status)
	}
}

// product finds a seeded catalog product by name.
func (env *TestEnv) product(t *testing.T, name string) catalog.Product {
	t.Helper()

	for _, p := range env.Products.List("", "") {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("product %q not seeded", name)
	return catalog.Product{}
}

func wantStatus(t *testing.T, w *http.Response, want int) {
	t.Helper()
	if w.StatusCode != want {
		t.Fatalf("status %s, want %d", w.Status, want)
	}
}
