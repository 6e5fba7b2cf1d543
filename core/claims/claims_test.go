package claims

import (
	"context"
	"testing"
)

func TestSetGet(t *testing.T) {
	ctx := context.Background()

	if _, err := Get(ctx); err == nil {
		t.Fatal("Get on an empty context should fail")
	}
	if IsAdmin(ctx) {
		t.Fatal("empty context reported admin")
	}

	ctx = Set(ctx, Claims{Email: "admin@rotemed.com", Role: RoleAdmin})

	clm, err := Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if clm.Email != "admin@rotemed.com" {
		t.Fatalf("email = %q", clm.Email)
	}
	if !IsAdmin(ctx) {
		t.Fatal("admin claims not recognized")
	}
}

func TestIsAdminRejectsOtherRoles(t *testing.T) {
	ctx := Set(context.Background(), Claims{Email: "shopper@example.com", Role: ""})
	if IsAdmin(ctx) {
		t.Fatal("blank role reported admin")
	}
}
