package cart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rotemed/pharmastore/money"
)

func checkConsistent(t *testing.T, snap Cart) {
	t.Helper()

	var total money.Amount
	count := 0
	seen := make(map[string]bool)
	for _, it := range snap.Items {
		if it.Quantity < 1 {
			t.Fatalf("item %s has quantity %d", it.ProductID, it.Quantity)
		}
		if seen[it.ProductID] {
			t.Fatalf("duplicate row for product %s", it.ProductID)
		}
		seen[it.ProductID] = true
		total += it.LineTotal()
		count += it.Quantity
	}

	if snap.Total != total {
		t.Fatalf("snapshot total %d, items sum to %d", snap.Total, total)
	}
	if snap.Count != count {
		t.Fatalf("snapshot count %d, items sum to %d", snap.Count, count)
	}
}

func paracetamol(qty int) Item {
	return Item{ProductID: "p1", Name: "Paracetamol 500mg", Category: "Pain Relief", Price: 2599, Quantity: qty}
}

func amoxicillin(qty int) Item {
	return Item{ProductID: "p2", Name: "Amoxicillin 250mg", Category: "Antibiotics", Price: 4550, Quantity: qty}
}

func TestAddItemMergesByProduct(t *testing.T) {
	s := NewStore()

	snap, err := s.AddItem("c", paracetamol(1))
	if err != nil {
		t.Fatal(err)
	}
	checkConsistent(t, snap)

	snap, err = s.AddItem("c", paracetamol(2))
	if err != nil {
		t.Fatal(err)
	}
	checkConsistent(t, snap)

	if len(snap.Items) != 1 {
		t.Fatalf("expected a single merged row, got %d", len(snap.Items))
	}
	if snap.Items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", snap.Items[0].Quantity)
	}
	if snap.Total != 7797 {
		t.Fatalf("expected total 7797, got %d", snap.Total)
	}
}

func TestAddItemRejectsInvalidQuantity(t *testing.T) {
	s := NewStore()

	if _, err := s.AddItem("c", paracetamol(0)); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := s.AddItem("c", paracetamol(-2)); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	if snap := s.Get("c"); len(snap.Items) != 0 {
		t.Fatalf("rejected adds must not touch the cart, got %d items", len(snap.Items))
	}
}

func TestRemoveItem(t *testing.T) {
	s := NewStore()

	s.AddItem("c", paracetamol(1))
	s.AddItem("c", amoxicillin(1))

	snap := s.RemoveItem("c", "p2")
	checkConsistent(t, snap)
	if len(snap.Items) != 1 || snap.Items[0].ProductID != "p1" {
		t.Fatalf("unexpected items after removal: %+v", snap.Items)
	}

	// Removing something that isn't there is a no-op, not an error.
	snap = s.RemoveItem("c", "missing")
	checkConsistent(t, snap)
	if len(snap.Items) != 1 {
		t.Fatalf("no-op removal changed the cart: %+v", snap.Items)
	}

	snap = s.RemoveItem("c", "p1")
	checkConsistent(t, snap)
	if len(snap.Items) != 0 || snap.Total != 0 {
		t.Fatalf("expected empty cart, got %d items total %d", len(snap.Items), snap.Total)
	}
}

func TestUpdateQuantityClampsBelowOne(t *testing.T) {
	s := NewStore()
	s.AddItem("c", paracetamol(4))

	for _, qty := range []int{0, -5} {
		snap := s.UpdateQuantity("c", "p1", qty)
		checkConsistent(t, snap)
		if snap.Items[0].Quantity != 4 {
			t.Fatalf("update to %d must be a no-op, quantity became %d", qty, snap.Items[0].Quantity)
		}
	}

	snap := s.UpdateQuantity("c", "p1", 2)
	checkConsistent(t, snap)
	if snap.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", snap.Items[0].Quantity)
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.AddItem("c", paracetamol(2))
	s.AddItem("c", amoxicillin(3))

	snap := s.Clear("c")
	checkConsistent(t, snap)

	if len(snap.Items) != 0 || snap.Total != 0 {
		t.Fatalf("expected empty cart, got %+v", snap)
	}
	if s.Count("c") != 0 {
		t.Fatalf("expected count 0, got %d", s.Count("c"))
	}
}

func TestCheckoutScenario(t *testing.T) {
	s := NewStore()

	snap, _ := s.AddItem("c", paracetamol(1))
	checkConsistent(t, snap)

	snap, _ = s.AddItem("c", amoxicillin(1))
	checkConsistent(t, snap)

	if got := s.Count("c"); got != 2 {
		t.Fatalf("expected count 2, got %d", got)
	}
	if snap.Total != 7149 {
		t.Fatalf("expected total 7149, got %d", snap.Total)
	}

	snap = s.UpdateQuantity("c", "p1", 3)
	checkConsistent(t, snap)
	if snap.Total != 12347 {
		t.Fatalf("expected total 12347, got %d", snap.Total)
	}

	snap = s.RemoveItem("c", "p2")
	checkConsistent(t, snap)

	want := []Item{paracetamol(3)}
	if diff := cmp.Diff(want, snap.Items); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
	if snap.Total != 7797 {
		t.Fatalf("expected total 7797, got %d", snap.Total)
	}
}

func TestCartsAreIndependent(t *testing.T) {
	s := NewStore()
	s.AddItem("a", paracetamol(1))
	s.AddItem("b", amoxicillin(5))

	if got := s.Count("a"); got != 1 {
		t.Fatalf("cart a count = %d, want 1", got)
	}
	if got := s.Count("b"); got != 5 {
		t.Fatalf("cart b count = %d, want 5", got)
	}
}

func TestSubscriberSeesConsistentSnapshots(t *testing.T) {
	s := NewStore()

	var got []Cart
	s.Subscribe(func(cartID string, snap Cart) {
		if cartID != "c" {
			t.Fatalf("unexpected cart id %q", cartID)
		}
		got = append(got, snap)
	})

	s.AddItem("c", paracetamol(2))
	s.UpdateQuantity("c", "p1", 5)
	s.RemoveItem("c", "p1")
	s.Clear("c")

	if len(got) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(got))
	}
	for _, snap := range got {
		checkConsistent(t, snap)
	}
	if got[1].Total != 12995 {
		t.Fatalf("second snapshot total = %d, want 12995", got[1].Total)
	}
	if got[3].Total != 0 || len(got[3].Items) != 0 {
		t.Fatalf("final snapshot should be empty, got %+v", got[3])
	}
}
