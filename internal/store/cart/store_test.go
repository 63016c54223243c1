package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

func decimalFromString(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", v, err)
	}
	return d
}

func product(id int, price float64) domain.Product {
	return domain.Product{ID: id, Title: "Product", Price: price}
}

func TestAddIsEnsurePresent(t *testing.T) {
	s := New()
	s.Add(product(1, 9.99))
	s.Add(product(1, 9.99))

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != 1 {
		t.Fatalf("re-adding must not increment quantity, got %d", items[0].Quantity)
	}
	if !items[0].Selected {
		t.Fatalf("new item must be selected")
	}
}

func TestAddAppendsInOrder(t *testing.T) {
	s := New()
	s.Add(product(3, 1))
	s.Add(product(1, 1))
	s.Add(product(2, 1))

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []int{3, 1, 2} {
		if items[i].Product.ID != want {
			t.Fatalf("expected id %d at position %d, got %d", want, i, items[i].Product.ID)
		}
	}
}

func TestAddDoesNotReorderExisting(t *testing.T) {
	s := New()
	s.Add(product(1, 1))
	s.Add(product(2, 1))
	s.Add(product(1, 1))

	items := s.Items()
	if items[0].Product.ID != 1 || items[1].Product.ID != 2 {
		t.Fatalf("re-add must not reorder, got %+v", items)
	}
}

func TestRemoveMissingIsNoop(t *testing.T) {
	s := New()
	s.Add(product(1, 1))
	s.Remove(99)

	if len(s.Items()) != 1 {
		t.Fatalf("removing a missing id must not change the cart")
	}
}

func TestUpdateQuantity(t *testing.T) {
	s := New()
	s.Add(product(1, 1))
	s.UpdateQuantity(1, 7)

	items := s.Items()
	if items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", items[0].Quantity)
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	s := New()
	s.Add(product(1, 1))
	s.UpdateQuantity(1, 0)

	if len(s.Items()) != 0 {
		t.Fatalf("quantity 0 must remove the item")
	}
}

func TestUpdateQuantityNegativeRemoves(t *testing.T) {
	s := New()
	s.Add(product(1, 1))
	s.UpdateQuantity(1, -3)

	if len(s.Items()) != 0 {
		t.Fatalf("negative quantity must remove the item")
	}
}

func TestUpdateQuantityMissingIsNoop(t *testing.T) {
	s := New()
	s.Add(product(1, 1))
	s.UpdateQuantity(99, 5)

	items := s.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("updating a missing id must not change the cart, got %+v", items)
	}
}

func TestToggleSelect(t *testing.T) {
	s := New()
	s.Add(product(1, 1))

	s.ToggleSelect(1)
	if s.Items()[0].Selected {
		t.Fatalf("expected item deselected after toggle")
	}
	s.ToggleSelect(1)
	if !s.Items()[0].Selected {
		t.Fatalf("expected item selected after second toggle")
	}
	s.ToggleSelect(99) // missing id, no-op
	if len(s.Items()) != 1 {
		t.Fatalf("toggling a missing id must not change the cart")
	}
}

func TestSelectedTotalExcludesUnselected(t *testing.T) {
	s := New()
	s.Add(product(1, 10))
	s.UpdateQuantity(1, 2)
	s.Add(product(2, 5))
	s.UpdateQuantity(2, 3)
	s.ToggleSelect(2)

	if got := s.SelectedTotal().StringFixed(2); got != "20.00" {
		t.Fatalf("expected 20.00, got %s", got)
	}
}

func TestSelectedTotalEmptyCart(t *testing.T) {
	s := New()
	if got := s.SelectedTotal().StringFixed(2); got != "0.00" {
		t.Fatalf("expected 0.00, got %s", got)
	}
}

func TestSelectedTotalKeepsPrecision(t *testing.T) {
	s := New()
	s.Add(product(1, 0.1))
	s.UpdateQuantity(1, 3)

	if !s.SelectedTotal().Equal(decimalFromString(t, "0.3")) {
		t.Fatalf("expected exact 0.3, got %s", s.SelectedTotal())
	}
}

func TestItemsReturnsSnapshot(t *testing.T) {
	s := New()
	s.Add(product(1, 1))

	items := s.Items()
	items[0].Quantity = 42

	if s.Items()[0].Quantity != 1 {
		t.Fatalf("mutating the snapshot must not affect the store")
	}
}
