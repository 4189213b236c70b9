package cart

import (
	"context"
	"errors"
	"testing"

	"coffeestore/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	ownerA   = "owner-a"
	productX = "6b1f3f6e-8a3c-4a5e-9a39-111111111111"
	productY = "6b1f3f6e-8a3c-4a5e-9a39-222222222222"
)

// fakeRepo mirrors the storage contract in memory: merge-on-add, absolute set
// on existing lines only, idempotent remove.
type fakeRepo struct {
	carts map[string]*domain.Cart // keyed by owner
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{carts: map[string]*domain.Cart{}}
}

func (f *fakeRepo) EnsureByOwner(_ context.Context, owner string) (*domain.Cart, error) {
	if cart, ok := f.carts[owner]; ok {
		return cart, nil
	}
	cart := &domain.Cart{ID: "cart-" + owner, Owner: owner}
	f.carts[owner] = cart
	return cart, nil
}

func (f *fakeRepo) GetByOwner(_ context.Context, owner string) (*domain.Cart, error) {
	cart, ok := f.carts[owner]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cart, nil
}

func (f *fakeRepo) byID(cartID string) *domain.Cart {
	for _, cart := range f.carts {
		if cart.ID == cartID {
			return cart
		}
	}
	return nil
}

func (f *fakeRepo) AddItem(_ context.Context, cartID, productID string, quantity int) error {
	cart := f.byID(cartID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			return nil
		}
	}
	cart.Items = append(cart.Items, domain.CartItem{ProductID: productID, Quantity: quantity})
	return nil
}

func (f *fakeRepo) SetItemQuantity(_ context.Context, cartID, productID string, quantity int) error {
	cart := f.byID(cartID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (f *fakeRepo) RemoveItem(_ context.Context, cartID, productID string) error {
	cart := f.byID(cartID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubCatalog struct {
	products map[string]*domain.Product
	err      error
}

func (s *stubCatalog) Resolve(_ context.Context, productID string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.products[productID]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func TestAddItemInvalidQuantity(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})
	_, err := svc.AddItem(context.Background(), ownerA, productX, 0)
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	_, err = svc.AddItem(context.Background(), ownerA, productX, -3)
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
}

func TestAddItemInvalidProductRef(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})
	_, err := svc.AddItem(context.Background(), ownerA, "not-a-uuid", 1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddItemMergesQuantities(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})

	cart, err := svc.AddItem(context.Background(), ownerA, productX, 1)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatalf("unexpected cart after first add: %+v", cart.Items)
	}

	cart, err = svc.AddItem(context.Background(), ownerA, productX, 2)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", cart.Items[0].Quantity)
	}
}

func TestAddItemSeparateProductsSeparateLines(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})
	if _, err := svc.AddItem(context.Background(), ownerA, productX, 1); err != nil {
		t.Fatalf("add x: %v", err)
	}
	cart, err := svc.AddItem(context.Background(), ownerA, productY, 4)
	if err != nil {
		t.Fatalf("add y: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Items))
	}
}

func TestUpdateQuantityAbsoluteSet(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})
	if _, err := svc.AddItem(context.Background(), ownerA, productX, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.UpdateQuantity(context.Background(), ownerA, productX, 5)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestUpdateQuantityAbsentLine(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})
	if _, err := svc.AddItem(context.Background(), ownerA, productX, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err := svc.UpdateQuantity(context.Background(), ownerA, productY, 2)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected item not found, got %v", err)
	}
	cart, err := svc.repo.GetByOwner(context.Background(), ownerA)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatalf("cart changed by failed update: %+v", cart.Items)
	}
}

func TestUpdateQuantityNoCart(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})
	_, err := svc.UpdateQuantity(context.Background(), ownerA, productX, 2)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected item not found, got %v", err)
	}
}

func TestUpdateQuantityZeroRejected(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})
	if _, err := svc.AddItem(context.Background(), ownerA, productX, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err := svc.UpdateQuantity(context.Background(), ownerA, productX, 0)
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})
	if _, err := svc.AddItem(context.Background(), ownerA, productX, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err := svc.RemoveItem(context.Background(), ownerA, productX)
	if err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}

	cart, err = svc.RemoveItem(context.Background(), ownerA, productX)
	if err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}
}

func TestRemoveItemNeverAdded(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})
	if _, err := svc.AddItem(context.Background(), ownerA, productX, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.RemoveItem(context.Background(), ownerA, productY)
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("cart changed by removing absent line: %+v", cart.Items)
	}
}

func TestRemoveItemNoCart(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})
	cart, err := svc.RemoveItem(context.Background(), ownerA, productX)
	if err != nil {
		t.Fatalf("remove without cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}
}

func TestGetHydratedNoCart(t *testing.T) {
	svc := New(newFakeRepo(), &stubCatalog{})
	view, err := svc.GetHydrated(context.Background(), ownerA)
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if len(view.Items) != 0 || !view.Subtotal.IsZero() {
		t.Fatalf("expected empty view, got %+v", view)
	}
}

func TestGetHydratedExcludesDeletedProducts(t *testing.T) {
	catalog := &stubCatalog{products: map[string]*domain.Product{
		productX: {ID: productX, Name: "House Blend", Price: decimal.RequireFromString("12.50")},
	}}
	svc := New(newFakeRepo(), catalog)
	if _, err := svc.AddItem(context.Background(), ownerA, productX, 2); err != nil {
		t.Fatalf("add x: %v", err)
	}
	// productY is in the cart but no longer in the catalog.
	if _, err := svc.AddItem(context.Background(), ownerA, productY, 1); err != nil {
		t.Fatalf("add y: %v", err)
	}

	view, err := svc.GetHydrated(context.Background(), ownerA)
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected 1 hydrated line, got %d", len(view.Items))
	}
	if view.Items[0].ProductID != productX || view.Items[0].Quantity != 2 {
		t.Fatalf("unexpected line: %+v", view.Items[0])
	}
	if want := decimal.RequireFromString("25.00"); !view.Subtotal.Equal(want) {
		t.Fatalf("expected subtotal %s, got %s", want, view.Subtotal)
	}

	// Exclusion is display-only: the stored cart keeps both lines.
	cart, err := svc.repo.GetByOwner(context.Background(), ownerA)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("stored cart lost a line: %+v", cart.Items)
	}
}

func TestGetHydratedCatalogFailure(t *testing.T) {
	catalog := &stubCatalog{err: errors.New("catalog down")}
	svc := New(newFakeRepo(), catalog)
	if _, err := svc.AddItem(context.Background(), ownerA, productX, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.GetHydrated(context.Background(), ownerA); err == nil {
		t.Fatalf("expected error when catalog is unreachable")
	}
}
