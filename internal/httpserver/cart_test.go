package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coffeestore/internal/domain"
	"github.com/shopspring/decimal"
)

func errorKind(t *testing.T, body []byte) string {
	t.Helper()
	var parsed struct {
		Error struct {
			Kind string `json:"kind"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal error body %s: %v", body, err)
	}
	return parsed.Error.Kind
}

func TestCartRequiresIdentity(t *testing.T) {
	router := testRouter(t, Deps{})
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGetCartEmptyShape(t *testing.T) {
	svc := &stubCartService{hydrated: &domain.HydratedCart{Items: []domain.HydratedItem{}, Subtotal: decimal.Zero}}
	router := testRouter(t, Deps{CartSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(headerUserID, "owner-a")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastOwner != "owner-a" {
		t.Fatalf("owner not propagated, got %q", svc.lastOwner)
	}
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", rec.Body.String())
	}
}

func TestAddItemDefaultsQuantity(t *testing.T) {
	svc := &stubCartService{cart: &domain.Cart{ID: "c1"}}
	router := testRouter(t, Deps{CartSvc: svc})

	body := `{"productId":"6b1f3f6e-8a3c-4a5e-9a39-111111111111"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerUserID, "owner-a")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastQty != 1 {
		t.Fatalf("expected default quantity 1, got %d", svc.lastQty)
	}
}

func TestAddItemMissingProductID(t *testing.T) {
	router := testRouter(t, Deps{})
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerUserID, "owner-a")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if kind := errorKind(t, rec.Body.Bytes()); kind != kindValidation {
		t.Fatalf("expected %s, got %s", kindValidation, kind)
	}
}

func TestAddItemInvalidQuantityKind(t *testing.T) {
	svc := &stubCartService{err: domain.ErrInvalidQuantity}
	router := testRouter(t, Deps{CartSvc: svc})

	body := `{"productId":"6b1f3f6e-8a3c-4a5e-9a39-111111111111","quantity":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerUserID, "owner-a")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if kind := errorKind(t, rec.Body.Bytes()); kind != kindInvalidQuantity {
		t.Fatalf("expected %s, got %s", kindInvalidQuantity, kind)
	}
}

func TestUpdateItemNotInCart(t *testing.T) {
	svc := &stubCartService{err: domain.ErrItemNotFound}
	router := testRouter(t, Deps{CartSvc: svc})

	req := httptest.NewRequest(http.MethodPut, "/api/cart/items/6b1f3f6e-8a3c-4a5e-9a39-111111111111", strings.NewReader(`{"quantity":5}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerUserID, "owner-a")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if kind := errorKind(t, rec.Body.Bytes()); kind != kindItemNotFound {
		t.Fatalf("expected %s, got %s", kindItemNotFound, kind)
	}
}

func TestRemoveItemPassesPathParam(t *testing.T) {
	svc := &stubCartService{cart: &domain.Cart{ID: "c1"}}
	router := testRouter(t, Deps{CartSvc: svc})

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/6b1f3f6e-8a3c-4a5e-9a39-222222222222", nil)
	req.Header.Set(headerUserID, "owner-a")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastProduct != "6b1f3f6e-8a3c-4a5e-9a39-222222222222" {
		t.Fatalf("product id not propagated, got %q", svc.lastProduct)
	}
}
