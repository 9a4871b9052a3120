package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

func TestGetCartMintsSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _ := testDeps()
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(sessionHeader) == "" {
		t.Fatalf("expected a session header to be issued")
	}
	if !strings.Contains(rec.Body.String(), `"itemCount":0`) {
		t.Fatalf("expected an empty cart, got %s", rec.Body.String())
	}
}

func TestAddCartItemMergesAndReturnsTotals(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, carts := testDeps()
	deps.Products = &stubProductService{
		product: &domain.Product{ID: "prod-1", Name: "Classic Black Hoodie", PriceCents: 5999, Stock: 10},
	}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"productId":"prod-1","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, "sess-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"subtotalCents":11998`) {
		t.Fatalf("expected subtotal 11998, got %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"grandTotalCents":12998`) {
		t.Fatalf("expected grand total with shipping, got %s", rec.Body.String())
	}

	// Same product again merges into one line.
	req = httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId":"prod-1","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, "sess-1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	cart := carts.carts["sess-1"]
	if cart == nil || len(cart.Lines) != 1 {
		t.Fatalf("expected one merged line, got %+v", cart)
	}
	if cart.Lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", cart.Lines[0].Quantity)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _ := testDeps()
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddCartItemUnknownVariant(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _ := testDeps()
	deps.Products = &stubProductService{
		product: &domain.Product{
			ID: "prod-1", Name: "Classic Black Hoodie", PriceCents: 5999,
			Variants: []domain.ProductVariant{{ID: "var-m", Name: "Medium", PriceCents: 5999}},
		},
	}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId":"prod-1","variantId":"var-xxl"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestUpdateCartItemQuantityZeroRemovesLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, carts := testDeps()
	carts.carts["sess-1"] = &domain.Cart{Lines: []domain.CartLine{
		{ProductID: "prod-1", ProductName: "Hoodie", UnitPriceCents: 5999, Quantity: 2},
	}}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodPatch, "/api/cart/items", strings.NewReader(`{"productId":"prod-1","quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, "sess-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cart := carts.carts["sess-1"]; !cart.IsEmpty() {
		t.Fatalf("expected empty cart after zero-quantity update, got %+v", cart)
	}
}

func TestRemoveCartItemRequiresProductID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _ := testDeps()
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestClearCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, carts := testDeps()
	carts.carts["sess-1"] = &domain.Cart{Lines: []domain.CartLine{
		{ProductID: "prod-1", Quantity: 1, UnitPriceCents: 100},
	}}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	req.Header.Set(sessionHeader, "sess-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(carts.cleared) != 1 || carts.cleared[0] != "sess-1" {
		t.Fatalf("expected sess-1 cleared, got %v", carts.cleared)
	}
}
