package httpserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
	checkoutsvc "github.com/ranashahzaibf22/zero-limit/internal/service/checkout"
)

const checkoutBody = `{
	"address": {"street":"12 Mill Rd","city":"Lahore","state":"Punjab","postalCode":"54000","country":"PK"},
	"paymentType": "cod"
}`

func seededCart() *domain.Cart {
	return &domain.Cart{Lines: []domain.CartLine{
		{ProductID: "prod-1", ProductName: "Hoodie", UnitPriceCents: 5999, Quantity: 2},
	}}
}

func TestCheckoutHandlerSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, carts := testDeps()
	carts.carts["sess-1"] = seededCart()
	stub := &stubCheckoutService{result: &checkoutsvc.Result{
		Order:   &domain.Order{ID: "order-1", TotalCents: 12998, PaymentMode: domain.PaymentCOD},
		Message: checkoutsvc.MessageCOD,
	}}
	deps.Checkout = stub
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, "sess-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), checkoutsvc.MessageCOD) {
		t.Fatalf("expected COD confirmation, got %s", rec.Body.String())
	}
	if stub.got.SessionID != "sess-1" {
		t.Fatalf("expected session sess-1, got %q", stub.got.SessionID)
	}
	if stub.got.Cart == nil || stub.got.Cart.ItemCount() != 2 {
		t.Fatalf("expected loaded cart to reach the service, got %+v", stub.got.Cart)
	}
	if stub.got.UserID != nil {
		t.Fatalf("expected guest checkout, got user %v", *stub.got.UserID)
	}
}

func TestCheckoutHandlerPassesUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, carts := testDeps()
	carts.carts["sess-1"] = seededCart()
	stub := &stubCheckoutService{result: &checkoutsvc.Result{
		Order:   &domain.Order{ID: "order-1"},
		Message: checkoutsvc.MessageCOD,
	}}
	deps.Checkout = stub
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, "sess-1")
	req.Header.Set(userHeader, "user-9")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if stub.got.UserID == nil || *stub.got.UserID != "user-9" {
		t.Fatalf("expected user-9, got %v", stub.got.UserID)
	}
}

func TestCheckoutHandlerValidatesPromoFirst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, carts := testDeps()
	carts.carts["sess-1"] = seededCart()
	stub := &stubCheckoutService{}
	deps.Checkout = stub
	deps.Promotions = &stubPromotionService{validateErr: domain.ErrPromotionExpired}
	router := buildRouter(logDiscard(), nil, deps)

	body := strings.Replace(checkoutBody, `"paymentType": "cod"`, `"paymentType": "cod", "promoCode": "SAVE10"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, "sess-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), domain.ErrPromotionExpired.Error()) {
		t.Fatalf("expected the exact rejection reason, got %s", rec.Body.String())
	}
	if stub.calls != 0 {
		t.Fatalf("expected no submission after promo rejection, got %d", stub.calls)
	}
}

func TestCheckoutHandlerErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"empty cart", domain.ErrEmptyCart, http.StatusBadRequest},
		{"invalid payment", domain.ErrInvalidPaymentMode, http.StatusBadRequest},
		{"missing contact", domain.ErrMissingContact, http.StatusBadRequest},
		{"invalid address", domain.ErrInvalidAddress, http.StatusBadRequest},
		{"in flight", domain.ErrSubmitInFlight, http.StatusConflict},
		{"store failure", &checkoutsvc.SubmissionError{Err: errors.New("store down")}, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps, carts := testDeps()
			carts.carts["sess-1"] = seededCart()
			deps.Checkout = &stubCheckoutService{err: tc.err}
			router := buildRouter(logDiscard(), nil, deps)

			req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(checkoutBody))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(sessionHeader, "sess-1")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, rec.Code, rec.Body.String())
			}
		})
	}
}
