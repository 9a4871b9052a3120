package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
	checkoutsvc "github.com/ranashahzaibf22/zero-limit/internal/service/checkout"
)

// submitTimeout bounds the whole order submission, including the order store
// round trip.
const submitTimeout = 10 * time.Second

type checkoutRequest struct {
	Address       addressRequest `json:"address"`
	PaymentType   string         `json:"paymentType"`
	ContactNumber string         `json:"contactNumber,omitempty"`
	PromoCode     string         `json:"promoCode,omitempty"`
}

type addressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type checkoutResponse struct {
	Order   *domain.Order `json:"order"`
	Message string        `json:"message"`
}

func checkoutHandler(checkout CheckoutService, carts CartStore, promotions PromotionService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		sid := sessionID(c)
		ctx, cancel := context.WithTimeout(c.Request.Context(), submitTimeout)
		defer cancel()

		cart, err := carts.Load(ctx, sid)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to load cart")
			return
		}

		var promo *domain.Promotion
		if req.PromoCode != "" {
			promo, err = promotions.Validate(ctx, req.PromoCode)
			if err != nil {
				respondError(c, promotionStatus(err), err.Error())
				return
			}
		}

		result, err := checkout.Submit(ctx, checkoutsvc.Input{
			SessionID: sid,
			UserID:    currentUserID(c),
			Cart:      cart,
			Address: domain.Address{
				Street:     req.Address.Street,
				City:       req.Address.City,
				State:      req.Address.State,
				PostalCode: req.Address.PostalCode,
				Country:    req.Address.Country,
			},
			PaymentMode:   domain.PaymentMode(req.PaymentType),
			ContactNumber: req.ContactNumber,
			Promotion:     promo,
		})
		if err != nil {
			status, msg := checkoutStatus(err)
			if status == http.StatusInternalServerError {
				logger.Printf("checkout: session %s: %v", sid, err)
			}
			respondError(c, status, msg)
			return
		}

		respondMessage(c, http.StatusCreated, checkoutResponse{Order: result.Order, Message: result.Message}, result.Message)
	}
}

func checkoutStatus(err error) (int, string) {
	var subErr *checkoutsvc.SubmissionError
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest, "cart is empty"
	case errors.Is(err, domain.ErrInvalidPaymentMode):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrMissingContact):
		return http.StatusBadRequest, "contact number is required for pre-booking"
	case errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest, "shipping address is incomplete"
	case errors.Is(err, domain.ErrSubmitInFlight):
		return http.StatusConflict, "an order is already being placed for this session"
	case errors.As(err, &subErr):
		return http.StatusBadGateway, "order could not be placed, please try again"
	default:
		return http.StatusInternalServerError, "order could not be placed"
	}
}
