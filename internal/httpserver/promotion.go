package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
	promotionsvc "github.com/ranashahzaibf22/zero-limit/internal/service/promotion"
)

// validatePromotionHandler checks a coupon code for the shopper. Rejections
// surface the exact reason so the storefront can show it verbatim.
func validatePromotionHandler(promotions PromotionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.TrimSpace(c.Query("code"))
		if code == "" {
			respondError(c, http.StatusBadRequest, "coupon code is required")
			return
		}
		promo, err := promotions.Validate(c.Request.Context(), code)
		if err != nil {
			respondError(c, promotionStatus(err), err.Error())
			return
		}
		respondData(c, http.StatusOK, promo)
	}
}

func promotionStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrPromotionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPromotionInactive),
		errors.Is(err, domain.ErrPromotionExpired),
		errors.Is(err, domain.ErrPromotionLimitReached):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func listPromotionsHandler(promotions PromotionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := promotions.List(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to list promotions")
			return
		}
		respondData(c, http.StatusOK, items)
	}
}

func createPromotionHandler(promotions PromotionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in promotionsvc.UpsertInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		promo, err := promotions.Create(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				respondError(c, http.StatusConflict, "promotion code already exists")
				return
			}
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondData(c, http.StatusCreated, promo)
	}
}

func updatePromotionHandler(promotions PromotionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in promotionsvc.UpsertInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		promo, err := promotions.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			if isNotFound(err) {
				respondError(c, http.StatusNotFound, "promotion not found")
				return
			}
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondData(c, http.StatusOK, promo)
	}
}

func deletePromotionHandler(promotions PromotionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := promotions.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if isNotFound(err) {
				respondError(c, http.StatusNotFound, "promotion not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "failed to delete promotion")
			return
		}
		respondMessage(c, http.StatusOK, nil, "promotion deleted")
	}
}
