package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
	"github.com/ranashahzaibf22/zero-limit/internal/pricing"
)

type addItemRequest struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

func getCartHandler(carts CartStore, calc pricing.Calculator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		cart, err := carts.Load(c.Request.Context(), sid)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to load cart")
			return
		}
		respondData(c, http.StatusOK, toCartView(sid, cart, calc))
	}
}

func addCartItemHandler(carts CartStore, products ProductService, calc pricing.Calculator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.ProductID) == "" {
			respondError(c, http.StatusBadRequest, "product id required")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		ctx := c.Request.Context()
		product, err := products.Get(ctx, req.ProductID)
		if err != nil {
			if isNotFound(err) {
				respondError(c, http.StatusNotFound, "product not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "failed to load product")
			return
		}

		var variant *domain.ProductVariant
		if req.VariantID != "" {
			variant = product.Variant(req.VariantID)
			if variant == nil {
				respondError(c, http.StatusBadRequest, "variant not found for product")
				return
			}
		}

		sid := sessionID(c)
		cart, err := carts.Load(ctx, sid)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to load cart")
			return
		}
		if err := cart.AddItem(*product, variant, req.Quantity); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := carts.Save(ctx, sid, cart); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to save cart")
			return
		}
		respondData(c, http.StatusOK, toCartView(sid, cart, calc))
	}
}

func updateCartItemHandler(carts CartStore, calc pricing.Calculator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.ProductID) == "" {
			respondError(c, http.StatusBadRequest, "product id required")
			return
		}

		ctx := c.Request.Context()
		sid := sessionID(c)
		cart, err := carts.Load(ctx, sid)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to load cart")
			return
		}
		cart.UpdateQuantity(req.ProductID, req.VariantID, req.Quantity)
		if err := carts.Save(ctx, sid, cart); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to save cart")
			return
		}
		respondData(c, http.StatusOK, toCartView(sid, cart, calc))
	}
}

func removeCartItemHandler(carts CartStore, calc pricing.Calculator) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("productId")
		variantID := c.Query("variantId")
		if strings.TrimSpace(productID) == "" {
			respondError(c, http.StatusBadRequest, "product id required")
			return
		}

		ctx := c.Request.Context()
		sid := sessionID(c)
		cart, err := carts.Load(ctx, sid)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to load cart")
			return
		}
		cart.RemoveItem(productID, variantID)
		if err := carts.Save(ctx, sid, cart); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to save cart")
			return
		}
		respondData(c, http.StatusOK, toCartView(sid, cart, calc))
	}
}

func clearCartHandler(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		if err := carts.Clear(c.Request.Context(), sid); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to clear cart")
			return
		}
		respondMessage(c, http.StatusOK, nil, "cart cleared")
	}
}
