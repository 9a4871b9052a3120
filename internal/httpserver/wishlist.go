package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

func listWishlistHandler(wishlist WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		if uid == nil {
			respondError(c, http.StatusUnauthorized, "please sign in to use the wishlist")
			return
		}
		items, err := wishlist.List(c.Request.Context(), *uid)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to list wishlist")
			return
		}
		respondData(c, http.StatusOK, items)
	}
}

func addWishlistHandler(wishlist WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		if uid == nil {
			respondError(c, http.StatusUnauthorized, "please sign in to use the wishlist")
			return
		}
		var req wishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.ProductID) == "" {
			respondError(c, http.StatusBadRequest, "product id required")
			return
		}
		item, err := wishlist.Add(c.Request.Context(), *uid, req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				respondError(c, http.StatusConflict, "product already in wishlist")
				return
			}
			respondError(c, http.StatusInternalServerError, "failed to add to wishlist")
			return
		}
		respondData(c, http.StatusCreated, item)
	}
}

func removeWishlistHandler(wishlist WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		if uid == nil {
			respondError(c, http.StatusUnauthorized, "please sign in to use the wishlist")
			return
		}
		productID := c.Query("productId")
		if strings.TrimSpace(productID) == "" {
			respondError(c, http.StatusBadRequest, "product id required")
			return
		}
		if err := wishlist.Remove(c.Request.Context(), *uid, productID); err != nil {
			if isNotFound(err) {
				respondError(c, http.StatusNotFound, "product not in wishlist")
				return
			}
			respondError(c, http.StatusInternalServerError, "failed to remove from wishlist")
			return
		}
		respondMessage(c, http.StatusOK, nil, "removed from wishlist")
	}
}
