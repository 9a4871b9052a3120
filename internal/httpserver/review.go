package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reviewsvc "github.com/ranashahzaibf22/zero-limit/internal/service/review"
)

func listReviewsHandler(reviews ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("productId")
		if productID == "" {
			respondError(c, http.StatusBadRequest, "product id required")
			return
		}
		out, err := reviews.ListByProduct(c.Request.Context(), productID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to list reviews")
			return
		}
		respondData(c, http.StatusOK, out)
	}
}

func createReviewHandler(reviews ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		if uid == nil {
			respondError(c, http.StatusUnauthorized, "please sign in to leave a review")
			return
		}
		var in reviewsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		review, err := reviews.Create(c.Request.Context(), *uid, in)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondData(c, http.StatusCreated, review)
	}
}
