package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

type orderStatusRequest struct {
	Status string `json:"status"`
}

// listUserOrdersHandler returns the signed-in shopper's order history.
func listUserOrdersHandler(orders OrderReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		if uid == nil {
			respondError(c, http.StatusUnauthorized, "please sign in to view orders")
			return
		}
		items, err := orders.ListByUser(c.Request.Context(), *uid)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to list orders")
			return
		}
		respondData(c, http.StatusOK, items)
	}
}

func listOrdersHandler(orders OrderReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := orders.List(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to list orders")
			return
		}
		respondData(c, http.StatusOK, items)
	}
}

func getOrderHandler(orders OrderReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if isNotFound(err) {
				respondError(c, http.StatusNotFound, "order not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "failed to load order")
			return
		}
		respondData(c, http.StatusOK, order)
	}
}

func updateOrderStatusHandler(orders OrderReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		status := domain.OrderStatus(req.Status)
		if !status.Valid() {
			respondError(c, http.StatusBadRequest, "invalid order status")
			return
		}
		order, err := orders.UpdateStatus(c.Request.Context(), c.Param("id"), status)
		if err != nil {
			if isNotFound(err) {
				respondError(c, http.StatusNotFound, "order not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "failed to update order status")
			return
		}
		respondMessage(c, http.StatusOK, order, "order status updated")
	}
}
