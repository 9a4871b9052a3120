package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
	"github.com/ranashahzaibf22/zero-limit/internal/pricing"
)

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, apiResponse{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, apiResponse{Success: true, Data: data, Message: message})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, apiResponse{Success: false, Error: msg})
}

type cartView struct {
	SessionID string            `json:"sessionId"`
	Lines     []domain.CartLine `json:"lines"`
	ItemCount int               `json:"itemCount"`
	Totals    pricing.Totals    `json:"totals"`
}

func toCartView(sessionID string, cart *domain.Cart, calc pricing.Calculator) cartView {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartView{
		SessionID: sessionID,
		Lines:     lines,
		ItemCount: cart.ItemCount(),
		Totals:    calc.Compute(cart, nil),
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
