package domain

import (
	"strings"
	"time"
)

type PaymentMode string

const (
	// PaymentCOD is cash on delivery: the customer pays when the order arrives.
	PaymentCOD PaymentMode = "cod"
	// PaymentPreBooking defers payment: the store contacts the customer on the
	// recorded number to arrange it.
	PaymentPreBooking PaymentMode = "prebooking"
)

func (m PaymentMode) Valid() bool {
	return m == PaymentCOD || m == PaymentPreBooking
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Complete reports whether every field required for fulfillment is present.
func (a Address) Complete() bool {
	for _, v := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

type Order struct {
	ID              string        `json:"id"`
	UserID          *string       `json:"userId,omitempty"`
	SubtotalCents   int64         `json:"subtotalCents"`
	ShippingCents   int64         `json:"shippingCents"`
	DiscountCents   int64         `json:"discountCents"`
	TotalCents      int64         `json:"totalCents"`
	Status          OrderStatus   `json:"status"`
	PaymentMode     PaymentMode   `json:"paymentType"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	ContactNumber   string        `json:"contactNumber,omitempty"`
	PromoCode       string        `json:"promoCode,omitempty"`
	ShippingAddress Address       `json:"shippingAddress"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	Items           []OrderItem   `json:"items,omitempty"`
}

// OrderItem records the unit price at the time the order was placed.
type OrderItem struct {
	ID             string  `json:"id"`
	OrderID        string  `json:"orderId"`
	ProductID      string  `json:"productId"`
	VariantID      *string `json:"variantId,omitempty"`
	Quantity       int     `json:"quantity"`
	UnitPriceCents int64   `json:"unitPriceCents"`
}
