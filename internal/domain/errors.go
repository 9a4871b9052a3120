package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidQuantity is returned when a cart mutation receives a
	// non-positive quantity where a positive one is required.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrVariantMismatch is returned when a variant does not belong to the
	// product it is added with.
	ErrVariantMismatch = errors.New("variant does not belong to product")

	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidPaymentMode = errors.New("invalid payment type")
	ErrMissingContact     = errors.New("contact number required for pre-booking")
	ErrInvalidAddress     = errors.New("incomplete shipping address")
	// ErrSubmitInFlight is returned when a checkout submission is attempted
	// for a session that already has one in progress.
	ErrSubmitInFlight = errors.New("checkout already in progress")

	ErrPromotionNotFound     = errors.New("invalid coupon code")
	ErrPromotionInactive     = errors.New("this coupon is no longer active")
	ErrPromotionExpired      = errors.New("this coupon has expired")
	ErrPromotionLimitReached = errors.New("this coupon has reached its usage limit")
)
