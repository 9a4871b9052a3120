// Package checkout assembles validated order submissions from the session
// cart, the pricing engine, and the shopper's shipping and payment input.
package checkout

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
	"github.com/ranashahzaibf22/zero-limit/internal/pricing"
)

const (
	// MessageCOD confirms a cash-on-delivery order.
	MessageCOD = "Order placed successfully! Pay on delivery."
	// MessagePreBooking confirms a pre-booking order; the store contacts the
	// customer rather than confirming payment immediately.
	MessagePreBooking = "Order received! We will contact you for payment details."
)

type OrderRepo interface {
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
}

type CartStore interface {
	Clear(ctx context.Context, sessionID string) error
}

// SubmissionError wraps a failure from the external order store. The cart is
// left untouched when it occurs so the shopper can retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return "order submission failed: " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

type Service struct {
	orders OrderRepo
	carts  CartStore
	calc   pricing.Calculator
	logger *log.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func New(orders OrderRepo, carts CartStore, calc pricing.Calculator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		orders:   orders,
		carts:    carts,
		calc:     calc,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

type Input struct {
	SessionID     string
	UserID        *string
	Cart          *domain.Cart
	Address       domain.Address
	PaymentMode   domain.PaymentMode
	ContactNumber string
	Promotion     *domain.Promotion
}

type Result struct {
	Order   *domain.Order
	Totals  pricing.Totals
	Message string
}

// Submit validates the input, builds the order payload from a snapshot of the
// cart, and submits it. All validation runs before anything leaves the
// process. One submission per session may be outstanding; a second attempt is
// rejected rather than queued. On success the session cart is cleared exactly
// once; on failure it is preserved for retry and the error is surfaced.
func (s *Service) Submit(ctx context.Context, in Input) (*Result, error) {
	if in.Cart == nil || in.Cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	if !in.PaymentMode.Valid() {
		return nil, domain.ErrInvalidPaymentMode
	}
	if in.PaymentMode == domain.PaymentPreBooking && strings.TrimSpace(in.ContactNumber) == "" {
		return nil, domain.ErrMissingContact
	}
	if !in.Address.Complete() {
		return nil, domain.ErrInvalidAddress
	}

	if err := s.begin(in.SessionID); err != nil {
		return nil, err
	}
	defer s.end(in.SessionID)

	// Snapshot: later cart mutations must not affect the in-flight payload.
	lines := make([]domain.CartLine, len(in.Cart.Lines))
	copy(lines, in.Cart.Lines)

	totals := s.calc.Compute(in.Cart, in.Promotion)

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		var variantID *string
		if line.VariantID != "" {
			v := line.VariantID
			variantID = &v
		}
		items = append(items, domain.OrderItem{
			ProductID:      line.ProductID,
			VariantID:      variantID,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
		})
	}

	promoCode := ""
	if in.Promotion != nil {
		promoCode = in.Promotion.Code
	}

	order := domain.Order{
		UserID:          in.UserID,
		SubtotalCents:   totals.SubtotalCents,
		ShippingCents:   totals.ShippingCents,
		DiscountCents:   totals.DiscountCents,
		TotalCents:      totals.GrandTotalCents,
		PaymentMode:     in.PaymentMode,
		ContactNumber:   strings.TrimSpace(in.ContactNumber),
		PromoCode:       promoCode,
		ShippingAddress: in.Address,
		Items:           items,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}

	in.Cart.Clear()
	if s.carts != nil && in.SessionID != "" {
		if err := s.carts.Clear(ctx, in.SessionID); err != nil {
			// Order exists either way; a stale persisted cart is recoverable.
			s.logger.Printf("checkout: clear session cart session=%s error=%v", in.SessionID, err)
		}
	}

	message := MessageCOD
	if in.PaymentMode == domain.PaymentPreBooking {
		message = MessagePreBooking
	}

	s.logger.Printf("checkout: order submitted id=%s total_cents=%d payment=%s", created.ID, created.TotalCents, created.PaymentMode)
	return &Result{Order: created, Totals: totals, Message: message}, nil
}

func (s *Service) begin(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return domain.ErrSubmitInFlight
	}
	s.inFlight[sessionID] = struct{}{}
	return nil
}

func (s *Service) end(sessionID string) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	delete(s.inFlight, sessionID)
	s.mu.Unlock()
}
