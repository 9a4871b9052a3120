package httpserver

import (
	"context"
	"io"
	"log"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
	"github.com/ranashahzaibf22/zero-limit/internal/pricing"
	checkoutsvc "github.com/ranashahzaibf22/zero-limit/internal/service/checkout"
	productsvc "github.com/ranashahzaibf22/zero-limit/internal/service/product"
	promotionsvc "github.com/ranashahzaibf22/zero-limit/internal/service/promotion"
	reviewsvc "github.com/ranashahzaibf22/zero-limit/internal/service/review"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubProductService struct {
	products []domain.Product
	product  *domain.Product
	err      error
}

func (s *stubProductService) List(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductService) Get(_ context.Context, _ string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.product == nil {
		return nil, domain.ErrNotFound
	}
	return s.product, nil
}

func (s *stubProductService) Upsert(_ context.Context, in productsvc.UpsertInput) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Product{ID: "prod-1", Name: in.Name, PriceCents: in.PriceCents}, nil
}

func (s *stubProductService) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubPromotionService struct {
	promo       *domain.Promotion
	validateErr error
	err         error
}

func (s *stubPromotionService) Validate(_ context.Context, _ string) (*domain.Promotion, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return s.promo, nil
}

func (s *stubPromotionService) List(_ context.Context) ([]domain.Promotion, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.promo == nil {
		return []domain.Promotion{}, nil
	}
	return []domain.Promotion{*s.promo}, nil
}

func (s *stubPromotionService) Create(_ context.Context, in promotionsvc.UpsertInput) (*domain.Promotion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Promotion{ID: "promo-1", Code: in.Code, DiscountType: in.DiscountType, Amount: in.Amount, Active: in.Active}, nil
}

func (s *stubPromotionService) Update(_ context.Context, id string, in promotionsvc.UpsertInput) (*domain.Promotion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Promotion{ID: id, Code: in.Code}, nil
}

func (s *stubPromotionService) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubCheckoutService struct {
	result *checkoutsvc.Result
	err    error
	got    checkoutsvc.Input
	calls  int
}

func (s *stubCheckoutService) Submit(_ context.Context, in checkoutsvc.Input) (*checkoutsvc.Result, error) {
	s.got = in
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubReviewService struct {
	reviews *reviewsvc.ProductReviews
	err     error
}

func (s *stubReviewService) Create(_ context.Context, userID string, in reviewsvc.CreateInput) (*domain.Review, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Review{ID: "rev-1", UserID: userID, ProductID: in.ProductID, Rating: in.Rating, Comment: in.Comment}, nil
}

func (s *stubReviewService) ListByProduct(_ context.Context, _ string) (*reviewsvc.ProductReviews, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.reviews == nil {
		return &reviewsvc.ProductReviews{Reviews: []domain.Review{}}, nil
	}
	return s.reviews, nil
}

type stubWishlistService struct {
	items []domain.WishlistItem
	err   error
}

func (s *stubWishlistService) Add(_ context.Context, userID, productID string) (*domain.WishlistItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.WishlistItem{ID: "wish-1", UserID: userID, ProductID: productID}, nil
}

func (s *stubWishlistService) Remove(_ context.Context, _, _ string) error {
	return s.err
}

func (s *stubWishlistService) List(_ context.Context, _ string) ([]domain.WishlistItem, error) {
	return s.items, s.err
}

type stubCartStore struct {
	carts    map[string]*domain.Cart
	loadErr  error
	saveErr  error
	clearErr error
	cleared  []string
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{carts: make(map[string]*domain.Cart)}
}

func (s *stubCartStore) Load(_ context.Context, sessionID string) (*domain.Cart, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if cart, ok := s.carts[sessionID]; ok {
		return cart, nil
	}
	return &domain.Cart{}, nil
}

func (s *stubCartStore) Save(_ context.Context, sessionID string, cart *domain.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.carts[sessionID] = cart
	return nil
}

func (s *stubCartStore) Clear(_ context.Context, sessionID string) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	delete(s.carts, sessionID)
	s.cleared = append(s.cleared, sessionID)
	return nil
}

type stubOrderReader struct {
	orders []domain.Order
	order  *domain.Order
	err    error
}

func (s *stubOrderReader) List(_ context.Context) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderReader) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.order == nil {
		return nil, domain.ErrNotFound
	}
	return s.order, nil
}

func (s *stubOrderReader) ListByUser(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderReader) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Order{ID: id, Status: status}, nil
}

func testDeps() (Deps, *stubCartStore) {
	carts := newStubCartStore()
	return Deps{
		Products:   &stubProductService{},
		Promotions: &stubPromotionService{},
		Checkout:   &stubCheckoutService{},
		Reviews:    &stubReviewService{},
		Wishlist:   &stubWishlistService{},
		Carts:      carts,
		Orders:     &stubOrderReader{},
		Calc:       pricing.NewCalculator(pricing.DefaultShippingFeeCents),
		AdminToken: "test-admin-token",
	}, carts
}
