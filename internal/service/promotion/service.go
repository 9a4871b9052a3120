package promotion

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

type Repository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	List(ctx context.Context) ([]domain.Promotion, error)
	Create(ctx context.Context, promo domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, promo domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
}

func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Validate checks whether the code names a usable promotion and returns it.
// It is read-only: usage accounting is not performed here or anywhere in the
// checkout path. Checks run in a fixed order so callers see stable errors:
// not found, inactive, expired, limit reached.
func (s *Service) Validate(ctx context.Context, code string) (*domain.Promotion, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.ErrPromotionNotFound
	}
	promo, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrPromotionNotFound
		}
		return nil, err
	}
	if !promo.Active {
		return nil, domain.ErrPromotionInactive
	}
	if promo.Expiry != nil && promo.Expiry.Before(s.now()) {
		return nil, domain.ErrPromotionExpired
	}
	if promo.UsageLimit != nil && promo.UsageCount >= *promo.UsageLimit {
		return nil, domain.ErrPromotionLimitReached
	}
	return promo, nil
}

type UpsertInput struct {
	Code         string              `json:"code"`
	DiscountType domain.DiscountType `json:"discountType"`
	Amount       decimal.Decimal     `json:"amount"`
	Expiry       *time.Time          `json:"expiry,omitempty"`
	UsageLimit   *int                `json:"usageLimit,omitempty"`
	Active       bool                `json:"active"`
}

func (in *UpsertInput) validate() error {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	if in.Code == "" {
		return errors.New("code required")
	}
	if !in.DiscountType.Valid() {
		return errors.New("discount type must be percent or fixed")
	}
	if !in.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	if in.UsageLimit != nil && *in.UsageLimit <= 0 {
		return errors.New("usage limit must be positive")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in UpsertInput) (*domain.Promotion, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Promotion{
		Code:         in.Code,
		DiscountType: in.DiscountType,
		Amount:       in.Amount,
		Expiry:       in.Expiry,
		UsageLimit:   in.UsageLimit,
		Active:       in.Active,
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpsertInput) (*domain.Promotion, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNotFound
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, domain.Promotion{
		ID:           id,
		Code:         in.Code,
		DiscountType: in.DiscountType,
		Amount:       in.Amount,
		Expiry:       in.Expiry,
		UsageLimit:   in.UsageLimit,
		Active:       in.Active,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Promotion, error) {
	return s.repo.List(ctx)
}
