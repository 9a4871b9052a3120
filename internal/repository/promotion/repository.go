package promotion

import (
	"context"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	List(ctx context.Context) ([]domain.Promotion, error)
	Create(ctx context.Context, promo domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, promo domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
}
