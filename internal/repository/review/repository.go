package review

import (
	"context"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, review domain.Review) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
}
