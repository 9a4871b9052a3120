package wishlist

import (
	"context"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

type Repository interface {
	Add(ctx context.Context, userID, productID string) (*domain.WishlistItem, error)
	Remove(ctx context.Context, userID, productID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.WishlistItem, error)
}
