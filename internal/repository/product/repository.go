package product

import (
	"context"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

type Repository interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
