package product

import (
	"context"
	"errors"
	"strings"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

type Service struct {
	repo Repository
}

type Repository interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.List(ctx, strings.TrimSpace(category))
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type UpsertInput struct {
	ID          string                  `json:"id,omitempty"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	PriceCents  int64                   `json:"priceCents"`
	Category    string                  `json:"category"`
	Stock       int                     `json:"stock"`
	Images      []domain.ProductImage   `json:"images,omitempty"`
	Variants    []domain.ProductVariant `json:"variants,omitempty"`
}

func (s *Service) Upsert(ctx context.Context, in UpsertInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	if in.PriceCents <= 0 {
		return nil, errors.New("price must be positive")
	}
	if in.Stock < 0 {
		return nil, errors.New("stock must not be negative")
	}
	for _, v := range in.Variants {
		if strings.TrimSpace(v.Name) == "" {
			return nil, errors.New("variant name required")
		}
		if v.PriceCents <= 0 {
			return nil, errors.New("variant price must be positive")
		}
	}
	return s.repo.Upsert(ctx, domain.Product{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Category:    in.Category,
		Stock:       in.Stock,
		Images:      in.Images,
		Variants:    in.Variants,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
