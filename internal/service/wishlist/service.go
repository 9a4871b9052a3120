package wishlist

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
	Add(ctx context.Context, userID, productID string) (*domain.WishlistItem, error)
	Remove(ctx context.Context, userID, productID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.WishlistItem, error)
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, userID, productID string) (*domain.WishlistItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("please sign in to add items to wishlist")
	}
	if strings.TrimSpace(productID) == "" {
		return nil, errors.New("product id required")
	}
	return s.repo.Add(ctx, userID, productID)
}

func (s *Service) Remove(ctx context.Context, userID, productID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(productID) == "" {
		return domain.ErrNotFound
	}
	return s.repo.Remove(ctx, userID, productID)
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("please sign in to view your wishlist")
	}
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.WishlistItem{}
	}
	return items, nil
}
