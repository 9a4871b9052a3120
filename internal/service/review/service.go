package review

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
	Create(ctx context.Context, review domain.Review) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*domain.Review, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("please sign in to leave a review")
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, errors.New("product id required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	return s.repo.Create(ctx, domain.Review{
		ProductID: in.ProductID,
		UserID:    userID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
	})
}

type ProductReviews struct {
	Reviews       []domain.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	TotalReviews  int             `json:"totalReviews"`
}

func (s *Service) ListByProduct(ctx context.Context, productID string) (*ProductReviews, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, errors.New("product id required")
	}
	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := &ProductReviews{Reviews: reviews, TotalReviews: len(reviews)}
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		out.AverageRating = float64(sum) / float64(len(reviews))
	}
	if out.Reviews == nil {
		out.Reviews = []domain.Review{}
	}
	return out, nil
}
