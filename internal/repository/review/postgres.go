package review

import (
	"context"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, review domain.Review) (*domain.Review, error) {
	const q = `
INSERT INTO product_reviews (product_id, user_id, rating, comment)
VALUES ($1, $2, $3, NULLIF($4, ''))
RETURNING id::text, created_at
`
	res := review
	if err := r.pool.QueryRow(ctx, q, review.ProductID, review.UserID, review.Rating, review.Comment).
		Scan(&res.ID, &res.CreatedAt); err != nil {
		r.logger.Printf("review repo: create product_id=%s error=%v", review.ProductID, err)
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	const q = `
SELECT r.id::text, r.product_id::text, r.user_id::text, COALESCE(u.name, ''), r.rating, COALESCE(r.comment, ''), r.created_at
FROM product_reviews r
LEFT JOIN users u ON u.id = r.user_id
WHERE r.product_id = $1
ORDER BY r.created_at DESC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		r.logger.Printf("review repo: list product_id=%s error=%v", productID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.UserName, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rev)
	}
	return result, rows.Err()
}
