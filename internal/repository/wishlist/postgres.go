package wishlist

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
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

func (r *postgresRepo) Add(ctx context.Context, userID, productID string) (*domain.WishlistItem, error) {
	const q = `
INSERT INTO wishlist_items (user_id, product_id)
VALUES ($1, $2)
RETURNING id::text, user_id::text, product_id::text, created_at
`
	var item domain.WishlistItem
	err := r.pool.QueryRow(ctx, q, userID, productID).Scan(&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("wishlist repo: add user_id=%s product_id=%s error=%v", userID, productID, err)
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) Remove(ctx context.Context, userID, productID string) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM wishlist_items
WHERE user_id = $1 AND product_id = $2
`, userID, productID)
	if err != nil {
		r.logger.Printf("wishlist repo: remove user_id=%s product_id=%s error=%v", userID, productID, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	const q = `
SELECT w.id::text, w.user_id::text, w.product_id::text, w.created_at,
       p.id::text, p.name, COALESCE(p.description, ''), p.price_cents, COALESCE(p.category, ''), p.stock, p.created_at, p.updated_at
FROM wishlist_items w
JOIN products p ON p.id = w.product_id
WHERE w.user_id = $1
ORDER BY w.created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("wishlist repo: list user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.WishlistItem
	for rows.Next() {
		var item domain.WishlistItem
		var p domain.Product
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt,
			&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Category, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item.Product = &p
		result = append(result, item)
	}
	return result, rows.Err()
}
