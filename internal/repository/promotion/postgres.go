package promotion

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
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

const promotionColumns = `id::text, code, discount_type, amount, expiry, usage_limit, usage_count, active, created_at`

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	const q = `
SELECT ` + promotionColumns + `
FROM promotions
WHERE code = $1
`
	promo, err := scanPromotion(r.pool.QueryRow(ctx, q, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("promotion repo: get code=%s error=%v", code, err)
		return nil, err
	}
	return promo, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Promotion, error) {
	const q = `
SELECT ` + promotionColumns + `
FROM promotions
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("promotion repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Promotion
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *promo)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("promotion repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, promo domain.Promotion) (*domain.Promotion, error) {
	const q = `
INSERT INTO promotions (code, discount_type, amount, expiry, usage_limit, usage_count, active)
VALUES ($1, $2, $3, $4, $5, 0, $6)
RETURNING ` + promotionColumns + `
`
	created, err := scanPromotion(r.pool.QueryRow(ctx, q,
		promo.Code, string(promo.DiscountType), promo.Amount, promo.Expiry, promo.UsageLimit, promo.Active))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("promotion repo: create code=%s error=%v", promo.Code, err)
		return nil, err
	}
	r.logger.Printf("promotion repo: created code=%s id=%s", created.Code, created.ID)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, promo domain.Promotion) (*domain.Promotion, error) {
	const q = `
UPDATE promotions
SET code = $2,
    discount_type = $3,
    amount = $4,
    expiry = $5,
    usage_limit = $6,
    active = $7
WHERE id = $1
RETURNING ` + promotionColumns + `
`
	updated, err := scanPromotion(r.pool.QueryRow(ctx, q,
		promo.ID, promo.Code, string(promo.DiscountType), promo.Amount, promo.Expiry, promo.UsageLimit, promo.Active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("promotion repo: update id=%s error=%v", promo.ID, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("promotion repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPromotion(row pgx.Row) (*domain.Promotion, error) {
	var promo domain.Promotion
	var discountType string
	if err := row.Scan(
		&promo.ID,
		&promo.Code,
		&discountType,
		&promo.Amount,
		&promo.Expiry,
		&promo.UsageLimit,
		&promo.UsageCount,
		&promo.Active,
		&promo.CreatedAt,
	); err != nil {
		return nil, err
	}
	promo.DiscountType = domain.DiscountType(discountType)
	return &promo, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
