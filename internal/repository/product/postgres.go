package product

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
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

const productColumns = `id::text, name, COALESCE(description, ''), price_cents, COALESCE(category, ''), stock, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context, category string) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
`
	args := []interface{}{}
	if category != "" {
		q = `
SELECT ` + productColumns + `
FROM products
WHERE category = $1
ORDER BY created_at DESC
`
		args = append(args, category)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list category=%q error=%v", category, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	ids := []string{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Category, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	images, err := r.fetchImages(ctx, ids)
	if err != nil {
		return nil, err
	}
	variants, err := r.fetchVariants(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Images = images[result[i].ID]
		result[i].Variants = variants[result[i].ID]
	}
	r.logger.Printf("product repo: list category=%q count=%d", category, len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Category, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}

	images, err := r.fetchImages(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	variants, err := r.fetchVariants(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	p.Images = images[p.ID]
	p.Variants = variants[p.ID]
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, name, description, price_cents, category, stock)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    category = EXCLUDED.category,
    stock = EXCLUDED.stock
RETURNING id::text, created_at, updated_at
`
	res := product
	err := r.pool.QueryRow(ctx, q,
		product.ID,
		product.Name,
		product.Description,
		product.PriceCents,
		product.Category,
		product.Stock,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert name=%q error=%v", product.Name, err)
		return nil, err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM product_variants WHERE product_id = $1`, res.ID); err != nil {
		return nil, err
	}
	for i, v := range res.Variants {
		const vq = `
INSERT INTO product_variants (product_id, variant_name, size, color, price_cents, stock, sku)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, NULLIF($7, ''))
RETURNING id::text
`
		if err := tx.QueryRow(ctx, vq, res.ID, v.Name, v.Size, v.Color, v.PriceCents, v.Stock, v.SKU).Scan(&res.Variants[i].ID); err != nil {
			return nil, err
		}
		res.Variants[i].ProductID = res.ID
	}

	if _, err := tx.Exec(ctx, `DELETE FROM product_images WHERE product_id = $1`, res.ID); err != nil {
		return nil, err
	}
	for i, img := range res.Images {
		const iq = `
INSERT INTO product_images (product_id, image_url, is_primary, alt_text)
VALUES ($1, $2, $3, NULLIF($4, ''))
RETURNING id::text
`
		if err := tx.QueryRow(ctx, iq, res.ID, img.URL, img.IsPrimary, img.AltText).Scan(&res.Images[i].ID); err != nil {
			return nil, err
		}
		res.Images[i].ProductID = res.ID
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("product repo: upserted id=%s variants=%d images=%d", res.ID, len(res.Variants), len(res.Images))
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) fetchImages(ctx context.Context, productIDs []string) (map[string][]domain.ProductImage, error) {
	const q = `
SELECT id::text, product_id::text, image_url, is_primary, COALESCE(alt_text, ''), created_at
FROM product_images
WHERE product_id = ANY($1)
ORDER BY is_primary DESC, created_at ASC
`
	rows, err := r.pool.Query(ctx, q, productIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.ProductImage)
	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.IsPrimary, &img.AltText, &img.CreatedAt); err != nil {
			return nil, err
		}
		out[img.ProductID] = append(out[img.ProductID], img)
	}
	return out, rows.Err()
}

func (r *postgresRepo) fetchVariants(ctx context.Context, productIDs []string) (map[string][]domain.ProductVariant, error) {
	const q = `
SELECT id::text, product_id::text, variant_name, COALESCE(size, ''), COALESCE(color, ''), price_cents, stock, COALESCE(sku, ''), created_at
FROM product_variants
WHERE product_id = ANY($1)
ORDER BY variant_name ASC
`
	rows, err := r.pool.Query(ctx, q, productIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.ProductVariant)
	for rows.Next() {
		var v domain.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Size, &v.Color, &v.PriceCents, &v.Stock, &v.SKU, &v.CreatedAt); err != nil {
			return nil, err
		}
		out[v.ProductID] = append(out[v.ProductID], v)
	}
	return out, rows.Err()
}
