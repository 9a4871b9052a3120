package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

const orderColumns = `id::text, user_id::text, subtotal_cents, shipping_cents, discount_cents, total_cents,
       status, payment_type, payment_status, COALESCE(contact_number, ''), COALESCE(promo_code, ''),
       shipping_address, created_at, updated_at`

// Create persists the order and its items in one transaction. Unit prices on
// the items are the prices at the time of order, not live catalog prices.
func (r *postgresRepo) Create(ctx context.Context, order domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("marshal shipping address: %w", err)
	}

	const insertOrder = `
INSERT INTO orders (user_id, subtotal_cents, shipping_cents, discount_cents, total_cents,
                    status, payment_type, payment_status, contact_number, promo_code, shipping_address)
VALUES ($1, $2, $3, $4, $5, 'pending', $6, 'pending', NULLIF($7, ''), NULLIF($8, ''), $9)
RETURNING ` + orderColumns + `
`
	created, err := scanOrder(tx.QueryRow(ctx, insertOrder,
		order.UserID,
		order.SubtotalCents,
		order.ShippingCents,
		order.DiscountCents,
		order.TotalCents,
		string(order.PaymentMode),
		order.ContactNumber,
		order.PromoCode,
		address,
	))
	if err != nil {
		r.logger.Printf("order repo: insert order error=%v", err)
		return nil, err
	}

	const insertItem = `
INSERT INTO order_items (order_id, product_id, variant_id, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text
`
	for _, item := range order.Items {
		var itemID string
		if err := tx.QueryRow(ctx, insertItem,
			created.ID, item.ProductID, item.VariantID, item.Quantity, item.UnitPriceCents,
		).Scan(&itemID); err != nil {
			r.logger.Printf("order repo: insert item order_id=%s product_id=%s error=%v", created.ID, item.ProductID, err)
			return nil, err
		}
		item.ID = itemID
		item.OrderID = created.ID
		created.Items = append(created.Items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s total_cents=%d items=%d", created.ID, created.TotalCents, len(created.Items))
	return created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	order, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}
	items, err := r.fetchItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	return r.listOrders(ctx, q, userID)
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
ORDER BY created_at DESC
`
	return r.listOrders(ctx, q)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $2
WHERE id = $1
RETURNING ` + orderColumns + `
`
	order, err := scanOrder(r.pool.QueryRow(ctx, q, id, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return nil, err
	}
	return order, nil
}

func (r *postgresRepo) listOrders(ctx context.Context, q string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) fetchItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const q = `
SELECT id::text, order_id::text, product_id::text, variant_id::text, quantity, unit_price_cents
FROM order_items
WHERE order_id = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.VariantID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var status, paymentType, paymentStatus string
	var address []byte
	if err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.SubtotalCents,
		&order.ShippingCents,
		&order.DiscountCents,
		&order.TotalCents,
		&status,
		&paymentType,
		&paymentStatus,
		&order.ContactNumber,
		&order.PromoCode,
		&address,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatus(status)
	order.PaymentMode = domain.PaymentMode(paymentType)
	order.PaymentStatus = domain.PaymentStatus(paymentStatus)
	if len(address) > 0 {
		if err := json.Unmarshal(address, &order.ShippingAddress); err != nil {
			return nil, fmt.Errorf("unmarshal shipping address: %w", err)
		}
	}
	return &order, nil
}
