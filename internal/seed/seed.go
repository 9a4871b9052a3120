// Package seed loads a development catalog and sample promotions.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type seedProduct struct {
	Name        string
	Description string
	Price       string
	Category    string
	Stock       int
	Variants    []seedVariant
}

type seedVariant struct {
	Name  string
	Size  string
	Color string
	Price string
	Stock int
}

type seedPromotion struct {
	Code         string
	DiscountType string
	Amount       string
	UsageLimit   *int
	Active       bool
}

var products = []seedProduct{
	{
		Name: "Classic Black Hoodie", Description: "Premium quality black hoodie with ZeroLimit branding",
		Price: "59.99", Category: "Hoodies", Stock: 100,
		Variants: []seedVariant{
			{Name: "Small-Black", Size: "S", Color: "Black", Price: "59.99", Stock: 30},
			{Name: "Medium-Black", Size: "M", Color: "Black", Price: "59.99", Stock: 40},
			{Name: "Large-Black", Size: "L", Color: "Black", Price: "59.99", Stock: 30},
		},
	},
	{
		Name: "Classic White Hoodie", Description: "Premium quality white hoodie with ZeroLimit branding",
		Price: "59.99", Category: "Hoodies", Stock: 100,
	},
	{
		Name: "Oversized Black Hoodie", Description: "Trendy oversized fit black hoodie",
		Price: "69.99", Category: "Hoodies", Stock: 75,
	},
	{
		Name: "Oversized White Hoodie", Description: "Trendy oversized fit white hoodie",
		Price: "69.99", Category: "Hoodies", Stock: 75,
	},
	{
		Name: "Minimalist Black Zip Hoodie", Description: "Sleek zip-up hoodie in black",
		Price: "64.99", Category: "Hoodies", Stock: 50,
	},
	{
		Name: "Minimalist White Zip Hoodie", Description: "Sleek zip-up hoodie in white",
		Price: "64.99", Category: "Hoodies", Stock: 50,
	},
}

var ten = 10

var promotions = []seedPromotion{
	{Code: "SAVE10", DiscountType: "percent", Amount: "10", Active: true},
	{Code: "WELCOME5", DiscountType: "fixed", Amount: "5.00", UsageLimit: &ten, Active: true},
}

// Apply inserts the sample catalog and promotions, skipping rows that already
// exist so reruns are safe.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, p := range products {
		price, err := priceCents(p.Price)
		if err != nil {
			return fmt.Errorf("product %q: %w", p.Name, err)
		}
		var productID string
		err = pool.QueryRow(ctx, `SELECT id::text FROM products WHERE name = $1`, p.Name).Scan(&productID)
		if errors.Is(err, pgx.ErrNoRows) {
			err = pool.QueryRow(ctx, `
INSERT INTO products (name, description, price_cents, category, stock)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text
`, p.Name, p.Description, price, p.Category, p.Stock).Scan(&productID)
		}
		if err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
		for _, v := range p.Variants {
			vPrice, err := priceCents(v.Price)
			if err != nil {
				return fmt.Errorf("variant %q: %w", v.Name, err)
			}
			if _, err := pool.Exec(ctx, `
INSERT INTO product_variants (product_id, variant_name, size, color, price_cents, stock)
SELECT $1, $2, $3, $4, $5, $6
WHERE NOT EXISTS (
    SELECT 1 FROM product_variants WHERE product_id = $1 AND variant_name = $2
)
`, productID, v.Name, v.Size, v.Color, vPrice, v.Stock); err != nil {
				return fmt.Errorf("seed variant %q: %w", v.Name, err)
			}
		}
	}

	for _, promo := range promotions {
		amount, err := decimal.NewFromString(promo.Amount)
		if err != nil {
			return fmt.Errorf("promotion %q: %w", promo.Code, err)
		}
		if _, err := pool.Exec(ctx, `
INSERT INTO promotions (code, discount_type, amount, usage_limit, active)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (code) DO NOTHING
`, promo.Code, promo.DiscountType, amount, promo.UsageLimit, promo.Active); err != nil {
			return fmt.Errorf("seed promotion %q: %w", promo.Code, err)
		}
	}

	return nil
}

// priceCents converts a decimal price string to integer cents exactly.
func priceCents(price string) (int64, error) {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", price, err)
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
