package domain

import "time"

type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	PriceCents  int64            `json:"priceCents"`
	Category    string           `json:"category,omitempty"`
	Stock       int              `json:"stock"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Images      []ProductImage   `json:"images,omitempty"`
	Variants    []ProductVariant `json:"variants,omitempty"`
}

type ProductImage struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	URL       string    `json:"url"`
	IsPrimary bool      `json:"isPrimary"`
	AltText   string    `json:"altText,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductVariant is a size/color combination with its own price and stock,
// both of which override the parent product's when the variant is selected.
type ProductVariant struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	Name       string    `json:"name"`
	Size       string    `json:"size,omitempty"`
	Color      string    `json:"color,omitempty"`
	PriceCents int64     `json:"priceCents"`
	Stock      int       `json:"stock"`
	SKU        string    `json:"sku,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Variant returns the variant with the given id, or nil.
func (p *Product) Variant(id string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}
