package domain

// CartLine is one (product, optional variant, quantity) entry in a cart.
// It carries a denormalized snapshot of the name and unit price taken when
// the item was added, so a persisted cart renders without a product refetch.
type CartLine struct {
	ProductID      string `json:"productId"`
	VariantID      string `json:"variantId,omitempty"`
	ProductName    string `json:"productName"`
	VariantName    string `json:"variantName,omitempty"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// TotalCents is the line's effective price times its quantity.
func (l CartLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// Cart is an ordered collection of lines. Line identity is the
// (product id, variant id) pair; two lines with the same pair never coexist.
// All mutation is synchronous and local; persistence across reloads is the
// session store's concern.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// AddItem appends a line for the product/variant pair, or increments the
// existing line's quantity when the pair is already present. The variant,
// when given, must belong to the product; its price overrides the product's.
// Non-positive quantities are rejected.
func (c *Cart) AddItem(product Product, variant *ProductVariant, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	variantID := ""
	variantName := ""
	price := product.PriceCents
	if variant != nil {
		if variant.ProductID != product.ID {
			return ErrVariantMismatch
		}
		variantID = variant.ID
		variantName = variant.Name
		price = variant.PriceCents
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == product.ID && c.Lines[i].VariantID == variantID {
			c.Lines[i].Quantity += quantity
			return nil
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID:      product.ID,
		VariantID:      variantID,
		ProductName:    product.Name,
		VariantName:    variantName,
		UnitPriceCents: price,
		Quantity:       quantity,
	})
	return nil
}

// RemoveItem deletes the line matching the product/variant pair, if any.
func (c *Cart) RemoveItem(productID, variantID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID && c.Lines[i].VariantID == variantID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the matching line's quantity to exactly quantity.
// A quantity of zero or less removes the line. Missing lines are a no-op.
func (c *Cart) UpdateQuantity(productID, variantID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID, variantID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID && c.Lines[i].VariantID == variantID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.Lines = nil
}

// SubtotalCents recomputes the subtotal from the current lines.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.TotalCents()
	}
	return total
}

// ItemCount is the sum of quantities across all lines, not the line count.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
