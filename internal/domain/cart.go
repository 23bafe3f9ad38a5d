package domain

// Cart maps itemId -> size -> quantity for a single principal. An absent cart
// is equivalent to an empty map. Quantities are never negative; a zero entry
// is legal (an update may set quantity 0 without removing the entry).
type Cart map[string]map[string]int

// NewCart returns an empty cart.
func NewCart() Cart {
	return make(Cart)
}

// Quantity returns the stored quantity for an item/size pair, zero when the
// pair is absent.
func (c Cart) Quantity(itemID, size string) int {
	if c == nil {
		return 0
	}
	return c[itemID][size]
}

// Has reports whether the item/size pair exists in the cart, including pairs
// stored with quantity zero.
func (c Cart) Has(itemID, size string) bool {
	if c == nil {
		return false
	}
	sizes, ok := c[itemID]
	if !ok {
		return false
	}
	_, ok = sizes[size]
	return ok
}

// Increment adds one unit for the item/size pair, creating the intermediate
// map when needed, and returns the new quantity.
func (c Cart) Increment(itemID, size string) int {
	sizes, ok := c[itemID]
	if !ok {
		sizes = make(map[string]int)
		c[itemID] = sizes
	}
	sizes[size]++
	return sizes[size]
}

// SetQuantity overwrites the quantity for an existing pair, creating the
// intermediate map when needed. Callers validate quantity >= 0.
func (c Cart) SetQuantity(itemID, size string, quantity int) {
	sizes, ok := c[itemID]
	if !ok {
		sizes = make(map[string]int)
		c[itemID] = sizes
	}
	sizes[size] = quantity
}

// Clone returns a deep copy.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for itemID, sizes := range c {
		copied := make(map[string]int, len(sizes))
		for size, qty := range sizes {
			copied[size] = qty
		}
		out[itemID] = copied
	}
	return out
}
