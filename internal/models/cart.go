package models

// CartLine is one row in the cart: a product snapshot pinned to a chosen size and
// color. Its identity is the (ProductID, SelectedSize, SelectedColor) composite key;
// adding the same combination again merges into the existing line instead of
// duplicating it.
type CartLine struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"` // Unit price at the time the line was added
	Image         string  `json:"image,omitempty"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor string  `json:"selected_color"`
	Quantity      int     `json:"quantity"`
}

// Matches reports whether the line carries the given composite key.
func (l *CartLine) Matches(productID, size, color string) bool {
	return l.ProductID == productID && l.SelectedSize == size && l.SelectedColor == color
}

// Cart holds the state of one shopping session: cart lines plus saved wishlist
// products. Wishlist entries are unique by product ID.
type Cart struct {
	Lines    []CartLine `json:"lines"`
	Wishlist []Product  `json:"wishlist"`
}

// FindLine returns the index of the line matching the composite key, or -1.
func (c *Cart) FindLine(productID, size, color string) int {
	for i := range c.Lines {
		if c.Lines[i].Matches(productID, size, color) {
			return i
		}
	}
	return -1
}

// Total is the cart's summed price, recomputed on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count is the number of units in the cart across all lines.
func (c *Cart) Count() int {
	var count int
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// InWishlist reports whether the product is saved in the wishlist.
func (c *Cart) InWishlist(productID string) bool {
	for i := range c.Wishlist {
		if c.Wishlist[i].ID == productID {
			return true
		}
	}
	return false
}
