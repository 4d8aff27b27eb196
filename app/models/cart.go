package models

import "github.com/shopspring/decimal"

// CartLine is one product's snapshot inside a session cart: the name,
// unit price and image are copied from the Product record at the time
// of the first add.
type CartLine struct {
	UserID    string
	ProductID string
	Name      string
	Qty       int
	Price     decimal.Decimal
	Image     string
}

// Cart is the session-scoped mapping from product id to line item. It
// is owned by the browser session, never persisted, and every mutation
// is written back through the CartStore.
type Cart struct {
	Lines map[string]CartLine
}

func NewCart() *Cart {
	return &Cart{Lines: map[string]CartLine{}}
}

// Add inserts a quantity-1 line for an absent product, snapshotting
// name/price/image from the current Product record, or increments the
// existing line by one.
func (c *Cart) Add(userID string, product *Product) {
	if line, ok := c.Lines[product.ID]; ok {
		line.Qty++
		c.Lines[product.ID] = line
		return
	}
	c.Lines[product.ID] = CartLine{
		UserID:    userID,
		ProductID: product.ID,
		Name:      product.Name,
		Qty:       1,
		Price:     product.Price,
		Image:     product.Image,
	}
}

// Decrement lowers a line's quantity by one and removes the line
// entirely when the quantity would reach zero. Decrementing an absent
// product is a no-op.
func (c *Cart) Decrement(productID string) {
	line, ok := c.Lines[productID]
	if !ok {
		return
	}
	if line.Qty <= 1 {
		delete(c.Lines, productID)
		return
	}
	line.Qty--
	c.Lines[productID] = line
}

// Remove deletes the line regardless of quantity. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID string) {
	delete(c.Lines, productID)
}

// Clear empties the whole mapping.
func (c *Cart) Clear() {
	c.Lines = map[string]CartLine{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount is the summed quantity across all lines, used for the
// cart badge.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Qty
	}
	return count
}

// LineTotal is unit price times quantity for one line.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Total sums the line totals over the whole cart.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.LineTotal())
	}
	return total
}
