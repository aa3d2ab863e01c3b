package model

import "github.com/shopspring/decimal"

// CartItem is a product snapshot with a positive quantity and an optional
// kitchen note.
type CartItem struct {
	Product
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// LineTotal is price × quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the working item list for one table, unique by product id and kept
// in insertion order.
type Cart struct {
	TableID string     `json:"table_id"`
	Items   []CartItem `json:"items"`
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			return i
		}
	}
	return -1
}

// Add puts one unit of p in the cart. An existing line is incremented instead
// of duplicated.
func (c *Cart) Add(p Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
}

// Adjust changes a line's quantity by delta. Reaching zero removes the line;
// going below zero is rejected and leaves the cart untouched. Adjusting a
// product that is not in the cart does nothing.
func (c *Cart) Adjust(productID string, delta int) error {
	i := c.indexOf(productID)
	if i < 0 {
		return nil
	}
	next := c.Items[i].Quantity + delta
	switch {
	case next < 0:
		return ErrInvalidQuantity
	case next == 0:
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	default:
		c.Items[i].Quantity = next
	}
	return nil
}

// Remove drops a line regardless of its quantity.
func (c *Cart) Remove(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// SetNote replaces the kitchen note of a line.
func (c *Cart) SetNote(productID, note string) error {
	i := c.indexOf(productID)
	if i < 0 {
		return ErrProductNotFound
	}
	c.Items[i].Notes = note
	return nil
}

func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }

// Totals sums the lines and applies tax.
func (c *Cart) Totals() Totals {
	return ComputeTotals(SumItems(c.Items))
}

// Clone returns a deep copy safe to hand outside the state lock.
func (c Cart) Clone() Cart {
	return Cart{TableID: c.TableID, Items: CloneItems(c.Items)}
}

// SumItems is Σ price × quantity.
func SumItems(items []CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// CloneItems copies an item slice. A nil input yields an empty slice so JSON
// renders [] instead of null.
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
