package model

import "time"

// Table is a physical table. Tables are seeded at startup and never deleted.
type Table struct {
	ID             string      `json:"id"`
	Number         int         `json:"number"`
	Capacity       int         `json:"capacity"`
	Status         TableStatus `json:"status"`
	CurrentOrderID string      `json:"current_order_id,omitempty"`
}

// Order is the active ledger entry of a table. At most one non-paid order
// exists per table.
type Order struct {
	ID        string      `json:"id"`
	TableID   string      `json:"table_id"`
	Items     []CartItem  `json:"items"`
	Status    OrderStatus `json:"status"`
	Totals                // subtotal, tax, total
	CreatedAt time.Time   `json:"timestamp"`
}

// Clone returns a copy whose item slice does not alias the original.
func (o Order) Clone() Order {
	o.Items = CloneItems(o.Items)
	return o
}

// Recompute refreshes the money fields from the current items.
func (o *Order) Recompute() {
	o.Totals = ComputeTotals(SumItems(o.Items))
}
