package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DirectSaleOrderID marks a sale whose table never had an order in the ledger.
const DirectSaleOrderID = "DIRECT"

// Sale is an immutable record of a finalized checkout.
type Sale struct {
	ID            string          `json:"id"`
	CreatedAt     time.Time       `json:"timestamp"`
	Items         []CartItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	SessionID     string          `json:"session_id"`
	OrderID       string          `json:"order_id"`
	TableID       string          `json:"table_id"`
	TableNumber   int             `json:"table_number"`
}

func (s Sale) Clone() Sale {
	s.Items = CloneItems(s.Items)
	return s
}

// IsDirect reports whether the sale skipped the kitchen.
func (s Sale) IsDirect() bool { return s.OrderID == DirectSaleOrderID }
