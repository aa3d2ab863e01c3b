package dto

import "github.com/josebazania/restaurantepos/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type AdjustItemRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type NoteRequest struct {
	Notes string `json:"notes" validate:"max=200"`
}

type TableStatusRequest struct {
	Status model.TableStatus `json:"status" validate:"required,oneof=Free Occupied Bill Cleaning"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// CartResponse is the working cart of a table plus the order it belongs to,
// if the table already has one.
type CartResponse struct {
	TableID     string            `json:"table_id"`
	Items       []model.CartItem  `json:"items"`
	Totals      model.Totals      `json:"totals"`
	OrderID     string            `json:"order_id,omitempty"`
	OrderStatus model.OrderStatus `json:"order_status,omitempty"`
}

type TableResponse struct {
	model.Table
	ActiveOrder *model.Order `json:"active_order,omitempty"`
}
