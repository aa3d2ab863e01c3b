package dto

import (
	"github.com/josebazania/restaurantepos/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CheckoutRequest struct {
	TableID       string              `json:"table_id"       validate:"required"`
	PaymentMethod model.PaymentMethod `json:"payment_method" validate:"required,oneof=Cash Card"`
	// CustomerEmail, when set, gets the invoice PDF by mail.
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CheckoutResponse struct {
	Sale    model.Sale        `json:"sale"`
	Session model.CashSession `json:"session"`
}

type DashboardResponse struct {
	SalesTotal    decimal.Decimal    `json:"sales_total"`
	SalesCount    int                `json:"sales_count"`
	LowStockCount int                `json:"low_stock_count"`
	KitchenOrders []model.Order      `json:"kitchen_orders"`
	RecentSales   []model.Sale       `json:"recent_sales"`
	Session       *model.CashSession `json:"session"`
}

type HourlySales struct {
	Hour  string          `json:"hour"` // "9:00" … "20:00"
	Total decimal.Decimal `json:"total"`
}

type PaymentTotal struct {
	Method model.PaymentMethod `json:"method"`
	Total  decimal.Decimal     `json:"total"`
}
