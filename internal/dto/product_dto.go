package dto

import (
	"github.com/josebazania/restaurantepos/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ProductRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=100"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Category model.Category  `json:"category" validate:"required,oneof=Food Drinks Snacks Desserts Electronics"`
	Icon     model.Icon      `json:"icon"`
	Stock    int             `json:"stock"`
}

// ProductFilter is the query string of the catalog listing.
type ProductFilter struct {
	Category model.Category `form:"category" validate:"omitempty,oneof=Food Drinks Snacks Desserts Electronics"`
	Search   string         `form:"search"   validate:"max=100"`
}

// StockRequest sets an absolute stock count. Negative values are clamped to
// zero rather than rejected.
type StockRequest struct {
	Stock int `json:"stock"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	model.Product
	StockLevel model.StockLevel `json:"stock_level"`
}

func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{Product: p, StockLevel: p.StockLevel()}
}

func NewProductList(ps []model.Product) []ProductResponse {
	out := make([]ProductResponse, len(ps))
	for i, p := range ps {
		out[i] = NewProductResponse(p)
	}
	return out
}
