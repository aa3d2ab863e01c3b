package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Stock is never negative.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category Category        `json:"category"`
	Icon     Icon            `json:"icon"`
	Stock    int             `json:"stock"`
}

// Validate checks the fields an inventory edit may set.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProductName
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if !p.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// StockLevel classifies the current stock for display.
func (p Product) StockLevel() StockLevel {
	switch {
	case p.Stock <= 0:
		return StockOut
	case p.Stock < LowStockThreshold:
		return StockLow
	default:
		return StockAvailable
	}
}

// ClampStock returns n, or zero when n is negative.
func ClampStock(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Matches reports whether the product passes a category filter (empty means
// any) and a case-insensitive name search.
func (p Product) Matches(category Category, search string) bool {
	if category != "" && p.Category != category {
		return false
	}
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(search))
}
