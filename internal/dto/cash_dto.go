package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OpenCashRequest struct {
	OpeningBalance decimal.Decimal `json:"opening_balance" validate:"min=0"`
}

type CloseCashRequest struct {
	CountedAmount decimal.Decimal `json:"counted_amount" validate:"min=0"`
}
