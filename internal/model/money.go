package model

import "github.com/shopspring/decimal"

// TaxRate is the flat sales tax applied to every order (16%).
var TaxRate = decimal.NewFromFloat(0.16)

var taxFactor = decimal.NewFromInt(1).Add(TaxRate)

// Totals is the computed money breakdown of a cart or order.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals applies the tax rate on top of a subtotal.
func ComputeTotals(subtotal decimal.Decimal) Totals {
	tax := subtotal.Mul(TaxRate)
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal.Add(tax)}
}

// BackOutTax splits a tax-inclusive total into its subtotal and tax parts.
// Used when only the stored total is available, as on the invoice.
func BackOutTax(total decimal.Decimal) Totals {
	subtotal := total.Div(taxFactor)
	return Totals{Subtotal: subtotal, Tax: total.Sub(subtotal), Total: total}
}
