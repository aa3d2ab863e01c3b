package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSession is the single open drawer period. While open,
// ExpectedBalance always equals OpeningBalance + TotalSales.
type CashSession struct {
	ID              string          `json:"id"`
	Status          SessionStatus   `json:"status"`
	OpenedAt        time.Time       `json:"opened_at"`
	ClosedAt        *time.Time      `json:"closed_at,omitempty"`
	OpeningBalance  decimal.Decimal `json:"opening_balance"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	ExpectedBalance decimal.Decimal `json:"expected_balance"`
	UserID          string          `json:"user_id"`
	UserName        string          `json:"user_name"`
}

// NewCashSession opens a session with no sales yet.
func NewCashSession(id string, opening decimal.Decimal, user User, now time.Time) (*CashSession, error) {
	if opening.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &CashSession{
		ID:              id,
		Status:          SessionOpen,
		OpenedAt:        now,
		OpeningBalance:  opening,
		TotalSales:      decimal.Zero,
		ExpectedBalance: opening,
		UserID:          user.ID,
		UserName:        user.Name,
	}, nil
}

// Settle credits a finalized sale total. Both running figures move together.
func (s *CashSession) Settle(amount decimal.Decimal) error {
	if s.Status != SessionOpen {
		return ErrNoOpenSession
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	s.TotalSales = s.TotalSales.Add(amount)
	s.ExpectedBalance = s.ExpectedBalance.Add(amount)
	return nil
}

// Balanced reports whether the expected balance invariant holds.
func (s *CashSession) Balanced() bool {
	return s.ExpectedBalance.Equal(s.OpeningBalance.Add(s.TotalSales))
}

// VarianceClass grades the gap between counted and expected cash.
type VarianceClass string

const (
	VarianceNormal   VarianceClass = "normal"
	VarianceWarning  VarianceClass = "warning"
	VarianceCritical VarianceClass = "critical"
)

var (
	hundred          = decimal.NewFromInt(100)
	normalThreshold  = decimal.NewFromInt(1)
	warningThreshold = decimal.NewFromInt(5)
)

// ClassifyVariance grades a percentage: up to 1% normal, up to 5% warning,
// anything above critical.
func ClassifyVariance(pct decimal.Decimal) VarianceClass {
	abs := pct.Abs()
	switch {
	case abs.LessThanOrEqual(normalThreshold):
		return VarianceNormal
	case abs.LessThanOrEqual(warningThreshold):
		return VarianceWarning
	default:
		return VarianceCritical
	}
}

// CloseReport is the informational outcome of closing a session. It is
// returned to the operator and not stored anywhere.
type CloseReport struct {
	Session         CashSession     `json:"session"`
	CountedAmount   decimal.Decimal `json:"counted_amount"`
	Variance        decimal.Decimal `json:"variance"`
	VariancePercent decimal.Decimal `json:"variance_percent"`
	Classification  VarianceClass   `json:"classification"`
}

// BuildCloseReport compares a counted amount against the expected balance.
func BuildCloseReport(s CashSession, counted decimal.Decimal) CloseReport {
	variance := counted.Sub(s.ExpectedBalance)
	pct := decimal.Zero
	if !s.ExpectedBalance.IsZero() {
		pct = variance.Div(s.ExpectedBalance).Mul(hundred).Round(2)
	} else if !variance.IsZero() {
		pct = hundred
	}
	return CloseReport{
		Session:         s,
		CountedAmount:   counted,
		Variance:        variance,
		VariancePercent: pct,
		Classification:  ClassifyVariance(pct),
	}
}
