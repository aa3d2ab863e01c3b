package model_test

import (
	"testing"
	"time"

	"github.com/josebazania/restaurantepos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_CanReach(t *testing.T) {
	cases := []struct {
		role model.Role
		want []model.Destination
	}{
		{model.RoleAdmin, model.Destinations},
		{model.RoleCashier, []model.Destination{model.DestDashboard, model.DestTables, model.DestPOS, model.DestCash}},
		{model.RoleWaiter, []model.Destination{model.DestTables, model.DestPOS}},
		{model.RoleCook, []model.Destination{model.DestDashboard}},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.role.Reachable())
		})
	}
	assert.False(t, model.Role("Ghost").CanReach(model.DestDashboard))
}

func TestOrderStatus_Monotonic(t *testing.T) {
	assert.True(t, model.OrderPending.CanAdvanceTo(model.OrderInKitchen))
	assert.True(t, model.OrderInKitchen.CanAdvanceTo(model.OrderInKitchen))
	assert.True(t, model.OrderInKitchen.CanAdvanceTo(model.OrderReady))
	assert.True(t, model.OrderReady.CanAdvanceTo(model.OrderPaid))

	assert.False(t, model.OrderReady.CanAdvanceTo(model.OrderInKitchen))
	assert.False(t, model.OrderInKitchen.CanAdvanceTo(model.OrderPending))
	assert.False(t, model.OrderPaid.CanAdvanceTo(model.OrderReady))
	assert.False(t, model.OrderPending.CanAdvanceTo("Cancelled"))
}

func TestTableStatus_ManualTransitions(t *testing.T) {
	assert.True(t, model.TableOccupied.CanMoveTo(model.TableBill))
	assert.True(t, model.TableFree.CanMoveTo(model.TableCleaning))
	assert.True(t, model.TableCleaning.CanMoveTo(model.TableFree))

	assert.False(t, model.TableFree.CanMoveTo(model.TableBill))
	assert.False(t, model.TableBill.CanMoveTo(model.TableFree))
	assert.False(t, model.TableCleaning.CanMoveTo(model.TableOccupied))
}

func TestProduct_StockLevelAndValidate(t *testing.T) {
	p := model.Product{Name: "Vino Tinto", Price: decimal.NewFromInt(15), Category: model.CategoryDrinks}

	p.Stock = 0
	assert.Equal(t, model.StockOut, p.StockLevel())
	p.Stock = 9
	assert.Equal(t, model.StockLow, p.StockLevel())
	p.Stock = 10
	assert.Equal(t, model.StockAvailable, p.StockLevel())

	require.NoError(t, p.Validate())

	p.Price = decimal.NewFromInt(-1)
	assert.ErrorIs(t, p.Validate(), model.ErrNegativePrice)

	p.Price = decimal.NewFromInt(1)
	p.Category = "Bebidas"
	assert.ErrorIs(t, p.Validate(), model.ErrInvalidCategory)

	assert.Equal(t, 0, model.ClampStock(-4))
	assert.Equal(t, model.IconUtensils, model.Icon("Rocket").OrDefault())
}

func TestProduct_Matches(t *testing.T) {
	p := model.Product{Name: "Café Espresso", Category: model.CategoryDrinks}

	assert.True(t, p.Matches("", ""))
	assert.True(t, p.Matches(model.CategoryDrinks, "espresso"))
	assert.False(t, p.Matches(model.CategoryFood, ""))
	assert.False(t, p.Matches("", "pizza"))
}

func TestBackOutTax(t *testing.T) {
	totals := model.BackOutTax(decimal.RequireFromString("23.20"))

	assert.Equal(t, "20.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "3.20", totals.Tax.StringFixed(2))
	assert.True(t, totals.Subtotal.Add(totals.Tax).Equal(totals.Total))
}

func TestCashSession_SettleKeepsBalance(t *testing.T) {
	user := model.User{ID: "2", Name: "Juan Cobros"}
	s, err := model.NewCashSession("s1", decimal.NewFromInt(100), user, time.Now())
	require.NoError(t, err)

	require.NoError(t, s.Settle(decimal.RequireFromString("23.20")))
	require.NoError(t, s.Settle(decimal.RequireFromString("6.80")))

	assert.Equal(t, "30", s.TotalSales.String())
	assert.Equal(t, "130", s.ExpectedBalance.String())
	assert.True(t, s.Balanced())

	assert.ErrorIs(t, s.Settle(decimal.NewFromInt(-1)), model.ErrNegativeAmount)
	assert.Equal(t, "30", s.TotalSales.String())

	_, err = model.NewCashSession("s2", decimal.NewFromInt(-5), user, time.Now())
	assert.ErrorIs(t, err, model.ErrNegativeAmount)
}

func TestBuildCloseReport(t *testing.T) {
	s := model.CashSession{
		OpeningBalance:  decimal.NewFromInt(100),
		TotalSales:      decimal.NewFromInt(100),
		ExpectedBalance: decimal.NewFromInt(200),
	}

	cases := []struct {
		counted string
		class   model.VarianceClass
	}{
		{"200", model.VarianceNormal},
		{"198", model.VarianceNormal},
		{"192", model.VarianceWarning},
		{"215", model.VarianceCritical},
	}
	for _, tc := range cases {
		r := model.BuildCloseReport(s, decimal.RequireFromString(tc.counted))
		assert.Equal(t, tc.class, r.Classification, "counted %s", tc.counted)
	}

	r := model.BuildCloseReport(s, decimal.NewFromInt(190))
	assert.Equal(t, "-10", r.Variance.String())
	assert.Equal(t, "-5", r.VariancePercent.String())
}

func TestDomainErrorClasses(t *testing.T) {
	assert.ErrorIs(t, model.ErrEmptyCart, model.ErrValidation)
	assert.ErrorIs(t, model.ErrTableNotFound, model.ErrNotFound)
	assert.ErrorIs(t, model.ErrNoOpenSession, model.ErrPrecondition)
	assert.ErrorIs(t, model.ErrInvalidCredentials, model.ErrUnauthorized)
	assert.NotErrorIs(t, model.ErrEmptyCart, model.ErrNotFound)
	assert.Equal(t, "el carrito esta vacio", model.ErrEmptyCart.Error())
}
