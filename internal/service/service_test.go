package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/josebazania/restaurantepos/internal/config"
	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/model"
	"github.com/josebazania/restaurantepos/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── Fixtures ─────────────────────────────────────────────────────────────────

type flakyStore struct {
	repository.SlotStore
	failPuts bool
}

func (s *flakyStore) Put(ctx context.Context, key string, value []byte) error {
	if s.failPuts {
		return errors.New("disk full")
	}
	return s.SlotStore.Put(ctx, key, value)
}

type recorder struct{ events []model.Event }

func (r *recorder) Notify(_ context.Context, ev model.Event) { r.events = append(r.events, ev) }

func (r *recorder) kinds() []model.EventKind {
	out := make([]model.EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

type fakeInvoices struct {
	sales  []model.Sale
	emails []string
	err    error
}

func (f *fakeInvoices) EnqueueInvoice(_ context.Context, sale model.Sale, email string) error {
	f.sales = append(f.sales, sale)
	f.emails = append(f.emails, email)
	return f.err
}

type fixture struct {
	st       *repository.State
	store    *flakyStore
	rec      *recorder
	invoices *fakeInvoices
	orders   OrderService
	cash     CashService
	checkout CheckoutService
	tables   TableService
	catalog  CatalogService
	reports  ReportService
}

var (
	cashier = model.User{ID: "2", Username: "cajero", Name: "Juan Cobros", Role: model.RoleCashier}
	fixedAt = time.Date(2026, 3, 14, 13, 30, 0, 0, time.Local)
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newFixture(t *testing.T, decrementStock bool) *fixture {
	t.Helper()
	store := &flakyStore{SlotStore: repository.NewMemorySlotStore()}
	seed := repository.Seed{
		Tables: repository.SeedTables(),
		Products: []model.Product{
			{ID: "p10", Name: "Menu del dia", Price: dec("10.00"), Category: model.CategoryFood, Icon: model.IconUtensils, Stock: 3},
			{ID: "p5", Name: "Limonada", Price: dec("5.00"), Category: model.CategoryDrinks, Icon: model.IconCoffee, Stock: 40},
		},
	}
	st := repository.NewState(store, seed)
	require.NoError(t, st.Load(context.Background()))

	rec := &recorder{}
	events := NewNotifier(rec)
	invoices := &fakeInvoices{}

	orders := NewOrderService(st, events).(*orderService)
	orders.now = func() time.Time { return fixedAt }
	cash := NewCashService(st, events).(*cashService)
	cash.now = func() time.Time { return fixedAt }
	checkout := NewCheckoutService(st, events, invoices, decrementStock).(*checkoutService)
	checkout.now = func() time.Time { return fixedAt }

	return &fixture{
		st: st, store: store, rec: rec, invoices: invoices,
		orders: orders, cash: cash, checkout: checkout,
		tables:  NewTableService(st, events),
		catalog: NewCatalogService(st, events),
		reports: NewReportService(st),
	}
}

func (f *fixture) addTwo(t *testing.T, tableID, productID string) {
	t.Helper()
	_, err := f.orders.AddItem(context.Background(), tableID, productID)
	require.NoError(t, err)
	_, err = f.orders.AddItem(context.Background(), tableID, productID)
	require.NoError(t, err)
}

// ── Checkout ─────────────────────────────────────────────────────────────────

func TestCheckout_CreditsSessionAndFreesTable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	_, err := f.cash.Open(ctx, cashier, dec("100"))
	require.NoError(t, err)

	f.addTwo(t, "t1", "p10")
	order, err := f.orders.SendToKitchen(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderInKitchen, order.Status)
	assert.True(t, order.Subtotal.Equal(dec("20")))
	assert.True(t, order.Tax.Equal(dec("3.20")))
	assert.True(t, order.Total.Equal(dec("23.20")))

	table, err := f.tables.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, model.TableOccupied, table.Status)
	assert.Equal(t, order.ID, table.CurrentOrderID)

	resp, err := f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t1", PaymentMethod: model.PaymentCash, CustomerEmail: "a@b.com"})
	require.NoError(t, err)

	assert.True(t, resp.Sale.Total.Equal(dec("23.20")))
	assert.Equal(t, order.ID, resp.Sale.OrderID)
	assert.Equal(t, 1, resp.Sale.TableNumber)
	assert.True(t, resp.Session.TotalSales.Equal(dec("23.20")))
	assert.True(t, resp.Session.ExpectedBalance.Equal(dec("123.20")))
	assert.True(t, resp.Session.Balanced())

	table, err = f.tables.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, model.TableFree, table.Status)
	assert.Empty(t, table.CurrentOrderID)
	assert.Nil(t, table.ActiveOrder)
	assert.Empty(t, f.orders.ListActive(ctx))

	cart, err := f.orders.OpenCart(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// the durable slot carries the settled figures
	raw, err := f.store.Get(ctx, repository.SlotActiveCashSession)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"expected_balance":"123.2"`)

	require.Len(t, f.invoices.sales, 1)
	assert.Equal(t, "a@b.com", f.invoices.emails[0])
	assert.Contains(t, f.rec.kinds(), model.EventSaleRecorded)
	assert.Contains(t, f.rec.kinds(), model.EventOrderRemoved)
}

func TestCheckout_DirectSaleWithoutOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	_, err := f.cash.Open(ctx, cashier, decimal.Zero)
	require.NoError(t, err)

	_, err = f.orders.AddItem(ctx, "t3", "p5")
	require.NoError(t, err)

	resp, err := f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t3", PaymentMethod: model.PaymentCard})
	require.NoError(t, err)
	assert.Equal(t, model.DirectSaleOrderID, resp.Sale.OrderID)
	assert.True(t, resp.Sale.IsDirect())
	assert.True(t, resp.Sale.Total.Equal(dec("5.80")))
}

func TestCheckout_RequiresOpenSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.addTwo(t, "t1", "p10")
	_, err := f.orders.SendToKitchen(ctx, "t1")
	require.NoError(t, err)

	_, err = f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t1", PaymentMethod: model.PaymentCash})
	assert.ErrorIs(t, err, model.ErrNoOpenSession)
	assert.ErrorIs(t, err, model.ErrPrecondition)

	// nothing moved
	assert.Len(t, f.orders.ListActive(ctx), 1)
	table, _ := f.tables.Get(ctx, "t1")
	assert.Equal(t, model.TableOccupied, table.Status)
	assert.Equal(t, 0, f.reports.Dashboard(ctx).SalesCount)
	assert.Empty(t, f.invoices.sales)
}

func TestCheckout_RejectsEmptyCartAndBadInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	_, err := f.cash.Open(ctx, cashier, decimal.Zero)
	require.NoError(t, err)

	_, err = f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t2", PaymentMethod: model.PaymentCash})
	assert.ErrorIs(t, err, model.ErrEmptyCart)

	_, err = f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t99", PaymentMethod: model.PaymentCash})
	assert.ErrorIs(t, err, model.ErrTableNotFound)

	_, err = f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t2", PaymentMethod: "Bitcoin"})
	assert.ErrorIs(t, err, model.ErrInvalidPayment)

	sess, err := f.cash.Current(ctx)
	require.NoError(t, err)
	assert.True(t, sess.TotalSales.IsZero())
}

func TestCheckout_SlotWriteFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	_, err := f.cash.Open(ctx, cashier, dec("50"))
	require.NoError(t, err)
	f.addTwo(t, "t1", "p10")
	_, err = f.orders.SendToKitchen(ctx, "t1")
	require.NoError(t, err)

	f.store.failPuts = true
	_, err = f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t1", PaymentMethod: model.PaymentCash})
	require.Error(t, err)

	sess, err := f.cash.Current(ctx)
	require.NoError(t, err)
	assert.True(t, sess.TotalSales.IsZero())
	assert.True(t, sess.ExpectedBalance.Equal(dec("50")))
	assert.Len(t, f.orders.ListActive(ctx), 1)
	assert.Equal(t, 0, f.reports.Dashboard(ctx).SalesCount)
}

func TestCheckout_InvoiceQueueErrorDoesNotFailSale(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.invoices.err = errors.New("redis down")
	_, err := f.cash.Open(ctx, cashier, decimal.Zero)
	require.NoError(t, err)
	_, err = f.orders.AddItem(ctx, "t1", "p5")
	require.NoError(t, err)

	_, err = f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t1", PaymentMethod: model.PaymentCash})
	require.NoError(t, err)
	assert.Equal(t, 1, f.reports.Dashboard(ctx).SalesCount)
}

func TestCheckout_StockDecrement(t *testing.T) {
	ctx := context.Background()

	t.Run("off by default", func(t *testing.T) {
		f := newFixture(t, false)
		_, err := f.cash.Open(ctx, cashier, decimal.Zero)
		require.NoError(t, err)
		f.addTwo(t, "t1", "p10")
		_, err = f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t1", PaymentMethod: model.PaymentCash})
		require.NoError(t, err)

		p, err := f.catalog.Get(ctx, "p10")
		require.NoError(t, err)
		assert.Equal(t, 3, p.Stock)
	})

	t.Run("clamped at zero when on", func(t *testing.T) {
		f := newFixture(t, true)
		_, err := f.cash.Open(ctx, cashier, decimal.Zero)
		require.NoError(t, err)
		f.addTwo(t, "t1", "p10")
		f.addTwo(t, "t1", "p10")
		_, err = f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t1", PaymentMethod: model.PaymentCash})
		require.NoError(t, err)

		p, err := f.catalog.Get(ctx, "p10")
		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock)
	})
}

// ── Orders ───────────────────────────────────────────────────────────────────

func TestSendToKitchen_ReusesOrderID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	_, err := f.orders.AddItem(ctx, "t2", "p10")
	require.NoError(t, err)
	first, err := f.orders.SendToKitchen(ctx, "t2")
	require.NoError(t, err)

	_, err = f.orders.AddItem(ctx, "t2", "p5")
	require.NoError(t, err)
	second, err := f.orders.SendToKitchen(ctx, "t2")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, fixedAt, second.CreatedAt)
	assert.Len(t, second.Items, 2)
	assert.Len(t, f.orders.ListActive(ctx), 1)
	assert.Len(t, f.orders.KitchenQueue(ctx), 1)
}

func TestSendToKitchen_EmptyCart(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.orders.SendToKitchen(context.Background(), "t4")
	assert.ErrorIs(t, err, model.ErrEmptyCart)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestHoldOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	_, err := f.orders.AddItem(ctx, "t5", "p5")
	require.NoError(t, err)
	held, err := f.orders.HoldOrder(ctx, "t5")
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, held.Status)
	assert.Empty(t, f.orders.KitchenQueue(ctx))

	sent, err := f.orders.SendToKitchen(ctx, "t5")
	require.NoError(t, err)
	assert.Equal(t, held.ID, sent.ID)

	// holding again does not move the order backward
	again, err := f.orders.HoldOrder(ctx, "t5")
	require.NoError(t, err)
	assert.Equal(t, model.OrderInKitchen, again.Status)
}

func TestMarkReady(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	_, err := f.orders.AddItem(ctx, "t6", "p10")
	require.NoError(t, err)
	held, err := f.orders.HoldOrder(ctx, "t6")
	require.NoError(t, err)

	_, err = f.orders.MarkReady(ctx, held.ID)
	assert.ErrorIs(t, err, model.ErrInvalidTransition)

	sent, err := f.orders.SendToKitchen(ctx, "t6")
	require.NoError(t, err)
	ready, err := f.orders.MarkReady(ctx, sent.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderReady, ready.Status)
	assert.Empty(t, f.orders.KitchenQueue(ctx))

	_, err = f.orders.SendToKitchen(ctx, "t6")
	assert.ErrorIs(t, err, model.ErrInvalidTransition)

	_, err = f.orders.MarkReady(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

// stallingObserver holds the first In Kitchen event until resume is closed.
type stallingObserver struct {
	mu       sync.Mutex
	statuses []model.OrderStatus
	stalled  chan string
	resume   chan struct{}
}

func (o *stallingObserver) Notify(_ context.Context, ev model.Event) {
	if ev.Kind != model.EventOrderUpserted {
		return
	}
	if ev.Order.Status == model.OrderInKitchen && o.stalled != nil {
		o.stalled <- ev.Order.ID
		o.stalled = nil
		<-o.resume
	}
	o.mu.Lock()
	o.statuses = append(o.statuses, ev.Order.Status)
	o.mu.Unlock()
}

func (o *stallingObserver) seen() []model.OrderStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]model.OrderStatus(nil), o.statuses...)
}

func TestOrderEvents_DeliveredInCommitOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	obs := &stallingObserver{stalled: make(chan string, 1), resume: make(chan struct{})}
	orders := NewOrderService(f.st, NewNotifier(obs))

	_, err := orders.AddItem(ctx, "t3", "p10")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := orders.SendToKitchen(ctx, "t3")
		assert.NoError(t, err)
	}()
	orderID := <-obs.stalled

	go func() {
		defer wg.Done()
		_, err := orders.MarkReady(ctx, orderID)
		assert.NoError(t, err)
	}()
	// Ready commits while the In Kitchen event is still being delivered
	require.Eventually(t, func() bool {
		active := orders.ListActive(ctx)
		return len(active) == 1 && active[0].Status == model.OrderReady
	}, 2*time.Second, 5*time.Millisecond)

	close(obs.resume)
	wg.Wait()
	assert.Equal(t, []model.OrderStatus{model.OrderInKitchen, model.OrderReady}, obs.seen())
}

func TestOpenCart_SeededFromActiveOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	f.addTwo(t, "t7", "p10")
	order, err := f.orders.SendToKitchen(ctx, "t7")
	require.NoError(t, err)

	// drop the working cart, as after a restart of the front end
	f.st.Carts.Clear("t7")

	cart, err := f.orders.OpenCart(ctx, "t7")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, order.ID, cart.OrderID)
	assert.Equal(t, model.OrderInKitchen, cart.OrderStatus)
	assert.True(t, cart.Totals.Total.Equal(dec("23.20")))
}

func TestCartEditing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	_, err := f.orders.AddItem(ctx, "t1", "nope")
	assert.ErrorIs(t, err, model.ErrProductNotFound)
	_, err = f.orders.AddItem(ctx, "t42", "p10")
	assert.ErrorIs(t, err, model.ErrTableNotFound)

	f.addTwo(t, "t1", "p10")

	_, err = f.orders.AdjustItem(ctx, "t1", "p10", -3)
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	cart, err := f.orders.AdjustItem(ctx, "t1", "p10", -1)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart, err = f.orders.AdjustItem(ctx, "t1", "p5", 2)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	cart, err = f.orders.SetNote(ctx, "t1", "p10", "sin cebolla")
	require.NoError(t, err)
	assert.Equal(t, "sin cebolla", cart.Items[0].Notes)

	_, err = f.orders.SetNote(ctx, "t1", "p5", "x")
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	cart, err = f.orders.RemoveItem(ctx, "t1", "p10")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	f.addTwo(t, "t1", "p5")
	require.NoError(t, f.orders.ClearCart(ctx, "t1"))
	cart, err = f.orders.OpenCart(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

// ── Cash session ─────────────────────────────────────────────────────────────

func TestCashSession_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	_, err := f.cash.Current(ctx)
	assert.ErrorIs(t, err, model.ErrNoOpenSession)

	_, err = f.cash.Open(ctx, cashier, dec("-1"))
	assert.ErrorIs(t, err, model.ErrNegativeAmount)

	sess, err := f.cash.Open(ctx, cashier, dec("100"))
	require.NoError(t, err)
	assert.Equal(t, model.SessionOpen, sess.Status)
	assert.Equal(t, "Juan Cobros", sess.UserName)

	_, err = f.cash.Open(ctx, cashier, dec("10"))
	assert.ErrorIs(t, err, model.ErrSessionAlreadyOpen)

	_, err = f.cash.Close(ctx, dec("-5"))
	assert.ErrorIs(t, err, model.ErrNegativeAmount)

	report, err := f.cash.Close(ctx, dec("97"))
	require.NoError(t, err)
	assert.Equal(t, model.SessionClosed, report.Session.Status)
	require.NotNil(t, report.Session.ClosedAt)
	assert.True(t, report.Variance.Equal(dec("-3")))
	assert.Equal(t, model.VarianceWarning, report.Classification)

	_, err = f.store.Get(ctx, repository.SlotActiveCashSession)
	assert.ErrorIs(t, err, repository.ErrSlotEmpty)

	_, err = f.cash.Close(ctx, decimal.Zero)
	assert.ErrorIs(t, err, model.ErrNoOpenSession)

	assert.Equal(t,
		[]model.EventKind{model.EventSessionOpened, model.EventSessionClosed},
		f.rec.kinds())
}

func TestCashSession_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	opened, err := f.cash.Open(ctx, cashier, dec("75.50"))
	require.NoError(t, err)

	reloaded := repository.NewState(f.store, repository.DefaultSeed())
	require.NoError(t, reloaded.Load(ctx))

	sess, err := NewCashService(reloaded, nil).Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, opened.ID, sess.ID)
	assert.True(t, sess.OpeningBalance.Equal(dec("75.50")))
}

func TestCashSession_OpenWriteFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.store.failPuts = true

	_, err := f.cash.Open(ctx, cashier, dec("10"))
	require.Error(t, err)

	_, err = f.cash.Current(ctx)
	assert.ErrorIs(t, err, model.ErrNoOpenSession)
	assert.Empty(t, f.rec.events)
}

// ── Tables and catalog ───────────────────────────────────────────────────────

func TestTableService_SetStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	_, err := f.tables.SetStatus(ctx, "t1", model.TableBill)
	assert.ErrorIs(t, err, model.ErrInvalidTransition)

	tb, err := f.tables.SetStatus(ctx, "t1", model.TableCleaning)
	require.NoError(t, err)
	assert.Equal(t, model.TableCleaning, tb.Status)

	tb, err = f.tables.SetStatus(ctx, "t1", model.TableFree)
	require.NoError(t, err)
	assert.Equal(t, model.TableFree, tb.Status)

	_, err = f.tables.SetStatus(ctx, "t1", "Broken")
	assert.ErrorIs(t, err, model.ErrInvalidTableStatus)

	_, err = f.orders.AddItem(ctx, "t2", "p5")
	require.NoError(t, err)
	_, err = f.orders.SendToKitchen(ctx, "t2")
	require.NoError(t, err)
	tb, err = f.tables.SetStatus(ctx, "t2", model.TableBill)
	require.NoError(t, err)
	assert.Equal(t, model.TableBill, tb.Status)
	assert.NotEmpty(t, tb.CurrentOrderID)

	assert.Len(t, f.tables.List(ctx), 8)
}

func TestCatalogService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	created, err := f.catalog.Create(ctx, dto.ProductRequest{
		Name: "Agua", Price: dec("1.50"), Category: model.CategoryDrinks, Stock: -4,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Stock)
	assert.Equal(t, model.IconUtensils, created.Icon)

	all := f.catalog.List(ctx, "", "")
	require.Len(t, all, 3)
	assert.Equal(t, created.ID, all[0].ID)

	drinks := f.catalog.List(ctx, model.CategoryDrinks, "LIMO")
	require.Len(t, drinks, 1)
	assert.Equal(t, "p5", drinks[0].ID)
	assert.Empty(t, f.catalog.List(ctx, model.CategoryDesserts, ""))

	_, err = f.catalog.Create(ctx, dto.ProductRequest{Name: "x", Price: dec("-1"), Category: model.CategoryFood})
	assert.ErrorIs(t, err, model.ErrNegativePrice)

	p, err := f.catalog.SetStock(ctx, "p5", -10)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	updated, err := f.catalog.Update(ctx, "p5", dto.ProductRequest{
		Name: "Limonada grande", Price: dec("6"), Category: model.CategoryDrinks, Icon: model.IconCoffee, Stock: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StockLow, updated.StockLevel())

	require.NoError(t, f.catalog.Delete(ctx, created.ID))
	assert.ErrorIs(t, f.catalog.Delete(ctx, created.ID), model.ErrProductNotFound)

	// one event per committed change, none for rejected ones
	assert.Equal(t, []model.EventKind{
		model.EventProductChanged, // create
		model.EventProductChanged, // stock
		model.EventProductChanged, // update
		model.EventProductDeleted,
	}, f.rec.kinds())
	require.Len(t, f.rec.events, 4)
	assert.Equal(t, created.ID, f.rec.events[0].EntityID)
}

// ── Reports ──────────────────────────────────────────────────────────────────

func TestReports(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	_, err := f.cash.Open(ctx, cashier, decimal.Zero)
	require.NoError(t, err)

	f.addTwo(t, "t1", "p10")
	_, err = f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t1", PaymentMethod: model.PaymentCash})
	require.NoError(t, err)
	_, err = f.orders.AddItem(ctx, "t2", "p5")
	require.NoError(t, err)
	_, err = f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t2", PaymentMethod: model.PaymentCard})
	require.NoError(t, err)

	dash := f.reports.Dashboard(ctx)
	assert.Equal(t, 2, dash.SalesCount)
	assert.True(t, dash.SalesTotal.Equal(dec("29.00")))
	assert.Equal(t, 1, dash.LowStockCount)
	require.NotNil(t, dash.Session)
	assert.True(t, dash.Session.TotalSales.Equal(dec("29.00")))
	require.Len(t, dash.RecentSales, 2)
	assert.Equal(t, model.PaymentCard, dash.RecentSales[0].PaymentMethod)

	hours := f.reports.SalesByHour(ctx)
	require.Len(t, hours, 12)
	assert.Equal(t, "9:00", hours[0].Hour)
	assert.Equal(t, "20:00", hours[11].Hour)
	assert.True(t, hours[13-9].Total.Equal(dec("29.00")))
	assert.True(t, hours[0].Total.IsZero())

	totals := f.reports.PaymentTotals(ctx)
	require.Len(t, totals, 2)
	assert.True(t, totals[0].Total.Equal(dec("23.20")))
	assert.True(t, totals[1].Total.Equal(dec("5.80")))
}

func TestInvoiceService_Render(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	_, err := f.cash.Open(ctx, cashier, decimal.Zero)
	require.NoError(t, err)
	_, err = f.orders.AddItem(ctx, "t1", "p10")
	require.NoError(t, err)
	resp, err := f.checkout.Checkout(ctx, dto.CheckoutRequest{TableID: "t1", PaymentMethod: model.PaymentCash})
	require.NoError(t, err)

	svc := NewInvoiceService(f.st)
	pdf, name, err := svc.Render(ctx, resp.Sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "Factura_"+resp.Sale.ID+".pdf", name)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	_, _, err = svc.Render(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrSaleNotFound)
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	st := repository.NewState(repository.NewMemorySlotStore(), repository.DefaultSeed())
	require.NoError(t, st.Load(ctx))
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1, BcryptCost: bcrypt.MinCost}

	svc, err := NewAuthService(st, nil, cfg, repository.SeedUsers())
	require.NoError(t, err)

	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, model.ErrNotLoggedIn)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "mozo", Password: "1234"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "123"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "mozo", Password: "123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, model.RoleWaiter, resp.User.Role)

	u, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mozo", u.Username)
	assert.Empty(t, u.Password)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, model.ErrNotLoggedIn)
}
