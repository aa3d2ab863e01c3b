package service

import (
	"context"
	"time"

	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/model"
	"github.com/josebazania/restaurantepos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InvoiceQueue accepts a recorded sale for asynchronous invoice rendering.
// worker.Dispatcher implements it.
type InvoiceQueue interface {
	EnqueueInvoice(ctx context.Context, sale model.Sale, customerEmail string) error
}

type CheckoutService interface {
	// Checkout finalizes the table's cart into a sale, credits the open cash
	// session, removes the table's order and frees the table. Nothing changes
	// unless every step succeeds.
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutService struct {
	st             *repository.State
	events         *Notifier
	invoices       InvoiceQueue
	decrementStock bool
	now            func() time.Time
}

// NewCheckoutService builds the checkout workflow. invoices may be nil.
func NewCheckoutService(st *repository.State, events *Notifier, invoices InvoiceQueue, decrementStock bool) CheckoutService {
	return &checkoutService{
		st:             st,
		events:         events,
		invoices:       invoices,
		decrementStock: decrementStock,
		now:            time.Now,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if !req.PaymentMethod.Valid() {
		return nil, model.ErrInvalidPayment
	}

	var (
		sale     model.Sale
		sess     model.CashSession
		table    model.Table
		removed  string
		products []model.Product
	)
	publish := func() {
		events := []model.Event{
			{Kind: model.EventSaleRecorded, EntityID: sale.ID, Sale: &sale},
			{Kind: model.EventSessionSettled, EntityID: sess.ID, Session: &sess},
			{Kind: model.EventTableChanged, EntityID: table.ID, Table: &table},
		}
		if removed != "" {
			events = append(events, model.Event{Kind: model.EventOrderRemoved, EntityID: removed})
		}
		for i := range products {
			events = append(events, productEvent(model.EventProductChanged, products[i]))
		}
		s.events.Publish(ctx, events...)
	}
	err := s.st.Commit(func() error {
		cart, t, err := cartFor(s.st, req.TableID)
		if err != nil {
			return err
		}
		if _, ok := s.st.Sessions.Active(); !ok {
			return model.ErrNoOpenSession
		}
		if cart.IsEmpty() {
			return model.ErrEmptyCart
		}

		orderID := model.DirectSaleOrderID
		if o, ok := s.st.Orders.ActiveForTable(t.ID); ok {
			orderID = o.ID
		}
		sale = model.Sale{
			ID:            uuid.NewString(),
			CreatedAt:     s.now(),
			Items:         model.CloneItems(cart.Items),
			Total:         cart.Totals().Total,
			PaymentMethod: req.PaymentMethod,
			OrderID:       orderID,
			TableID:       t.ID,
			TableNumber:   t.Number,
		}

		// durable slot first: a failed write aborts before any store moves
		if sess, err = settle(ctx, s.st, sale.Total); err != nil {
			return err
		}
		sale.SessionID = sess.ID

		s.st.Sales.Record(sale)
		if orderID != model.DirectSaleOrderID {
			s.st.Orders.Remove(orderID)
			removed = orderID
		}
		if table, err = releaseTable(s.st, t); err != nil {
			return err
		}
		if s.decrementStock {
			products = s.applyStock(sale.Items)
		}
		return nil
	}, publish)
	if err != nil {
		return nil, err
	}

	if s.invoices != nil {
		if err := s.invoices.EnqueueInvoice(ctx, sale, req.CustomerEmail); err != nil {
			log.Warn().Err(err).Str("sale_id", sale.ID).Msg("no se pudo encolar la factura")
		}
	}

	return &dto.CheckoutResponse{Sale: sale, Session: sess}, nil
}

// applyStock decrements each sold product, clamped at zero. Products deleted
// since they were added to the cart are skipped.
func (s *checkoutService) applyStock(items []model.CartItem) []model.Product {
	var changed []model.Product
	for _, it := range items {
		p, err := s.st.Products.FindByID(it.ID)
		if err != nil {
			continue
		}
		p.Stock = model.ClampStock(p.Stock - it.Quantity)
		if err := s.st.Products.Update(p); err != nil {
			continue
		}
		changed = append(changed, p)
	}
	return changed
}
