package service

import (
	"context"
	"time"

	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/model"
	"github.com/josebazania/restaurantepos/internal/repository"

	"github.com/google/uuid"
)

type OrderService interface {
	OpenCart(ctx context.Context, tableID string) (dto.CartResponse, error)
	AddItem(ctx context.Context, tableID, productID string) (dto.CartResponse, error)
	AdjustItem(ctx context.Context, tableID, productID string, delta int) (dto.CartResponse, error)
	RemoveItem(ctx context.Context, tableID, productID string) (dto.CartResponse, error)
	SetNote(ctx context.Context, tableID, productID, note string) (dto.CartResponse, error)
	ClearCart(ctx context.Context, tableID string) error

	// HoldOrder saves the cart as a Pending order without notifying the
	// kitchen. An order already past Pending keeps its status.
	HoldOrder(ctx context.Context, tableID string) (model.Order, error)
	// SendToKitchen creates or updates the table's order as In Kitchen,
	// reusing the existing order id.
	SendToKitchen(ctx context.Context, tableID string) (model.Order, error)
	// MarkReady is the kitchen-complete action: In Kitchen → Ready.
	MarkReady(ctx context.Context, orderID string) (model.Order, error)

	ListActive(ctx context.Context) []model.Order
	KitchenQueue(ctx context.Context) []model.Order
}

type orderService struct {
	st     *repository.State
	events *Notifier
	now    func() time.Time
}

func NewOrderService(st *repository.State, events *Notifier) OrderService {
	return &orderService{st: st, events: events, now: time.Now}
}

// ── Cart ──────────────────────────────────────────────────────────────────────

func (s *orderService) OpenCart(_ context.Context, tableID string) (dto.CartResponse, error) {
	return s.editCart(tableID, func(*model.Cart) error { return nil })
}

func (s *orderService) AddItem(_ context.Context, tableID, productID string) (dto.CartResponse, error) {
	return s.editCart(tableID, func(c *model.Cart) error {
		p, err := s.st.Products.FindByID(productID)
		if err != nil {
			return err
		}
		c.Add(p)
		return nil
	})
}

func (s *orderService) AdjustItem(_ context.Context, tableID, productID string, delta int) (dto.CartResponse, error) {
	return s.editCart(tableID, func(c *model.Cart) error { return c.Adjust(productID, delta) })
}

func (s *orderService) RemoveItem(_ context.Context, tableID, productID string) (dto.CartResponse, error) {
	return s.editCart(tableID, func(c *model.Cart) error {
		c.Remove(productID)
		return nil
	})
}

func (s *orderService) SetNote(_ context.Context, tableID, productID, note string) (dto.CartResponse, error) {
	return s.editCart(tableID, func(c *model.Cart) error { return c.SetNote(productID, note) })
}

func (s *orderService) ClearCart(_ context.Context, tableID string) error {
	return s.st.Run(func() error {
		if _, err := s.st.Tables.FindByID(tableID); err != nil {
			return err
		}
		s.st.Carts.Put(model.Cart{TableID: tableID, Items: []model.CartItem{}})
		return nil
	})
}

// editCart applies fn to a copy of the table's cart and stores it only when
// fn succeeds.
func (s *orderService) editCart(tableID string, fn func(*model.Cart) error) (dto.CartResponse, error) {
	var resp dto.CartResponse
	err := s.st.Run(func() error {
		cart, _, err := cartFor(s.st, tableID)
		if err != nil {
			return err
		}
		if err := fn(&cart); err != nil {
			return err
		}
		s.st.Carts.Put(cart)
		resp = s.cartResponse(cart)
		return nil
	})
	return resp, err
}

// must run under the state lock
func (s *orderService) cartResponse(c model.Cart) dto.CartResponse {
	resp := dto.CartResponse{
		TableID: c.TableID,
		Items:   model.CloneItems(c.Items),
		Totals:  c.Totals(),
	}
	if o, ok := s.st.Orders.ActiveForTable(c.TableID); ok {
		resp.OrderID = o.ID
		resp.OrderStatus = o.Status
	}
	return resp
}

// ── Orders ────────────────────────────────────────────────────────────────────

func (s *orderService) HoldOrder(ctx context.Context, tableID string) (model.Order, error) {
	return s.commitCart(ctx, tableID, model.OrderPending)
}

func (s *orderService) SendToKitchen(ctx context.Context, tableID string) (model.Order, error) {
	return s.commitCart(ctx, tableID, model.OrderInKitchen)
}

func (s *orderService) commitCart(ctx context.Context, tableID string, status model.OrderStatus) (model.Order, error) {
	var (
		order model.Order
		table model.Table
	)
	publish := func() { s.events.Publish(ctx, orderEvents(order, table)...) }
	err := s.st.Commit(func() error {
		cart, _, err := cartFor(s.st, tableID)
		if err != nil {
			return err
		}
		if cart.IsEmpty() {
			return model.ErrEmptyCart
		}

		existing, ok := s.st.Orders.ActiveForTable(tableID)
		switch {
		case !ok:
			order = model.Order{ID: uuid.NewString(), TableID: tableID, CreatedAt: s.now(), Status: status}
		case status == model.OrderPending:
			order = existing
		case existing.Status.CanAdvanceTo(status):
			order = existing
			order.Status = status
		default:
			return model.ErrInvalidTransition
		}
		order.Items = model.CloneItems(cart.Items)
		order.Recompute()

		if table, err = upsertOrder(s.st, order); err != nil {
			return err
		}
		s.st.Carts.Put(cart)
		return nil
	}, publish)
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (s *orderService) MarkReady(ctx context.Context, orderID string) (model.Order, error) {
	var (
		order model.Order
		table model.Table
	)
	publish := func() { s.events.Publish(ctx, orderEvents(order, table)...) }
	err := s.st.Commit(func() (err error) {
		if order, err = s.st.Orders.FindByID(orderID); err != nil {
			return err
		}
		if order.Status != model.OrderInKitchen {
			return model.ErrInvalidTransition
		}
		order.Status = model.OrderReady
		table, err = upsertOrder(s.st, order)
		return err
	}, publish)
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListActive(_ context.Context) []model.Order {
	var out []model.Order
	_ = s.st.Run(func() error {
		out = s.st.Orders.List()
		return nil
	})
	return out
}

func (s *orderService) KitchenQueue(_ context.Context) []model.Order {
	var out []model.Order
	_ = s.st.Run(func() error {
		out = kitchenOrders(s.st)
		return nil
	})
	return out
}

// must run under the state lock
func kitchenOrders(st *repository.State) []model.Order {
	out := []model.Order{}
	for _, o := range st.Orders.List() {
		if o.Status == model.OrderInKitchen {
			out = append(out, o)
		}
	}
	return out
}
