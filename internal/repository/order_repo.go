package repository

import "github.com/josebazania/restaurantepos/internal/model"

// OrderRepository is the ledger of active orders, kept in insertion order.
type OrderRepository interface {
	List() []model.Order
	FindByID(id string) (model.Order, error)
	// ActiveForTable returns the non-paid order of a table, if any.
	ActiveForTable(tableID string) (model.Order, bool)
	// Upsert replaces an order with the same id in place or appends it.
	Upsert(o model.Order)
	// Remove is a no-op when the id is unknown.
	Remove(id string)
}

type orderRepo struct{ items []model.Order }

func NewOrderRepository() OrderRepository { return &orderRepo{} }

func (r *orderRepo) List() []model.Order {
	out := make([]model.Order, len(r.items))
	for i, o := range r.items {
		out[i] = o.Clone()
	}
	return out
}

func (r *orderRepo) FindByID(id string) (model.Order, error) {
	for _, o := range r.items {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return model.Order{}, model.ErrOrderNotFound
}

func (r *orderRepo) ActiveForTable(tableID string) (model.Order, bool) {
	for _, o := range r.items {
		if o.TableID == tableID && o.Status != model.OrderPaid {
			return o.Clone(), true
		}
	}
	return model.Order{}, false
}

func (r *orderRepo) Upsert(o model.Order) {
	o = o.Clone()
	for i := range r.items {
		if r.items[i].ID == o.ID {
			r.items[i] = o
			return
		}
	}
	r.items = append(r.items, o)
}

func (r *orderRepo) Remove(id string) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}
