package repository

import "github.com/josebazania/restaurantepos/internal/model"

// CartRepository keeps the working cart of each table between requests.
type CartRepository interface {
	// Get returns the table's cart and whether one was open.
	Get(tableID string) (model.Cart, bool)
	Put(c model.Cart)
	Clear(tableID string)
}

type cartRepo struct{ carts map[string]model.Cart }

func NewCartRepository() CartRepository {
	return &cartRepo{carts: make(map[string]model.Cart)}
}

func (r *cartRepo) Get(tableID string) (model.Cart, bool) {
	c, ok := r.carts[tableID]
	if !ok {
		return model.Cart{TableID: tableID, Items: []model.CartItem{}}, false
	}
	return c.Clone(), true
}

func (r *cartRepo) Put(c model.Cart) { r.carts[c.TableID] = c.Clone() }

func (r *cartRepo) Clear(tableID string) { delete(r.carts, tableID) }
