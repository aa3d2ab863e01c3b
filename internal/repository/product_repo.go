package repository

import "github.com/josebazania/restaurantepos/internal/model"

// ProductRepository is the in-memory catalog. Callers serialize access
// through State.Run.
type ProductRepository interface {
	List() []model.Product
	FindByID(id string) (model.Product, error)
	// Create puts the product at the head of the list.
	Create(p model.Product)
	Update(p model.Product) error
	Delete(id string) error
}

type productRepo struct{ items []model.Product }

func NewProductRepository(seed []model.Product) ProductRepository {
	items := make([]model.Product, len(seed))
	copy(items, seed)
	return &productRepo{items: items}
}

func (r *productRepo) index(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *productRepo) List() []model.Product {
	out := make([]model.Product, len(r.items))
	copy(out, r.items)
	return out
}

func (r *productRepo) FindByID(id string) (model.Product, error) {
	i := r.index(id)
	if i < 0 {
		return model.Product{}, model.ErrProductNotFound
	}
	return r.items[i], nil
}

func (r *productRepo) Create(p model.Product) {
	r.items = append([]model.Product{p}, r.items...)
}

func (r *productRepo) Update(p model.Product) error {
	i := r.index(p.ID)
	if i < 0 {
		return model.ErrProductNotFound
	}
	r.items[i] = p
	return nil
}

func (r *productRepo) Delete(id string) error {
	i := r.index(id)
	if i < 0 {
		return model.ErrProductNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}
