package repository

import "github.com/josebazania/restaurantepos/internal/model"

// TableRepository holds the fixed set of tables. There is no create or
// delete: the seed is the whole set.
type TableRepository interface {
	List() []model.Table
	FindByID(id string) (model.Table, error)
	Update(t model.Table) error
}

type tableRepo struct{ items []model.Table }

func NewTableRepository(seed []model.Table) TableRepository {
	items := make([]model.Table, len(seed))
	copy(items, seed)
	return &tableRepo{items: items}
}

func (r *tableRepo) List() []model.Table {
	out := make([]model.Table, len(r.items))
	copy(out, r.items)
	return out
}

func (r *tableRepo) FindByID(id string) (model.Table, error) {
	for _, t := range r.items {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Table{}, model.ErrTableNotFound
}

func (r *tableRepo) Update(t model.Table) error {
	for i := range r.items {
		if r.items[i].ID == t.ID {
			r.items[i] = t
			return nil
		}
	}
	return model.ErrTableNotFound
}
