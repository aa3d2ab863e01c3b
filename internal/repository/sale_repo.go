package repository

import "github.com/josebazania/restaurantepos/internal/model"

// SaleRepository is the append-only sale log. List returns newest first.
type SaleRepository interface {
	Record(s model.Sale)
	List() []model.Sale
	FindByID(id string) (model.Sale, error)
	Len() int
}

type saleRepo struct{ items []model.Sale }

func NewSaleRepository() SaleRepository { return &saleRepo{} }

func (r *saleRepo) Record(s model.Sale) {
	r.items = append([]model.Sale{s.Clone()}, r.items...)
}

func (r *saleRepo) List() []model.Sale {
	out := make([]model.Sale, len(r.items))
	for i, s := range r.items {
		out[i] = s.Clone()
	}
	return out
}

func (r *saleRepo) FindByID(id string) (model.Sale, error) {
	for _, s := range r.items {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return model.Sale{}, model.ErrSaleNotFound
}

func (r *saleRepo) Len() int { return len(r.items) }
