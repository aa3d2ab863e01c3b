package service

import (
	"context"

	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/model"
	"github.com/josebazania/restaurantepos/internal/repository"

	"github.com/google/uuid"
)

type CatalogService interface {
	// List filters by category (empty means any) and a case-insensitive name
	// search, keeping catalog order.
	List(ctx context.Context, category model.Category, search string) []model.Product
	Get(ctx context.Context, id string) (model.Product, error)
	Create(ctx context.Context, req dto.ProductRequest) (model.Product, error)
	Update(ctx context.Context, id string, req dto.ProductRequest) (model.Product, error)
	Delete(ctx context.Context, id string) error
	// SetStock sets an absolute count, clamped at zero.
	SetStock(ctx context.Context, id string, stock int) (model.Product, error)
}

type catalogService struct {
	st     *repository.State
	events *Notifier
}

func NewCatalogService(st *repository.State, events *Notifier) CatalogService {
	return &catalogService{st: st, events: events}
}

func (s *catalogService) List(_ context.Context, category model.Category, search string) []model.Product {
	var out []model.Product
	_ = s.st.Run(func() error {
		for _, p := range s.st.Products.List() {
			if p.Matches(category, search) {
				out = append(out, p)
			}
		}
		return nil
	})
	if out == nil {
		out = []model.Product{}
	}
	return out
}

func (s *catalogService) Get(_ context.Context, id string) (model.Product, error) {
	var p model.Product
	err := s.st.Run(func() (err error) {
		p, err = s.st.Products.FindByID(id)
		return err
	})
	return p, err
}

func (s *catalogService) Create(ctx context.Context, req dto.ProductRequest) (model.Product, error) {
	p := fromRequest(uuid.NewString(), req)
	if err := p.Validate(); err != nil {
		return model.Product{}, err
	}
	err := s.st.Commit(func() error {
		s.st.Products.Create(p)
		return nil
	}, func() { s.events.Publish(ctx, productEvent(model.EventProductChanged, p)) })
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (s *catalogService) Update(ctx context.Context, id string, req dto.ProductRequest) (model.Product, error) {
	p := fromRequest(id, req)
	if err := p.Validate(); err != nil {
		return model.Product{}, err
	}
	err := s.st.Commit(func() error { return s.st.Products.Update(p) },
		func() { s.events.Publish(ctx, productEvent(model.EventProductChanged, p)) })
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	return s.st.Commit(func() error { return s.st.Products.Delete(id) },
		func() { s.events.Publish(ctx, model.Event{Kind: model.EventProductDeleted, EntityID: id}) })
}

func (s *catalogService) SetStock(ctx context.Context, id string, stock int) (model.Product, error) {
	var p model.Product
	err := s.st.Commit(func() (err error) {
		if p, err = s.st.Products.FindByID(id); err != nil {
			return err
		}
		p.Stock = model.ClampStock(stock)
		return s.st.Products.Update(p)
	}, func() { s.events.Publish(ctx, productEvent(model.EventProductChanged, p)) })
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func fromRequest(id string, req dto.ProductRequest) model.Product {
	return model.Product{
		ID:       id,
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Icon:     req.Icon.OrDefault(),
		Stock:    model.ClampStock(req.Stock),
	}
}

func productEvent(kind model.EventKind, p model.Product) model.Event {
	return model.Event{Kind: kind, EntityID: p.ID, Product: &p}
}
