package service

import (
	"context"

	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/model"
	"github.com/josebazania/restaurantepos/internal/repository"
)

type TableService interface {
	List(ctx context.Context) []dto.TableResponse
	Get(ctx context.Context, id string) (dto.TableResponse, error)
	// SetStatus applies a manual status change: Occupied → Bill,
	// Free → Cleaning, Cleaning → Free.
	SetStatus(ctx context.Context, id string, status model.TableStatus) (model.Table, error)
}

type tableService struct {
	st     *repository.State
	events *Notifier
}

func NewTableService(st *repository.State, events *Notifier) TableService {
	return &tableService{st: st, events: events}
}

func (s *tableService) List(_ context.Context) []dto.TableResponse {
	var out []dto.TableResponse
	_ = s.st.Run(func() error {
		tables := s.st.Tables.List()
		out = make([]dto.TableResponse, len(tables))
		for i, t := range tables {
			out[i] = s.withOrder(t)
		}
		return nil
	})
	return out
}

func (s *tableService) Get(_ context.Context, id string) (dto.TableResponse, error) {
	var out dto.TableResponse
	err := s.st.Run(func() error {
		t, err := s.st.Tables.FindByID(id)
		if err != nil {
			return err
		}
		out = s.withOrder(t)
		return nil
	})
	return out, err
}

// must run under the state lock
func (s *tableService) withOrder(t model.Table) dto.TableResponse {
	resp := dto.TableResponse{Table: t}
	if o, ok := s.st.Orders.ActiveForTable(t.ID); ok {
		resp.ActiveOrder = &o
	}
	return resp
}

func (s *tableService) SetStatus(ctx context.Context, id string, status model.TableStatus) (model.Table, error) {
	if !status.Valid() {
		return model.Table{}, model.ErrInvalidTableStatus
	}
	var t model.Table
	publish := func() {
		s.events.Publish(ctx, model.Event{Kind: model.EventTableChanged, EntityID: t.ID, Table: &t})
	}
	err := s.st.Commit(func() (err error) {
		if t, err = s.st.Tables.FindByID(id); err != nil {
			return err
		}
		if !t.Status.CanMoveTo(status) {
			return model.ErrInvalidTransition
		}
		t.Status = status
		return s.st.Tables.Update(t)
	}, publish)
	if err != nil {
		return model.Table{}, err
	}
	return t, nil
}
