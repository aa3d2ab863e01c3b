package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/josebazania/restaurantepos/internal/model"
)

// CashSessionRepository persists the open cash session in the
// active-cash-session slot and caches the decoded value.
type CashSessionRepository interface {
	Load(ctx context.Context) error
	Active() (model.CashSession, bool)
	Save(ctx context.Context, s model.CashSession) error
	Clear(ctx context.Context) error
}

// IdentityRepository persists the logged-in user in the session-identity slot.
type IdentityRepository interface {
	Load(ctx context.Context) error
	Current() (model.User, bool)
	Save(ctx context.Context, u model.User) error
	Clear(ctx context.Context) error
}

// jsonSlot writes through to the store before touching the cache, so a failed
// write leaves the cached value as it was.
type jsonSlot[T any] struct {
	store SlotStore
	key   string
	value *T
}

func (s *jsonSlot[T]) load(ctx context.Context) error {
	raw, err := s.store.Get(ctx, s.key)
	if errors.Is(err, ErrSlotEmpty) {
		s.value = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("leer slot %s: %w", s.key, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decodificar slot %s: %w", s.key, err)
	}
	s.value = &v
	return nil
}

func (s *jsonSlot[T]) get() (T, bool) {
	if s.value == nil {
		var zero T
		return zero, false
	}
	return *s.value, true
}

func (s *jsonSlot[T]) save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("escribir slot %s: %w", s.key, err)
	}
	s.value = &v
	return nil
}

func (s *jsonSlot[T]) clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("borrar slot %s: %w", s.key, err)
	}
	s.value = nil
	return nil
}

// ── Cash session ─────────────────────────────────────────────────────────────

type cashSessionRepo struct{ slot jsonSlot[model.CashSession] }

func NewCashSessionRepository(store SlotStore) CashSessionRepository {
	return &cashSessionRepo{slot: jsonSlot[model.CashSession]{store: store, key: SlotActiveCashSession}}
}

func (r *cashSessionRepo) Load(ctx context.Context) error { return r.slot.load(ctx) }

func (r *cashSessionRepo) Active() (model.CashSession, bool) {
	s, ok := r.slot.get()
	if ok && s.Status != model.SessionOpen {
		return model.CashSession{}, false
	}
	return s, ok
}

func (r *cashSessionRepo) Save(ctx context.Context, s model.CashSession) error {
	return r.slot.save(ctx, s)
}

func (r *cashSessionRepo) Clear(ctx context.Context) error { return r.slot.clear(ctx) }

// ── Identity ─────────────────────────────────────────────────────────────────

type identityRepo struct{ slot jsonSlot[model.User] }

func NewIdentityRepository(store SlotStore) IdentityRepository {
	return &identityRepo{slot: jsonSlot[model.User]{store: store, key: SlotSessionIdentity}}
}

func (r *identityRepo) Load(ctx context.Context) error { return r.slot.load(ctx) }

func (r *identityRepo) Current() (model.User, bool) { return r.slot.get() }

func (r *identityRepo) Save(ctx context.Context, u model.User) error { return r.slot.save(ctx, u) }

func (r *identityRepo) Clear(ctx context.Context) error { return r.slot.clear(ctx) }
