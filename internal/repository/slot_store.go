package repository

import (
	"context"
	"errors"
	"sync"
)

// Durable slot keys. Nothing else is ever persisted.
const (
	SlotSessionIdentity   = "session-identity"
	SlotActiveCashSession = "active-cash-session"
)

// ResolveSlot maps an operator-facing name to its slot key. Accepts the
// short names "identity" and "session" (the cash session) or a full key.
func ResolveSlot(name string) (string, bool) {
	switch name {
	case "identity", SlotSessionIdentity:
		return SlotSessionIdentity, true
	case "session", SlotActiveCashSession:
		return SlotActiveCashSession, true
	}
	return "", false
}

// ErrSlotEmpty is returned by Get when the key holds no value.
var ErrSlotEmpty = errors.New("slot vacio")

// SlotStore is a tiny durable key → JSON store. Absence of a key is a
// meaningful state, so Delete must be idempotent.
type SlotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Driver() string
}

// ── Memory driver ────────────────────────────────────────────────────────────

type memorySlotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemorySlotStore returns a process-local store, used in development and
// tests. State does not survive a restart.
func NewMemorySlotStore() SlotStore {
	return &memorySlotStore{slots: make(map[string][]byte)}
}

func (s *memorySlotStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	if !ok {
		return nil, ErrSlotEmpty
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *memorySlotStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.slots[key] = v
	return nil
}

func (s *memorySlotStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}

func (s *memorySlotStore) Ping(context.Context) error { return nil }

func (s *memorySlotStore) Driver() string { return "memory" }
