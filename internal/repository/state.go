package repository

import (
	"context"
	"sync"

	"github.com/josebazania/restaurantepos/internal/model"
)

// Seed is the process-start data.
type Seed struct {
	Products []model.Product
	Tables   []model.Table
}

// DefaultSeed returns the built-in menu and floor plan.
func DefaultSeed() Seed {
	return Seed{Products: SeedProducts(), Tables: SeedTables()}
}

// State aggregates every store of the application. All workflow operations
// run inside Run, which gives them a single logical writer.
type State struct {
	mu sync.Mutex
	// held from the end of a commit until its after hook returns, so hooks
	// observe commits in order
	publishMu sync.Mutex

	Products ProductRepository
	Tables   TableRepository
	Orders   OrderRepository
	Carts    CartRepository
	Sales    SaleRepository
	Sessions CashSessionRepository
	Identity IdentityRepository

	store SlotStore
}

func NewState(store SlotStore, seed Seed) *State {
	return &State{
		Products: NewProductRepository(seed.Products),
		Tables:   NewTableRepository(seed.Tables),
		Orders:   NewOrderRepository(),
		Carts:    NewCartRepository(),
		Sales:    NewSaleRepository(),
		Sessions: NewCashSessionRepository(store),
		Identity: NewIdentityRepository(store),
		store:    store,
	}
}

// Load reads both durable slots once. Call it before serving.
func (s *State) Load(ctx context.Context) error {
	return s.Run(func() error {
		if err := s.Identity.Load(ctx); err != nil {
			return err
		}
		return s.Sessions.Load(ctx)
	})
}

// Run executes fn while holding the state lock. fn must validate before it
// mutates and write durable slots before in-memory stores, so an error
// leaves the state unchanged.
func (s *State) Run(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// Commit runs fn like Run and, when fn succeeds, calls after in commit
// order: the publish lock is taken before the state lock is released, so no
// later commit can deliver its hook first. after must not call Commit.
func (s *State) Commit(fn func() error, after func()) error {
	s.mu.Lock()
	released := false
	defer func() {
		if !released {
			s.mu.Unlock()
		}
	}()
	if err := fn(); err != nil {
		return err
	}

	s.publishMu.Lock()
	defer s.publishMu.Unlock()
	released = true
	s.mu.Unlock()

	after()
	return nil
}

// Store exposes the durable store for health checks.
func (s *State) Store() SlotStore { return s.store }
