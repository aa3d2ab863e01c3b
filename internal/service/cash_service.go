package service

import (
	"context"
	"time"

	"github.com/josebazania/restaurantepos/internal/model"
	"github.com/josebazania/restaurantepos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CashService interface {
	// Open starts a session for user. Only one session may be open.
	Open(ctx context.Context, user model.User, opening decimal.Decimal) (model.CashSession, error)
	Current(ctx context.Context) (model.CashSession, error)
	// Close ends the session and reports the variance against counted cash.
	// The report is not persisted.
	Close(ctx context.Context, counted decimal.Decimal) (model.CloseReport, error)
}

type cashService struct {
	st     *repository.State
	events *Notifier
	now    func() time.Time
}

func NewCashService(st *repository.State, events *Notifier) CashService {
	return &cashService{st: st, events: events, now: time.Now}
}

func (s *cashService) Open(ctx context.Context, user model.User, opening decimal.Decimal) (model.CashSession, error) {
	var sess model.CashSession
	publish := func() {
		s.events.Publish(ctx, model.Event{Kind: model.EventSessionOpened, EntityID: sess.ID, Session: &sess})
	}
	err := s.st.Commit(func() error {
		if _, ok := s.st.Sessions.Active(); ok {
			return model.ErrSessionAlreadyOpen
		}
		created, err := model.NewCashSession(uuid.NewString(), opening, user, s.now())
		if err != nil {
			return err
		}
		if err := s.st.Sessions.Save(ctx, *created); err != nil {
			return err
		}
		sess = *created
		return nil
	}, publish)
	if err != nil {
		return model.CashSession{}, err
	}
	return sess, nil
}

func (s *cashService) Current(_ context.Context) (model.CashSession, error) {
	var (
		sess model.CashSession
		ok   bool
	)
	_ = s.st.Run(func() error {
		sess, ok = s.st.Sessions.Active()
		return nil
	})
	if !ok {
		return model.CashSession{}, model.ErrNoOpenSession
	}
	return sess, nil
}

func (s *cashService) Close(ctx context.Context, counted decimal.Decimal) (model.CloseReport, error) {
	if counted.IsNegative() {
		return model.CloseReport{}, model.ErrNegativeAmount
	}
	var report model.CloseReport
	publish := func() {
		sess := report.Session
		s.events.Publish(ctx, model.Event{Kind: model.EventSessionClosed, EntityID: sess.ID, Session: &sess})
	}
	err := s.st.Commit(func() error {
		sess, ok := s.st.Sessions.Active()
		if !ok {
			return model.ErrNoOpenSession
		}
		if err := s.st.Sessions.Clear(ctx); err != nil {
			return err
		}
		closedAt := s.now()
		sess.Status = model.SessionClosed
		sess.ClosedAt = &closedAt
		report = model.BuildCloseReport(sess, counted)
		return nil
	}, publish)
	if err != nil {
		return model.CloseReport{}, err
	}
	return report, nil
}

// settle credits amount to the open session and persists it. Must run under
// the state lock; on error nothing is written.
func settle(ctx context.Context, st *repository.State, amount decimal.Decimal) (model.CashSession, error) {
	sess, ok := st.Sessions.Active()
	if !ok {
		return model.CashSession{}, model.ErrNoOpenSession
	}
	if err := sess.Settle(amount); err != nil {
		return model.CashSession{}, err
	}
	if err := st.Sessions.Save(ctx, sess); err != nil {
		return model.CashSession{}, err
	}
	return sess, nil
}
