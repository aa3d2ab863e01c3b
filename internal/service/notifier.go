package service

import (
	"context"
	"time"

	"github.com/josebazania/restaurantepos/internal/model"

	"github.com/rs/zerolog/log"
)

// Observer receives committed state changes, one commit at a time and in
// commit order. Notify is called after the state lock is released; it must
// return quickly and must not call back into the services synchronously.
type Observer interface {
	Notify(ctx context.Context, ev model.Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, ev model.Event)

func (f ObserverFunc) Notify(ctx context.Context, ev model.Event) { f(ctx, ev) }

// Notifier fans events out to every registered observer in order.
type Notifier struct {
	observers []Observer
}

func NewNotifier(observers ...Observer) *Notifier {
	return &Notifier{observers: observers}
}

// Subscribe adds an observer. Call before serving; not safe concurrently
// with Publish.
func (n *Notifier) Subscribe(o Observer) { n.observers = append(n.observers, o) }

// Publish stamps and delivers the events. A nil Notifier drops them.
func (n *Notifier) Publish(ctx context.Context, events ...model.Event) {
	if n == nil {
		return
	}
	now := time.Now()
	for _, ev := range events {
		if ev.At.IsZero() {
			ev.At = now
		}
		for _, o := range n.observers {
			o.Notify(ctx, ev)
		}
	}
}

// LogObserver writes every event to the global zerolog logger.
func LogObserver() Observer {
	return ObserverFunc(func(_ context.Context, ev model.Event) {
		log.Info().
			Str("event", string(ev.Kind)).
			Str("entity_id", ev.EntityID).
			Time("at", ev.At).
			Msg("state change")
	})
}
