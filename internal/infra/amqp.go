package infra

// amqp.go: Kitchen ticket publisher.
// Orders dispatched to the kitchen (and orders marked ready) are published as
// JSON tickets to a durable topic exchange so kitchen displays and printers
// can subscribe. Routing key: kitchen.order.<status>.<table_id>.

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/josebazania/restaurantepos/internal/model"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	amqpDialAttempts = 5
	amqpDialTimeout  = 2 * time.Second
	publishTimeout   = 5 * time.Second
	ticketBacklog    = 256
)

// KitchenTicket is the message body consumed by kitchen displays.
type KitchenTicket struct {
	OrderID string              `json:"order_id"`
	TableID string              `json:"table_id"`
	Table   int                 `json:"table_number,omitempty"`
	Status  model.OrderStatus   `json:"status"`
	Items   []KitchenTicketItem `json:"items"`
	SentAt  time.Time           `json:"sent_at"`
}

type KitchenTicketItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// KitchenPublisher owns one AMQP connection and channel. Tickets are queued
// by Notify and sent by a single goroutine in the order they were queued.
type KitchenPublisher struct {
	mu       sync.Mutex
	url      string
	exchange string
	conn     *amqp.Connection
	ch       *amqp.Channel
	cb       *CircuitBreaker

	qmu    sync.RWMutex
	closed bool
	queue  chan KitchenTicket
	done   chan struct{}
	send   func(context.Context, KitchenTicket) error
}

// NewKitchenPublisher dials the broker with linear backoff and declares the
// exchange.
func NewKitchenPublisher(url, exchange string, cb *CircuitBreaker) (*KitchenPublisher, error) {
	p := &KitchenPublisher{url: url, exchange: exchange, cb: cb}
	var err error
	for i := 0; i < amqpDialAttempts; i++ {
		if err = p.connect(); err == nil {
			p.start(p.Publish)
			return p, nil
		}
		wait := time.Duration(i+1) * time.Second
		log.Warn().Err(err).Dur("retry_in", wait).Msg("amqp: connect failed")
		time.Sleep(wait)
	}
	return nil, fmt.Errorf("amqp: connect after %d attempts: %w", amqpDialAttempts, err)
}

// start launches the sender goroutine.
func (p *KitchenPublisher) start(send func(context.Context, KitchenTicket) error) {
	p.send = send
	p.queue = make(chan KitchenTicket, ticketBacklog)
	p.done = make(chan struct{})
	go p.loop()
}

func (p *KitchenPublisher) loop() {
	defer close(p.done)
	for t := range p.queue {
		if err := p.send(context.Background(), t); err != nil {
			log.Error().Err(err).Str("order_id", t.OrderID).Msg("amqp: kitchen ticket not published")
		}
	}
}

// must hold p.mu or be called before the publisher is shared
func (p *KitchenPublisher) connect() error {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(amqpDialTimeout),
	})
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}
	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}
	p.conn, p.ch = conn, ch
	return nil
}

// Healthy reports whether the connection is up.
func (p *KitchenPublisher) Healthy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn != nil && !p.conn.IsClosed()
}

// Notify queues a ticket for order events in the kitchen statuses. Every
// other event is ignored. It never waits on the broker: when the backlog is
// full the ticket is dropped and logged, the order itself is already
// committed.
func (p *KitchenPublisher) Notify(_ context.Context, ev model.Event) {
	if ev.Kind != model.EventOrderUpserted || ev.Order == nil {
		return
	}
	if ev.Order.Status != model.OrderInKitchen && ev.Order.Status != model.OrderReady {
		return
	}
	ticket := NewKitchenTicket(*ev.Order, ev.Table)

	p.qmu.RLock()
	defer p.qmu.RUnlock()
	if p.closed {
		return
	}
	select {
	case p.queue <- ticket:
	default:
		log.Warn().Str("order_id", ticket.OrderID).Msg("amqp: kitchen backlog full, ticket dropped")
	}
}

// NewKitchenTicket builds the message for an order. table may be nil.
func NewKitchenTicket(o model.Order, table *model.Table) KitchenTicket {
	t := KitchenTicket{
		OrderID: o.ID,
		TableID: o.TableID,
		Status:  o.Status,
		Items:   make([]KitchenTicketItem, len(o.Items)),
		SentAt:  time.Now().UTC(),
	}
	if table != nil {
		t.Table = table.Number
	}
	for i, it := range o.Items {
		t.Items[i] = KitchenTicketItem{Name: it.Name, Quantity: it.Quantity, Notes: it.Notes}
	}
	return t
}

// RoutingKey is kitchen.order.<status>.<table_id>, status lowercased without
// spaces.
func (t KitchenTicket) RoutingKey() string {
	status := strings.ToLower(strings.ReplaceAll(string(t.Status), " ", "_"))
	return fmt.Sprintf("kitchen.order.%s.%s", status, t.TableID)
}

// Publish sends a ticket as a persistent JSON message.
func (p *KitchenPublisher) Publish(ctx context.Context, t KitchenTicket) error {
	body, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal ticket: %w", err)
	}
	return p.cb.Execute(func() error {
		p.mu.Lock()
		defer p.mu.Unlock()

		if p.conn == nil || p.conn.IsClosed() {
			if err := p.connect(); err != nil {
				return fmt.Errorf("reconnect: %w", err)
			}
		}

		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		return p.ch.PublishWithContext(ctx,
			p.exchange,     // exchange
			t.RoutingKey(), // routing key
			false,          // mandatory
			false,          // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Timestamp:    t.SentAt,
				MessageId:    t.OrderID,
				Body:         body,
			},
		)
	})
}

// Close drains the queued tickets and closes the connection.
func (p *KitchenPublisher) Close() error {
	p.qmu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.qmu.Unlock()
	<-p.done

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
