package model

import "time"

// EventKind names a state change that observers may react to.
type EventKind string

const (
	EventProductChanged  EventKind = "product.changed"
	EventProductDeleted  EventKind = "product.deleted"
	EventTableChanged    EventKind = "table.changed"
	EventOrderUpserted   EventKind = "order.upserted"
	EventOrderRemoved    EventKind = "order.removed"
	EventSaleRecorded    EventKind = "sale.recorded"
	EventSessionOpened   EventKind = "session.opened"
	EventSessionSettled  EventKind = "session.settled"
	EventSessionClosed   EventKind = "session.closed"
	EventIdentityChanged EventKind = "identity.changed"
)

// Event describes one committed change. Only the pointer matching the kind
// is set; EntityID always is.
type Event struct {
	Kind     EventKind
	EntityID string
	At       time.Time

	Product *Product
	Table   *Table
	Order   *Order
	Sale    *Sale
	Session *CashSession
	User    *User
}
