package infrastructure

import (
	"sync"

	"novabot/domain/events"

	log "github.com/sirupsen/logrus"
)

// Subscriber handles a domain event after the transaction that produced it
// has committed. Handlers must not assume ordering between users.
type Subscriber func(event events.Event)

// EventDispatcher fans committed events out to registered subscribers.
type EventDispatcher struct {
	mu          sync.RWMutex
	subscribers map[events.EventType][]Subscriber
}

// NewEventDispatcher creates an empty dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		subscribers: make(map[events.EventType][]Subscriber),
	}
}

// Subscribe registers a handler for an event type.
func (d *EventDispatcher) Subscribe(eventType events.EventType, sub Subscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers[eventType] = append(d.subscribers[eventType], sub)
}

// Dispatch delivers an event to all subscribers for its type.
func (d *EventDispatcher) Dispatch(event events.Event) {
	d.mu.RLock()
	subs := d.subscribers[event.Type()]
	d.mu.RUnlock()

	for _, sub := range subs {
		sub(event)
	}
}

// TransactionalPublisher buffers events published during a transaction and
// hands them to the dispatcher only after the transaction commits. Rolled
// back transactions leave no trace: their events are discarded.
type TransactionalPublisher struct {
	dispatcher *EventDispatcher
	pending    []events.Event
}

// NewTransactionalPublisher creates a publisher bound to a dispatcher. One
// publisher serves one unit of work; it is not safe for concurrent use.
func NewTransactionalPublisher(dispatcher *EventDispatcher) *TransactionalPublisher {
	return &TransactionalPublisher{dispatcher: dispatcher}
}

// Publish buffers an event for delivery after commit.
func (p *TransactionalPublisher) Publish(event events.Event) {
	p.pending = append(p.pending, event)
}

// Flush delivers all buffered events. Delivery is best effort: the database
// transaction has already committed, so a failing handler must not unwind
// the bookkeeping.
func (p *TransactionalPublisher) Flush() {
	for _, event := range p.pending {
		p.dispatcher.Dispatch(event)
	}
	if len(p.pending) > 0 {
		log.WithField("count", len(p.pending)).Debug("Flushed domain events")
	}
	p.pending = nil
}

// Discard drops all buffered events.
func (p *TransactionalPublisher) Discard() {
	p.pending = nil
}
