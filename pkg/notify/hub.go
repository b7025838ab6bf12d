package notify

import (
	"slices"
	"sync"
)

// Hub fans published messages out to every attached subscriber.
// All methods are safe for concurrent use.
type Hub struct {
	mu   sync.Mutex
	subs []*Subscriber
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Attach registers sub for future publishes. Attaching an already attached
// subscriber is a no-op, so the subscriber set stays duplicate free.
func (h *Hub) Attach(sub *Subscriber) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.subs {
		if s.id == sub.id {
			return
		}
	}
	h.subs = append(h.subs, sub)
}

// Detach removes sub from the hub. Detaching a subscriber that is not
// attached is a no-op.
func (h *Hub) Detach(sub *Subscriber) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.subs {
		if s.id == sub.id {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers message to every attached subscriber, once each, in
// attachment order. Delivery completes before Publish returns.
func (h *Hub) Publish(message string) {
	h.mu.Lock()
	subs := slices.Clone(h.subs)
	h.mu.Unlock()

	for _, s := range subs {
		s.Notify(message)
	}
}

// Len reports the number of attached subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
