package feed

import (
	"sync"
	"time"
)

// EventKind classifies a change announcement.
type EventKind string

const (
	LotPriceChanged      EventKind = "lot_price_changed"
	NotificationCreated  EventKind = "notification_created"
	AuctionStatusChanged EventKind = "auction_status_changed"
)

// Event is an outbound "state changed, re-read" signal. It carries enough to
// route interest, not the full record; viewers re-read through the API.
type Event struct {
	Kind      EventKind `json:"kind"`
	AuctionID string    `json:"auction_id,omitempty"`
	ItemID    string    `json:"item_id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	At        time.Time `json:"at"`
}

// Subscription is one listener's buffered event channel.
type Subscription struct {
	ch chan Event
}

// Events returns the receive side of the subscription.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Hub fans events out to subscribers. Slow subscribers drop events rather
// than block a broadcast; delivery is best-effort.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers a listener with the given channel buffer.
func (h *Hub) Subscribe(buffer int) *Subscription {
	sub := &Subscription{ch: make(chan Event, buffer)}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Unsubscribe removes a listener and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.ch)
	}
	h.mu.Unlock()
}

// Broadcast delivers an event to every subscriber that has buffer room.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		select {
		case sub.ch <- event:
		default:
		}
	}
}
