package sse

import "sync"

// Event is one change notification pushed to subscribers: an event
// name ("shift.created", "employee.updated", ...) and a JSON-ready
// payload.
type Event struct {
	Event string
	Data  interface{}
}

// Hub fans shop-wide change events out to every connected subscriber.
// The shop is a single tenant, so there is no per-user routing; each
// subscriber sees the same stream of roster and shift snapshots.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber and returns its event channel plus
// a cleanup function. Cleanup closes the channel and must be called
// exactly once.
func (h *Hub) Subscribe() (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)
	h.subscribers[ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
	}

	return ch, cleanup
}

// Publish sends the event to all subscribers. Slow subscribers with a
// full channel are skipped rather than blocking the publisher.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
