package services

import (
	"sync"
)

// Session is one open push channel to a connected client. Send must be safe
// to call from multiple goroutines; Close tears the channel down and
// unblocks any pending read on it.
type Session interface {
	Send(data []byte) error
	Close() error
}

// Hub is the registry of live sessions. Add/Remove/ForEach are called from
// different goroutines (connection handlers and the score scheduler), so
// everything goes through the lock.
type Hub struct {
	mu       sync.RWMutex
	sessions map[Session]struct{}
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[Session]struct{})}
}

// Add registers a session. Adding the same session twice is a no-op.
func (h *Hub) Add(sess Session) {
	h.mu.Lock()
	h.sessions[sess] = struct{}{}
	h.mu.Unlock()
}

// Remove deregisters a session. Safe to call repeatedly or for a session
// that was never added.
func (h *Hub) Remove(sess Session) {
	h.mu.Lock()
	delete(h.sessions, sess)
	h.mu.Unlock()
}

// ForEach calls fn once per session registered at the time of the call.
// Membership is copied under the read lock first, so fn may Add or Remove
// without deadlocking, and a slow fn never blocks connection handling.
func (h *Hub) ForEach(fn func(Session)) {
	h.mu.RLock()
	sessions := make([]Session, 0, len(h.sessions))
	for sess := range h.sessions {
		sessions = append(sessions, sess)
	}
	h.mu.RUnlock()

	for _, sess := range sessions {
		fn(sess)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
