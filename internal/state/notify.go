package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelier-dev/atelier-store/pkg/catalog"
)

// Notify queues a user-facing message and schedules its expiry. Every
// notification gets its own timer; multiple notifications coexist and
// expire independently.
func (s *Store) Notify(message string, severity catalog.Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifyLocked(message, severity)
}

// notifyLocked must be called with s.mu held.
func (s *Store) notifyLocked(message string, severity catalog.Severity) {
	id := uuid.NewString()
	s.notifications = append(s.notifications, catalog.Notification{
		ID:       id,
		Message:  message,
		Severity: severity,
	})
	s.timers[id] = time.AfterFunc(s.ttl, func() {
		s.RemoveNotification(id)
	})
}

// RemoveNotification dismisses a notification by ID and cancels its
// expiry timer. It is the shared removal path for explicit dismissal and
// scheduled expiry, so an absent ID is a no-op.
func (s *Store) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}

	out := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			out = append(out, n)
		}
	}
	s.notifications = out
}
