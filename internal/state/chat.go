package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelier-dev/atelier-store/pkg/catalog"
)

// AddChatMessage appends a message to the transcript. Unlike the log and
// the collections, the transcript reads oldest-first, so new messages go
// to the end.
func (s *Store) AddChatMessage(role catalog.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chat = append(s.chat, catalog.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// ClearChat empties the transcript. The initial greeting is not re-seeded.
func (s *Store) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = nil
}
