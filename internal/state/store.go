// Package state implements the client-side reconciliation core: the
// in-memory application state that is mutated optimistically and kept
// consistent with the remote persistence service in the background.
package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/atelier-dev/atelier-store/pkg/catalog"
)

// DefaultNotificationTTL is how long a notification stays visible unless
// dismissed earlier.
const DefaultNotificationTTL = 5 * time.Second

// initialGreeting opens the chat transcript at startup.
const initialGreeting = "Welcome back. I am your studio strategy assistant. " +
	"Ask me about the collection, market activity, or ideas for the journal."

// Options configures a Store. The zero value is usable: no remote (the
// session stays on seed data), no style surface, default notification TTL
// and a disabled logger.
type Options struct {
	Remote          Remote
	Surface         StyleSurface
	Logger          *zerolog.Logger
	NotificationTTL time.Duration
}

// Store owns all client-side application state. It is created once by the
// composition root and passed by reference to consumers; there is no
// ambient singleton.
//
// Mutating operations apply synchronously under the store's lock. Remote
// create/delete calls run in detached goroutines tracked by a WaitGroup;
// their outcome never re-enters the synchronous path.
type Store struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	remote Remote

	surface StyleSurface
	logger  zerolog.Logger
	ttl     time.Duration

	artworks []catalog.Artwork
	books    []catalog.Book
	journal  []catalog.JournalPost

	logs []catalog.LogEntry

	cart     []catalog.CartLine
	cartOpen bool

	notifications []catalog.Notification
	timers        map[string]*time.Timer

	chat []catalog.ChatMessage

	language catalog.Language
	theme    catalog.Theme
}

// New creates a store pre-populated with seed. The seed slices are copied;
// the caller keeps ownership of its snapshot.
func New(seed catalog.Snapshot, opts Options) *Store {
	if opts.NotificationTTL <= 0 {
		opts.NotificationTTL = DefaultNotificationTTL
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	s := &Store{
		remote:   opts.Remote,
		surface:  opts.Surface,
		logger:   logger,
		ttl:      opts.NotificationTTL,
		artworks: append([]catalog.Artwork(nil), seed.Artworks...),
		books:    append([]catalog.Book(nil), seed.Books...),
		journal:  append([]catalog.JournalPost(nil), seed.Journal...),
		logs: []catalog.LogEntry{
			{ID: "1", Action: "System Initialized", Timestamp: time.Now()},
		},
		timers: make(map[string]*time.Timer),
		chat: []catalog.ChatMessage{
			{ID: "init", Role: catalog.RoleAI, Content: initialGreeting, Timestamp: time.Now()},
		},
		language: catalog.DefaultLanguage,
		theme:    catalog.DefaultTheme,
	}

	s.applyTheme(s.theme)
	return s
}

// Wait blocks until all in-flight remote calls have completed. Intended
// for shutdown and tests.
func (s *Store) Wait() {
	s.wg.Wait()
}

// AddLog prepends an audit entry with a fresh ID and the current time.
// The log grows without bound; it is a session-scoped trail, not storage.
func (s *Store) AddLog(action string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLogLocked(action)
}

// addLogLocked must be called with s.mu held.
func (s *Store) addLogLocked(action string) {
	entry := catalog.LogEntry{
		ID:        uuid.NewString(),
		Action:    action,
		Timestamp: time.Now(),
	}
	s.logs = append([]catalog.LogEntry{entry}, s.logs...)
}

// --- Read-only snapshots ---
// Accessors return copies so callers can never mutate store-owned slices.

func (s *Store) Artworks() []catalog.Artwork {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Artwork(nil), s.artworks...)
}

func (s *Store) Books() []catalog.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Book(nil), s.books...)
}

func (s *Store) Journal() []catalog.JournalPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.JournalPost(nil), s.journal...)
}

func (s *Store) Logs() []catalog.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.LogEntry(nil), s.logs...)
}

func (s *Store) Notifications() []catalog.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Notification(nil), s.notifications...)
}

func (s *Store) Chat() []catalog.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.ChatMessage(nil), s.chat...)
}
