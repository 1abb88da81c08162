package state

import (
	"context"

	"github.com/atelier-dev/atelier-store/pkg/catalog"
)

// The three collections share one contract: add prepends the item locally,
// logs the action and dispatches the remote create in the background;
// remove is a no-op for an absent ID, otherwise it drops the item, logs
// with the title captured before removal and dispatches the remote delete.
// Neither operation ever rolls the local mutation back.

// AddArtwork prepends art and persists it in the background. A failed
// remote create surfaces as an error notification; the artwork stays.
func (s *Store) AddArtwork(art catalog.Artwork) {
	s.mu.Lock()
	s.artworks = append([]catalog.Artwork{art}, s.artworks...)
	s.addLogLocked("Added new artwork: " + art.Title)
	s.mu.Unlock()

	s.dispatchCreate(catalog.KindArtwork, art, "Failed to save artwork to database")
}

// RemoveArtwork removes the artwork with the given ID, if present.
func (s *Store) RemoveArtwork(id string) {
	s.mu.Lock()
	art, ok := findByID(s.artworks, id)
	if !ok {
		s.mu.Unlock()
		return
	}
	s.artworks = dropByID(s.artworks, id)
	s.addLogLocked("Removed artwork: " + art.Title)
	s.mu.Unlock()

	s.dispatchDelete(catalog.KindArtwork, id)
}

// AddBook prepends book and persists it in the background.
func (s *Store) AddBook(book catalog.Book) {
	s.mu.Lock()
	s.books = append([]catalog.Book{book}, s.books...)
	s.addLogLocked("Added new book: " + book.Title)
	s.mu.Unlock()

	s.dispatchCreate(catalog.KindBook, book, "Failed to save book to database")
}

// RemoveBook removes the book with the given ID, if present.
func (s *Store) RemoveBook(id string) {
	s.mu.Lock()
	book, ok := findByID(s.books, id)
	if !ok {
		s.mu.Unlock()
		return
	}
	s.books = dropByID(s.books, id)
	s.addLogLocked("Removed book: " + book.Title)
	s.mu.Unlock()

	s.dispatchDelete(catalog.KindBook, id)
}

// AddJournal prepends post and persists it in the background.
func (s *Store) AddJournal(post catalog.JournalPost) {
	s.mu.Lock()
	s.journal = append([]catalog.JournalPost{post}, s.journal...)
	s.addLogLocked("Published journal post: " + post.Title)
	s.mu.Unlock()

	s.dispatchCreate(catalog.KindJournal, post, "Failed to save journal post to database")
}

// RemoveJournal removes the journal post with the given ID, if present.
func (s *Store) RemoveJournal(id string) {
	s.mu.Lock()
	post, ok := findByID(s.journal, id)
	if !ok {
		s.mu.Unlock()
		return
	}
	s.journal = dropByID(s.journal, id)
	s.addLogLocked("Removed journal post: " + post.Title)
	s.mu.Unlock()

	s.dispatchDelete(catalog.KindJournal, id)
}

// Bootstrap runs the one-shot startup reconciliation. On success the
// remote snapshot replaces all three collections; on failure the seed
// data stays untouched and the session continues offline. There is no
// retry either way.
func (s *Store) Bootstrap(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}

	snap, err := s.remote.FetchSnapshot(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("sync failed, keeping seed data")
		return err
	}

	s.mu.Lock()
	s.artworks = append([]catalog.Artwork(nil), snap.Artworks...)
	s.books = append([]catalog.Book(nil), snap.Books...)
	s.journal = append([]catalog.JournalPost(nil), snap.Journal...)
	s.mu.Unlock()

	s.logger.Info().
		Int("artworks", len(snap.Artworks)).
		Int("books", len(snap.Books)).
		Int("journal", len(snap.Journal)).
		Msg("snapshot applied")
	return nil
}

// dispatchCreate runs the remote create in the background. On failure the
// local state is kept and the user is notified.
func (s *Store) dispatchCreate(kind catalog.Kind, item catalog.Item, failMsg string) {
	if s.remote == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.remote.CreateItem(context.Background(), kind, item); err != nil {
			s.logger.Error().Err(err).
				Str("kind", string(kind)).
				Str("id", item.ItemID()).
				Msg("remote create failed")
			s.Notify(failMsg, catalog.SeverityError)
		}
	}()
}

// dispatchDelete runs the remote delete in the background. Failures are
// diagnostic-only: the item is already gone locally.
func (s *Store) dispatchDelete(kind catalog.Kind, id string) {
	if s.remote == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.remote.DeleteItem(context.Background(), kind, id); err != nil {
			s.logger.Error().Err(err).
				Str("kind", string(kind)).
				Str("id", id).
				Msg("remote delete failed")
		}
	}()
}

func findByID[T catalog.Item](items []T, id string) (T, bool) {
	for _, it := range items {
		if it.ItemID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func dropByID[T catalog.Item](items []T, id string) []T {
	out := items[:0]
	for _, it := range items {
		if it.ItemID() != id {
			out = append(out, it)
		}
	}
	return out
}
