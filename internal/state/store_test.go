package state_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-dev/atelier-store/internal/state"
	"github.com/atelier-dev/atelier-store/pkg/catalog"
)

// fakeRemote implements state.Remote for tests. It records every call and
// can be told to fail creates, deletes or the snapshot fetch.
type fakeRemote struct {
	mu       sync.Mutex
	created  []string
	deleted  []string
	snapshot *catalog.Snapshot

	failCreate   bool
	failDelete   bool
	failSnapshot bool
}

func (f *fakeRemote) FetchSnapshot(ctx context.Context) (*catalog.Snapshot, error) {
	if f.failSnapshot {
		return nil, errors.New("connection refused")
	}
	return f.snapshot, nil
}

func (f *fakeRemote) CreateItem(ctx context.Context, kind catalog.Kind, item catalog.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errors.New("insert failed")
	}
	f.created = append(f.created, string(kind)+":"+item.ItemID())
	return nil
}

func (f *fakeRemote) DeleteItem(ctx context.Context, kind catalog.Kind, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete {
		return errors.New("delete failed")
	}
	f.deleted = append(f.deleted, string(kind)+":"+id)
	return nil
}

func (f *fakeRemote) calls() (created, deleted []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.created...), append([]string(nil), f.deleted...)
}

func testSeed() catalog.Snapshot {
	return catalog.Snapshot{
		Artworks: []catalog.Artwork{{ID: "a1", Title: "Dawn"}},
		Books:    []catalog.Book{{ID: "b1", Title: "Anatomy", Price: 20}},
		Journal:  []catalog.JournalPost{{ID: "j1", Title: "First Post"}},
	}
}

func newTestStore(remote state.Remote) *state.Store {
	return state.New(testSeed(), state.Options{
		Remote:          remote,
		NotificationTTL: time.Minute, // keep notifications alive for assertions
	})
}

func TestAddRemove_Ordering(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(remote)

	s.AddArtwork(catalog.Artwork{ID: "a2", Title: "Noon"})
	s.AddArtwork(catalog.Artwork{ID: "a3", Title: "Dusk"})

	got := s.Artworks()
	require.Len(t, got, 3)
	assert.Equal(t, "a3", got[0].ID, "newest first")
	assert.Equal(t, "a2", got[1].ID)
	assert.Equal(t, "a1", got[2].ID)

	s.RemoveArtwork("a2")

	got = s.Artworks()
	require.Len(t, got, 2)
	assert.Equal(t, "a3", got[0].ID)
	assert.Equal(t, "a1", got[1].ID)

	s.Wait()
	created, deleted := remote.calls()
	assert.ElementsMatch(t, []string{"artwork:a2", "artwork:a3"}, created)
	assert.Equal(t, []string{"artwork:a2"}, deleted)
}

func TestAdd_AppendsOneLogEntry(t *testing.T) {
	s := newTestStore(&fakeRemote{})

	before := len(s.Logs())
	s.AddArtwork(catalog.Artwork{ID: "a9", Title: "Ninth Gate"})

	logs := s.Logs()
	require.Len(t, logs, before+1)
	assert.Equal(t, "Added new artwork: Ninth Gate", logs[0].Action)

	s.AddBook(catalog.Book{ID: "b9", Title: "Ninth Volume"})
	assert.Equal(t, "Added new book: Ninth Volume", s.Logs()[0].Action)

	s.AddJournal(catalog.JournalPost{ID: "j9", Title: "Ninth Entry"})
	assert.Equal(t, "Published journal post: Ninth Entry", s.Logs()[0].Action)
	s.Wait()
}

func TestRemove_LogsTitleCapturedBeforeRemoval(t *testing.T) {
	s := newTestStore(&fakeRemote{})

	s.RemoveBook("b1")
	assert.Equal(t, "Removed book: Anatomy", s.Logs()[0].Action)

	s.RemoveJournal("j1")
	assert.Equal(t, "Removed journal post: First Post", s.Logs()[0].Action)
	s.Wait()
}

func TestRemove_AbsentID_NoOp(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(remote)

	before := len(s.Logs())
	s.RemoveArtwork("missing")
	s.RemoveArtwork("missing") // idempotent
	s.Wait()

	assert.Len(t, s.Artworks(), 1)
	assert.Len(t, s.Logs(), before, "absent-ID remove must not log")
	_, deleted := remote.calls()
	assert.Empty(t, deleted, "absent-ID remove must not reach the remote")
}

func TestAdd_CreateFailure_KeepsLocalStateAndNotifies(t *testing.T) {
	s := newTestStore(&fakeRemote{failCreate: true})

	s.AddArtwork(catalog.Artwork{ID: "ax", Title: "X"})
	s.Wait()

	got := s.Artworks()
	require.Len(t, got, 2)
	assert.Equal(t, "ax", got[0].ID, "no rollback on remote failure")

	notes := s.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, catalog.SeverityError, notes[0].Severity)
	assert.Contains(t, notes[0].Message, "Failed to save artwork")

	assert.Equal(t, "Added new artwork: X", s.Logs()[0].Action)
}

func TestRemove_DeleteFailure_Silent(t *testing.T) {
	s := newTestStore(&fakeRemote{failDelete: true})

	s.RemoveArtwork("a1")
	s.Wait()

	assert.Empty(t, s.Artworks())
	assert.Empty(t, s.Notifications(), "delete failures never notify the user")
	assert.Equal(t, "Removed artwork: Dawn", s.Logs()[0].Action)
}

func TestLogs_PrependNewestFirstWithUniqueIDs(t *testing.T) {
	s := newTestStore(&fakeRemote{})

	s.AddLog("first")
	s.AddLog("second")

	logs := s.Logs()
	require.GreaterOrEqual(t, len(logs), 3)
	assert.Equal(t, "second", logs[0].Action)
	assert.Equal(t, "first", logs[1].Action)
	assert.Equal(t, "System Initialized", logs[len(logs)-1].Action)

	seen := map[string]bool{}
	for _, entry := range logs {
		assert.False(t, seen[entry.ID], "duplicate log ID %s", entry.ID)
		seen[entry.ID] = true
		assert.False(t, entry.Timestamp.IsZero())
	}
}

func TestSnapshotAccessors_ReturnCopies(t *testing.T) {
	s := newTestStore(&fakeRemote{})

	arts := s.Artworks()
	arts[0].Title = strings.ToUpper(arts[0].Title)

	assert.Equal(t, "Dawn", s.Artworks()[0].Title, "caller mutation must not leak into the store")
}

func TestBootstrap_ReplacesSeedOnSuccess(t *testing.T) {
	remote := &fakeRemote{snapshot: &catalog.Snapshot{
		Artworks: []catalog.Artwork{{ID: "srv-a", Title: "Server Art"}},
		Books:    []catalog.Book{{ID: "srv-b", Title: "Server Book", Price: 10}},
		Journal:  []catalog.JournalPost{{ID: "srv-j", Title: "Server Post"}},
	}}
	s := newTestStore(remote)

	require.NoError(t, s.Bootstrap(context.Background()))

	// Replace, not merge: seed entries are gone.
	require.Len(t, s.Artworks(), 1)
	assert.Equal(t, "srv-a", s.Artworks()[0].ID)
	require.Len(t, s.Books(), 1)
	assert.Equal(t, "srv-b", s.Books()[0].ID)
	require.Len(t, s.Journal(), 1)
	assert.Equal(t, "srv-j", s.Journal()[0].ID)
}

func TestBootstrap_FailureKeepsSeed(t *testing.T) {
	s := newTestStore(&fakeRemote{failSnapshot: true})

	err := s.Bootstrap(context.Background())
	require.Error(t, err)

	seed := testSeed()
	assert.Equal(t, seed.Artworks, s.Artworks())
	assert.Equal(t, seed.Books, s.Books())
	assert.Equal(t, seed.Journal, s.Journal())
}

func TestBootstrap_WithoutRemote(t *testing.T) {
	s := state.New(testSeed(), state.Options{})

	require.NoError(t, s.Bootstrap(context.Background()))
	assert.Len(t, s.Artworks(), 1)
}
