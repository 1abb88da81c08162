// Package repo implements the relational store behind the Atelier REST
// API. It is a thin persistence layer: IDs arrive from the client, rows
// are listed newest-first, and deletes of unknown IDs succeed silently.
package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/atelier-dev/atelier-store/pkg/catalog"
)

const schema = `
CREATE TABLE IF NOT EXISTS artworks (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	year        INTEGER NOT NULL DEFAULT 0,
	category    TEXT NOT NULL DEFAULT '',
	image_url   TEXT NOT NULL DEFAULT '',
	featured    INTEGER NOT NULL DEFAULT 0,
	technique   TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS books (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	subtitle     TEXT NOT NULL DEFAULT '',
	description  TEXT NOT NULL DEFAULT '',
	price        REAL NOT NULL DEFAULT 0,
	cover_url    TEXT NOT NULL DEFAULT '',
	pages        INTEGER NOT NULL DEFAULT 0,
	publish_date TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS journal_posts (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	excerpt    TEXT NOT NULL DEFAULT '',
	content    TEXT NOT NULL DEFAULT '',
	date       TEXT NOT NULL DEFAULT '',
	tags       TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
`

// Repo is a sqlite-backed catalog store.
type Repo struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Repo, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Repo{db: db}, nil
}

// Close closes the underlying database.
func (r *Repo) Close() error {
	return r.db.Close()
}

// Snapshot returns the full catalog, each collection newest-first.
func (r *Repo) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	artworks, err := r.listArtworks(ctx)
	if err != nil {
		return nil, err
	}
	books, err := r.listBooks(ctx)
	if err != nil {
		return nil, err
	}
	journal, err := r.listJournal(ctx)
	if err != nil {
		return nil, err
	}
	return &catalog.Snapshot{Artworks: artworks, Books: books, Journal: journal}, nil
}

// InsertArtwork stores art with its caller-assigned ID.
func (r *Repo) InsertArtwork(ctx context.Context, art catalog.Artwork) error {
	_, err := sq.Insert("artworks").
		Columns("id", "title", "description", "year", "category", "image_url", "featured", "technique", "created_at").
		Values(art.ID, art.Title, art.Description, art.Year, art.Category, art.ImageURL, art.Featured, art.Technique, now()).
		RunWith(r.db).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert artwork %s: %w", art.ID, err)
	}
	return nil
}

// DeleteArtwork removes the artwork row with the given ID, if any.
func (r *Repo) DeleteArtwork(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "artworks", id)
}

// InsertBook stores book with its caller-assigned ID.
func (r *Repo) InsertBook(ctx context.Context, book catalog.Book) error {
	_, err := sq.Insert("books").
		Columns("id", "title", "subtitle", "description", "price", "cover_url", "pages", "publish_date", "created_at").
		Values(book.ID, book.Title, book.Subtitle, book.Description, book.Price, book.CoverURL, book.Pages, book.PublishDate, now()).
		RunWith(r.db).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert book %s: %w", book.ID, err)
	}
	return nil
}

// DeleteBook removes the book row with the given ID, if any.
func (r *Repo) DeleteBook(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "books", id)
}

// InsertJournal stores post with its caller-assigned ID. Tags are stored
// as a comma-separated list, matching the wire shape.
func (r *Repo) InsertJournal(ctx context.Context, post catalog.JournalPost) error {
	_, err := sq.Insert("journal_posts").
		Columns("id", "title", "excerpt", "content", "date", "tags", "created_at").
		Values(post.ID, post.Title, post.Excerpt, post.Content, post.Date, joinTags(post.Tags), now()).
		RunWith(r.db).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert journal post %s: %w", post.ID, err)
	}
	return nil
}

// DeleteJournal removes the journal row with the given ID, if any.
func (r *Repo) DeleteJournal(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "journal_posts", id)
}

func (r *Repo) deleteByID(ctx context.Context, table, id string) error {
	_, err := sq.Delete(table).Where(sq.Eq{"id": id}).RunWith(r.db).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return nil
}

func (r *Repo) listArtworks(ctx context.Context) ([]catalog.Artwork, error) {
	rows, err := sq.Select("id", "title", "description", "year", "category", "image_url", "featured", "technique").
		From("artworks").
		OrderBy("created_at DESC", "rowid DESC").
		RunWith(r.db).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	defer rows.Close()

	var out []catalog.Artwork
	for rows.Next() {
		var a catalog.Artwork
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Year, &a.Category, &a.ImageURL, &a.Featured, &a.Technique); err != nil {
			return nil, fmt.Errorf("scan artwork: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) listBooks(ctx context.Context) ([]catalog.Book, error) {
	rows, err := sq.Select("id", "title", "subtitle", "description", "price", "cover_url", "pages", "publish_date").
		From("books").
		OrderBy("created_at DESC", "rowid DESC").
		RunWith(r.db).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var out []catalog.Book
	for rows.Next() {
		var b catalog.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Subtitle, &b.Description, &b.Price, &b.CoverURL, &b.Pages, &b.PublishDate); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) listJournal(ctx context.Context) ([]catalog.JournalPost, error) {
	rows, err := sq.Select("id", "title", "excerpt", "content", "date", "tags").
		From("journal_posts").
		OrderBy("created_at DESC", "rowid DESC").
		RunWith(r.db).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journal posts: %w", err)
	}
	defer rows.Close()

	var out []catalog.JournalPost
	for rows.Next() {
		var p catalog.JournalPost
		var tags string
		if err := rows.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Date, &tags); err != nil {
			return nil, fmt.Errorf("scan journal post: %w", err)
		}
		p.Tags = splitTags(tags)
		out = append(out, p)
	}
	return out, rows.Err()
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
