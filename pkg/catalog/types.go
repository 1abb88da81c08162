// Package catalog defines universal data structures used across the Atelier platform.
package catalog

import "time"

// Kind identifies one of the three catalog collections.
type Kind string

const (
	KindArtwork Kind = "artwork"
	KindBook    Kind = "book"
	KindJournal Kind = "journal"
)

// Item is implemented by every catalog entity. IDs are assigned by the
// caller at creation time; the server never generates them.
type Item interface {
	ItemID() string
	DisplayTitle() string
}

// Artwork is a single gallery piece.
type Artwork struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Featured    bool   `json:"featured"`
	Technique   string `json:"technique"`
}

func (a Artwork) ItemID() string       { return a.ID }
func (a Artwork) DisplayTitle() string { return a.Title }

// Book is a purchasable publication.
type Book struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CoverURL    string  `json:"coverUrl"`
	Pages       int     `json:"pages"`
	PublishDate string  `json:"publishDate"`
}

func (b Book) ItemID() string       { return b.ID }
func (b Book) DisplayTitle() string { return b.Title }

// JournalPost is a long-form journal entry.
type JournalPost struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags"`
}

func (p JournalPost) ItemID() string       { return p.ID }
func (p JournalPost) DisplayTitle() string { return p.Title }

// Snapshot is the full catalog as served by the sync endpoint.
type Snapshot struct {
	Artworks []Artwork     `json:"artworks"`
	Books    []Book        `json:"books"`
	Journal  []JournalPost `json:"journal"`
}

// CartLine binds a book to a quantity. The cart holds at most one line
// per book ID.
type CartLine struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

// LogEntry is an audit record of a completed mutating action.
type LogEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// Severity tags a notification for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is an ephemeral user-facing message. It self-expires a
// fixed interval after creation unless dismissed first.
type Notification struct {
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// ChatMessage is one entry in the conversational transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
