package notepress

import (
	"time"

	"github.com/google/uuid"
)

// Action is the domain type for operations checked by the ownership guard.
type Action string

// Action constants (typed).
const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Principal identifies the caller of a single request. The zero value is
// the anonymous principal.
type Principal struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// Anonymous returns the principal used for unauthenticated requests.
func Anonymous() Principal { return Principal{} }

// IsAnonymous reports whether the principal carries no identity.
func (p Principal) IsAnonymous() bool { return p.ID == uuid.Nil }

// Note is a private content item. OwnerID is immutable after creation and
// Slug is unique across all notes.
type Note struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewsItem is a public content item. News is seeded read-only fixture data;
// the service never mutates it.
type NewsItem struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Text  string    `json:"text"`
	Date  time.Time `json:"date"`
}

// Comment is attached to exactly one NewsItem. Seq records insertion order
// and breaks ties when two comments share a creation timestamp (timestamps
// may be stored at second granularity).
type Comment struct {
	ID       uuid.UUID `json:"id"`
	NewsID   uuid.UUID `json:"news_id"`
	AuthorID uuid.UUID `json:"author_id"`
	Text     string    `json:"text"`
	Created  time.Time `json:"created"`
	Seq      uint64    `json:"-"`
}

// NewsDetail is the detail view for a news item: the item itself, its
// comments in thread order, and whether the caller may submit a comment.
type NewsDetail struct {
	News       *NewsItem  `json:"news"`
	Comments   []*Comment `json:"comments"`
	CanComment bool       `json:"can_comment"`
}
