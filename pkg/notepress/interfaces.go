package notepress

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for note, news and comment persistence.
//
// Implementations must make slug uniqueness atomic: the uniqueness check
// and the insert/update are one unit, so two concurrent creates with the
// same slug cannot both succeed — exactly one receives *DuplicateSlugError.
type Repository interface {
	// Note operations
	CreateNote(ctx context.Context, note *Note) error
	GetNoteBySlug(ctx context.Context, slug string) (*Note, error)
	UpdateNote(ctx context.Context, note *Note) error
	DeleteNote(ctx context.Context, id uuid.UUID) error
	ListNotesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Note, error)

	// News operations
	SeedNews(ctx context.Context, items []*NewsItem) error
	GetNews(ctx context.Context, id uuid.UUID) (*NewsItem, error)
	ListNews(ctx context.Context) ([]*NewsItem, error)

	// Comment operations. CreateComment assigns Seq.
	CreateComment(ctx context.Context, comment *Comment) error
	GetComment(ctx context.Context, id uuid.UUID) (*Comment, error)
	UpdateComment(ctx context.Context, comment *Comment) error
	DeleteComment(ctx context.Context, id uuid.UUID) error
	ListCommentsByNews(ctx context.Context, newsID uuid.UUID) ([]*Comment, error)
}
