package notepress

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the main interface for the notepress library
type Service interface {
	// Note operations
	CreateNote(ctx context.Context, req CreateNoteRequest) (*Note, error)
	GetNote(ctx context.Context, p Principal, slug string) (*Note, error)
	UpdateNote(ctx context.Context, req UpdateNoteRequest) (*Note, error)
	DeleteNote(ctx context.Context, p Principal, slug string) error
	ListNotes(ctx context.Context, p Principal) ([]*Note, error)

	// News operations (read-only; news is seeded fixture data)
	ListNews(ctx context.Context) ([]*NewsItem, error)
	GetNewsDetail(ctx context.Context, p Principal, newsID uuid.UUID) (*NewsDetail, error)

	// Comment operations
	CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error)
	UpdateComment(ctx context.Context, req UpdateCommentRequest) (*Comment, error)
	DeleteComment(ctx context.Context, p Principal, commentID uuid.UUID) (*Comment, error)
	ListComments(ctx context.Context, newsID uuid.UUID) ([]*Comment, error)
}
