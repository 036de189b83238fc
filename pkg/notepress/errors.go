package notepress

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ModerationWarning is the single user-facing message attached to every
// moderation rejection, independent of which banned term matched.
const ModerationWarning = "Mind your language!"

// Error types
var (
	// ErrNoteNotFound indicates a note was not found, or that the caller
	// is not allowed to know whether it exists
	ErrNoteNotFound = errors.New("note not found")

	// ErrNewsNotFound indicates a news item was not found
	ErrNewsNotFound = errors.New("news item not found")

	// ErrCommentNotFound indicates a comment was not found, or that the
	// caller is not allowed to know whether it exists
	ErrCommentNotFound = errors.New("comment not found")

	// ErrUnauthenticated indicates an anonymous caller attempted a
	// privileged action
	ErrUnauthenticated = errors.New("authentication required")

	// ErrDuplicateSlug indicates a slug collision on note create/update
	ErrDuplicateSlug = errors.New("duplicate slug")

	// ErrModerationRejected indicates comment text contains a banned term
	ErrModerationRejected = errors.New(ModerationWarning)
)

// DuplicateSlugError reports a slug collision. Its message is the
// form-level warning shown to the user.
type DuplicateSlugError struct {
	Slug string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("%s - already exists, pick another value", e.Slug)
}

func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}

// NoteError represents an error related to note operations
type NoteError struct {
	Slug string
	Op   string
	Err  error
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("note operation %s failed for slug %q: %v", e.Op, e.Slug, e.Err)
}

func (e *NoteError) Unwrap() error {
	return e.Err
}

// CommentError represents an error related to comment operations
type CommentError struct {
	CommentID uuid.UUID
	Op        string
	Err       error
}

func (e *CommentError) Error() string {
	return fmt.Sprintf("comment operation %s failed for comment %s: %v", e.Op, e.CommentID, e.Err)
}

func (e *CommentError) Unwrap() error {
	return e.Err
}
