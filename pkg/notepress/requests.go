package notepress

import "github.com/google/uuid"

// Request DTOs

// CreateNoteRequest contains parameters for creating a note. Slug is
// optional; when empty it is derived from Title via Slugify.
type CreateNoteRequest struct {
	Author Principal
	Title  string
	Text   string
	Slug   string
}

// UpdateNoteRequest contains parameters for updating a note. Slug
// identifies the note being edited; NewSlug is the submitted slug field and
// is derived from Title when empty, same as on create.
type UpdateNoteRequest struct {
	Author  Principal
	Slug    string
	Title   string
	Text    string
	NewSlug string
}

// CreateCommentRequest contains parameters for creating a comment. Any
// authenticated principal may comment; authorship is taken from Author.
type CreateCommentRequest struct {
	Author Principal
	NewsID uuid.UUID
	Text   string
}

// UpdateCommentRequest contains parameters for editing a comment.
type UpdateCommentRequest struct {
	Author    Principal
	CommentID uuid.UUID
	Text      string
}
