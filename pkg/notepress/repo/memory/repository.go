package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/osliken/notepress/pkg/notepress"
)

// Repository implements notepress.Repository using in-memory storage.
//
// A single RWMutex guards all tables. Slug uniqueness is checked and the
// note inserted under the same write lock, so concurrent creates with the
// same slug serialize and exactly one fails.
type Repository struct {
	mu             sync.RWMutex
	notes          map[uuid.UUID]*notepress.Note
	notesBySlug    map[string]uuid.UUID
	news           map[uuid.UUID]*notepress.NewsItem
	comments       map[uuid.UUID]*notepress.Comment
	commentsByNews map[uuid.UUID][]uuid.UUID // news_id -> []comment_id in insertion order
	commentSeq     uint64
}

// New creates a new in-memory repository
func New() notepress.Repository {
	return &Repository{
		notes:          make(map[uuid.UUID]*notepress.Note),
		notesBySlug:    make(map[string]uuid.UUID),
		news:           make(map[uuid.UUID]*notepress.NewsItem),
		comments:       make(map[uuid.UUID]*notepress.Comment),
		commentsByNews: make(map[uuid.UUID][]uuid.UUID),
	}
}

// Note operations

func (r *Repository) CreateNote(ctx context.Context, note *notepress.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.notesBySlug[note.Slug]; taken {
		return &notepress.DuplicateSlugError{Slug: note.Slug}
	}

	// Store a copy to avoid external modifications
	noteCopy := *note
	r.notes[note.ID] = &noteCopy
	r.notesBySlug[note.Slug] = note.ID

	return nil
}

func (r *Repository) GetNoteBySlug(ctx context.Context, slug string) (*notepress.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.notesBySlug[slug]
	if !exists {
		return nil, notepress.ErrNoteNotFound
	}

	noteCopy := *r.notes[id]
	return &noteCopy, nil
}

func (r *Repository) UpdateNote(ctx context.Context, note *notepress.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.notes[note.ID]
	if !exists {
		return notepress.ErrNoteNotFound
	}

	if note.Slug != existing.Slug {
		if _, taken := r.notesBySlug[note.Slug]; taken {
			return &notepress.DuplicateSlugError{Slug: note.Slug}
		}
		delete(r.notesBySlug, existing.Slug)
		r.notesBySlug[note.Slug] = note.ID
	}

	noteCopy := *note
	// Owner and creation time are immutable after creation.
	noteCopy.OwnerID = existing.OwnerID
	noteCopy.CreatedAt = existing.CreatedAt
	r.notes[note.ID] = &noteCopy

	return nil
}

func (r *Repository) DeleteNote(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, exists := r.notes[id]
	if !exists {
		return notepress.ErrNoteNotFound
	}

	delete(r.notesBySlug, note.Slug)
	delete(r.notes, id)
	return nil
}

func (r *Repository) ListNotesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*notepress.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*notepress.Note, 0)
	for _, note := range r.notes {
		if note.OwnerID == ownerID {
			noteCopy := *note
			result = append(result, &noteCopy)
		}
	}

	return result, nil
}

// News operations

func (r *Repository) SeedNews(ctx context.Context, items []*notepress.NewsItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		itemCopy := *item
		r.news[item.ID] = &itemCopy
	}
	return nil
}

func (r *Repository) GetNews(ctx context.Context, id uuid.UUID) (*notepress.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.news[id]
	if !exists {
		return nil, notepress.ErrNewsNotFound
	}

	itemCopy := *item
	return &itemCopy, nil
}

func (r *Repository) ListNews(ctx context.Context) ([]*notepress.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*notepress.NewsItem, 0, len(r.news))
	for _, item := range r.news {
		itemCopy := *item
		result = append(result, &itemCopy)
	}

	return result, nil
}

// Comment operations

func (r *Repository) CreateComment(ctx context.Context, comment *notepress.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.news[comment.NewsID]; !exists {
		return notepress.ErrNewsNotFound
	}

	r.commentSeq++
	comment.Seq = r.commentSeq

	commentCopy := *comment
	r.comments[comment.ID] = &commentCopy
	r.commentsByNews[comment.NewsID] = append(r.commentsByNews[comment.NewsID], comment.ID)

	return nil
}

func (r *Repository) GetComment(ctx context.Context, id uuid.UUID) (*notepress.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, exists := r.comments[id]
	if !exists {
		return nil, notepress.ErrCommentNotFound
	}

	commentCopy := *comment
	return &commentCopy, nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment *notepress.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.comments[comment.ID]
	if !exists {
		return notepress.ErrCommentNotFound
	}

	commentCopy := *comment
	// Author, parent news and thread position are immutable.
	commentCopy.AuthorID = existing.AuthorID
	commentCopy.NewsID = existing.NewsID
	commentCopy.Created = existing.Created
	commentCopy.Seq = existing.Seq
	r.comments[comment.ID] = &commentCopy

	return nil
}

func (r *Repository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, exists := r.comments[id]
	if !exists {
		return notepress.ErrCommentNotFound
	}

	ids := r.commentsByNews[comment.NewsID]
	for i, cid := range ids {
		if cid == id {
			r.commentsByNews[comment.NewsID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	delete(r.comments, id)

	return nil
}

func (r *Repository) ListCommentsByNews(ctx context.Context, newsID uuid.UUID) ([]*notepress.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.commentsByNews[newsID]
	result := make([]*notepress.Comment, 0, len(ids))
	for _, id := range ids {
		if comment, exists := r.comments[id]; exists {
			commentCopy := *comment
			result = append(result, &commentCopy)
		}
	}

	return result, nil
}
