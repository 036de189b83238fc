package notepress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// service implements the Service interface
type service struct {
	repository Repository
	filter     *ModerationFilter
	ordering   OrderingPolicy
	now        func() time.Time
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithModerationFilter sets the banned-term filter applied to comment text
func WithModerationFilter(filter *ModerationFilter) Option {
	return func(s *service) {
		s.filter = filter
	}
}

// WithOrderingPolicy sets the listing order policy
func WithOrderingPolicy(policy OrderingPolicy) Option {
	return func(s *service) {
		s.ordering = policy
	}
}

// WithClock overrides the time source. Used by tests that need
// deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		filter:   NewModerationFilter(),
		ordering: OrderingPolicy{HomePageCount: DefaultNewsCountOnHomePage},
		now:      func() time.Time { return time.Now().UTC() },
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}

// Note operations
//
// Mutations follow one pipeline: authorize, validate, commit. A failure in
// either of the first two stages returns before the repository is touched,
// so no partial mutation is ever observable.

func (s *service) CreateNote(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	if d := Authorize(req.Author, req.Author.ID, ActionCreate); !d.Allowed() {
		return nil, d.Err(ErrNoteNotFound)
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	now := s.now()
	note := &Note{
		ID:        uuid.New(),
		OwnerID:   req.Author.ID,
		Title:     req.Title,
		Text:      req.Text,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateNote(ctx, note); err != nil {
		if errors.Is(err, ErrDuplicateSlug) {
			return nil, err
		}
		return nil, &NoteError{Slug: slug, Op: "create", Err: err}
	}

	return note, nil
}

func (s *service) GetNote(ctx context.Context, p Principal, slug string) (*Note, error) {
	// The login check runs before the note is ever looked up, so anonymous
	// callers get the same answer whether or not the slug exists.
	if p.IsAnonymous() {
		return nil, ErrUnauthenticated
	}

	note, err := s.repository.GetNoteBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if d := Authorize(p, note.OwnerID, ActionRead); !d.Allowed() {
		return nil, d.Err(ErrNoteNotFound)
	}

	return note, nil
}

func (s *service) UpdateNote(ctx context.Context, req UpdateNoteRequest) (*Note, error) {
	if req.Author.IsAnonymous() {
		return nil, ErrUnauthenticated
	}

	note, err := s.repository.GetNoteBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	if d := Authorize(req.Author, note.OwnerID, ActionUpdate); !d.Allowed() {
		return nil, d.Err(ErrNoteNotFound)
	}

	slug := req.NewSlug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	note.Title = req.Title
	note.Text = req.Text
	note.Slug = slug
	note.UpdatedAt = s.now()

	if err := s.repository.UpdateNote(ctx, note); err != nil {
		if errors.Is(err, ErrDuplicateSlug) {
			return nil, err
		}
		return nil, &NoteError{Slug: req.Slug, Op: "update", Err: err}
	}

	return note, nil
}

func (s *service) DeleteNote(ctx context.Context, p Principal, slug string) error {
	if p.IsAnonymous() {
		return ErrUnauthenticated
	}

	note, err := s.repository.GetNoteBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if d := Authorize(p, note.OwnerID, ActionDelete); !d.Allowed() {
		return d.Err(ErrNoteNotFound)
	}

	if err := s.repository.DeleteNote(ctx, note.ID); err != nil {
		return &NoteError{Slug: slug, Op: "delete", Err: err}
	}

	return nil
}

func (s *service) ListNotes(ctx context.Context, p Principal) ([]*Note, error) {
	if p.IsAnonymous() {
		return nil, ErrUnauthenticated
	}
	return s.repository.ListNotesByOwner(ctx, p.ID)
}

// News operations

func (s *service) ListNews(ctx context.Context) ([]*NewsItem, error) {
	items, err := s.repository.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	return s.ordering.TopNews(items), nil
}

func (s *service) GetNewsDetail(ctx context.Context, p Principal, newsID uuid.UUID) (*NewsDetail, error) {
	news, err := s.repository.GetNews(ctx, newsID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repository.ListCommentsByNews(ctx, newsID)
	if err != nil {
		return nil, err
	}
	SortComments(comments)

	// Reading is public; only the write affordance is withheld from
	// anonymous callers.
	return &NewsDetail{
		News:       news,
		Comments:   comments,
		CanComment: !p.IsAnonymous(),
	}, nil
}

// Comment operations

func (s *service) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	// Ownership is trivially satisfied by authorship on create; the guard
	// still rejects anonymous callers.
	if d := Authorize(req.Author, req.Author.ID, ActionCreate); !d.Allowed() {
		return nil, d.Err(ErrCommentNotFound)
	}

	if _, err := s.repository.GetNews(ctx, req.NewsID); err != nil {
		return nil, err
	}

	if err := s.filter.Validate(req.Text); err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:       uuid.New(),
		NewsID:   req.NewsID,
		AuthorID: req.Author.ID,
		Text:     req.Text,
		Created:  s.now(),
	}

	if err := s.repository.CreateComment(ctx, comment); err != nil {
		return nil, &CommentError{CommentID: comment.ID, Op: "create", Err: err}
	}

	return comment, nil
}

func (s *service) UpdateComment(ctx context.Context, req UpdateCommentRequest) (*Comment, error) {
	if req.Author.IsAnonymous() {
		return nil, ErrUnauthenticated
	}

	comment, err := s.repository.GetComment(ctx, req.CommentID)
	if err != nil {
		return nil, err
	}

	if d := Authorize(req.Author, comment.AuthorID, ActionUpdate); !d.Allowed() {
		return nil, d.Err(ErrCommentNotFound)
	}

	// Edited text goes through the same moderation as new comments.
	if err := s.filter.Validate(req.Text); err != nil {
		return nil, err
	}

	comment.Text = req.Text

	if err := s.repository.UpdateComment(ctx, comment); err != nil {
		return nil, &CommentError{CommentID: req.CommentID, Op: "update", Err: err}
	}

	return comment, nil
}

func (s *service) DeleteComment(ctx context.Context, p Principal, commentID uuid.UUID) (*Comment, error) {
	if p.IsAnonymous() {
		return nil, ErrUnauthenticated
	}

	comment, err := s.repository.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if d := Authorize(p, comment.AuthorID, ActionDelete); !d.Allowed() {
		return nil, d.Err(ErrCommentNotFound)
	}

	if err := s.repository.DeleteComment(ctx, commentID); err != nil {
		return nil, &CommentError{CommentID: commentID, Op: "delete", Err: err}
	}

	return comment, nil
}

func (s *service) ListComments(ctx context.Context, newsID uuid.UUID) ([]*Comment, error) {
	if _, err := s.repository.GetNews(ctx, newsID); err != nil {
		return nil, err
	}

	comments, err := s.repository.ListCommentsByNews(ctx, newsID)
	if err != nil {
		return nil, err
	}
	SortComments(comments)
	return comments, nil
}
