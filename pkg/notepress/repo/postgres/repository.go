package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osliken/notepress/pkg/notepress"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements notepress.Repository using PostgreSQL.
//
// Slug uniqueness rides on the UNIQUE constraint over notes.slug; the
// database serializes concurrent inserts so exactly one of two racing
// creates with the same slug receives the duplicate error. Comment thread
// order uses the seq BIGSERIAL column as the insertion-order tiebreak.
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) notepress.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) notepress.Repository {
	return &Repository{db: pool}
}

// mapNoteError translates constraint violations into domain errors. The
// slug value is threaded through so the duplicate error can carry it.
func mapNoteError(err error, slug string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "slug") {
		return &notepress.DuplicateSlugError{Slug: slug}
	}
	return err
}

// Note operations

func (r *Repository) CreateNote(ctx context.Context, note *notepress.Note) error {
	query := `
		INSERT INTO notes (id, owner_id, title, text, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		note.ID, note.OwnerID, note.Title, note.Text, note.Slug,
		note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return mapNoteError(err, note.Slug)
	}
	return nil
}

func (r *Repository) GetNoteBySlug(ctx context.Context, slug string) (*notepress.Note, error) {
	query := `
		SELECT id, owner_id, title, text, slug, created_at, updated_at
		FROM notes
		WHERE slug = $1`

	var note notepress.Note
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&note.ID, &note.OwnerID, &note.Title, &note.Text, &note.Slug,
		&note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notepress.ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (r *Repository) UpdateNote(ctx context.Context, note *notepress.Note) error {
	// owner_id and created_at are deliberately absent from the SET list.
	query := `
		UPDATE notes
		SET title = $2, text = $3, slug = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		note.ID, note.Title, note.Text, note.Slug, note.UpdatedAt)
	if err != nil {
		return mapNoteError(err, note.Slug)
	}
	if tag.RowsAffected() == 0 {
		return notepress.ErrNoteNotFound
	}
	return nil
}

func (r *Repository) DeleteNote(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notepress.ErrNoteNotFound
	}
	return nil
}

func (r *Repository) ListNotesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*notepress.Note, error) {
	query := `
		SELECT id, owner_id, title, text, slug, created_at, updated_at
		FROM notes
		WHERE owner_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*notepress.Note, 0)
	for rows.Next() {
		var note notepress.Note
		if err := rows.Scan(
			&note.ID, &note.OwnerID, &note.Title, &note.Text, &note.Slug,
			&note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &note)
	}
	return result, rows.Err()
}

// News operations

func (r *Repository) SeedNews(ctx context.Context, items []*notepress.NewsItem) error {
	query := `
		INSERT INTO news (id, title, text, date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`

	for _, item := range items {
		if _, err := r.db.Exec(ctx, query, item.ID, item.Title, item.Text, item.Date); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) GetNews(ctx context.Context, id uuid.UUID) (*notepress.NewsItem, error) {
	var item notepress.NewsItem
	err := r.db.QueryRow(ctx,
		`SELECT id, title, text, date FROM news WHERE id = $1`, id).Scan(
		&item.ID, &item.Title, &item.Text, &item.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notepress.ErrNewsNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *Repository) ListNews(ctx context.Context) ([]*notepress.NewsItem, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, text, date FROM news`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*notepress.NewsItem, 0)
	for rows.Next() {
		var item notepress.NewsItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Text, &item.Date); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	return result, rows.Err()
}

// Comment operations

func (r *Repository) CreateComment(ctx context.Context, comment *notepress.Comment) error {
	query := `
		INSERT INTO comments (id, news_id, author_id, text, created)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING seq`

	err := r.db.QueryRow(ctx, query,
		comment.ID, comment.NewsID, comment.AuthorID, comment.Text, comment.Created).
		Scan(&comment.Seq)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return notepress.ErrNewsNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) GetComment(ctx context.Context, id uuid.UUID) (*notepress.Comment, error) {
	query := `
		SELECT id, news_id, author_id, text, created, seq
		FROM comments
		WHERE id = $1`

	var comment notepress.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&comment.ID, &comment.NewsID, &comment.AuthorID, &comment.Text,
		&comment.Created, &comment.Seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notepress.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment *notepress.Comment) error {
	// Only the text is mutable; author, parent and position are fixed.
	tag, err := r.db.Exec(ctx,
		`UPDATE comments SET text = $2 WHERE id = $1`, comment.ID, comment.Text)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notepress.ErrCommentNotFound
	}
	return nil
}

func (r *Repository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notepress.ErrCommentNotFound
	}
	return nil
}

func (r *Repository) ListCommentsByNews(ctx context.Context, newsID uuid.UUID) ([]*notepress.Comment, error) {
	query := `
		SELECT id, news_id, author_id, text, created, seq
		FROM comments
		WHERE news_id = $1
		ORDER BY created, seq`

	rows, err := r.db.Query(ctx, query, newsID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*notepress.Comment, 0)
	for rows.Next() {
		var comment notepress.Comment
		if err := rows.Scan(
			&comment.ID, &comment.NewsID, &comment.AuthorID, &comment.Text,
			&comment.Created, &comment.Seq); err != nil {
			return nil, err
		}
		result = append(result, &comment)
	}
	return result, rows.Err()
}
