package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/osliken/notepress/pkg/notepress"
)

// NotesHandler handles HTTP requests for the private notes application.
// Mutations are form posts, matching the page-oriented clients it serves:
// success answers with a redirect, validation failure with a field error.
type NotesHandler struct {
	service     notepress.Service
	loginPath   string
	successPath string
}

// NewNotesHandler creates a new notes handler
func NewNotesHandler(service notepress.Service, loginPath, successPath string) *NotesHandler {
	return &NotesHandler{
		service:     service,
		loginPath:   loginPath,
		successPath: successPath,
	}
}

// Routes returns the routes for notes
func (h *NotesHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListNotes)
	r.Post("/add", h.CreateNote)
	r.Get("/{slug}", h.GetNote)
	r.Post("/{slug}/edit", h.UpdateNote)
	r.Post("/{slug}/delete", h.DeleteNote)

	return r
}

// NoteResponse is the response body for a note
type NoteResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func noteResponse(note *notepress.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID.String(),
		OwnerID:   note.OwnerID.String(),
		Title:     note.Title,
		Text:      note.Text,
		Slug:      note.Slug,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// ListNotes lists the caller's own notes
func (h *NotesHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromContext(r.Context())

	notes, err := h.service.ListNotes(r.Context(), p)
	if err != nil {
		if errors.Is(err, notepress.ErrUnauthenticated) {
			redirectToLogin(w, r, h.loginPath)
			return
		}
		slog.Error("Failed to list notes", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		resp = append(resp, noteResponse(note))
	}
	render.JSON(w, r, resp)
}

// CreateNote creates a new note from a form submission
func (h *NotesHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := notepress.CreateNoteRequest{
		Author: p,
		Title:  r.PostFormValue("title"),
		Text:   r.PostFormValue("text"),
		Slug:   r.PostFormValue("slug"),
	}

	note, err := h.service.CreateNote(r.Context(), req)
	if err != nil {
		var dup *notepress.DuplicateSlugError
		switch {
		case errors.Is(err, notepress.ErrUnauthenticated):
			redirectToLogin(w, r, h.loginPath)
		case errors.As(err, &dup):
			renderFieldError(w, r, "slug", dup.Error(), r.PostForm)
		default:
			slog.Error("Failed to create note", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	slog.Info("Note created", "slug", note.Slug)
	http.Redirect(w, r, h.successPath, http.StatusFound)
}

// GetNote retrieves a note by slug
func (h *NotesHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromContext(r.Context())
	slug := chi.URLParam(r, "slug")

	note, err := h.service.GetNote(r.Context(), p, slug)
	if err != nil {
		switch {
		case errors.Is(err, notepress.ErrUnauthenticated):
			redirectToLogin(w, r, h.loginPath)
		case errors.Is(err, notepress.ErrNoteNotFound):
			http.NotFound(w, r)
		default:
			slog.Error("Failed to get note", "slug", slug, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	render.JSON(w, r, noteResponse(note))
}

// UpdateNote updates a note from a form submission
func (h *NotesHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromContext(r.Context())
	slug := chi.URLParam(r, "slug")

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := notepress.UpdateNoteRequest{
		Author:  p,
		Slug:    slug,
		Title:   r.PostFormValue("title"),
		Text:    r.PostFormValue("text"),
		NewSlug: r.PostFormValue("slug"),
	}

	note, err := h.service.UpdateNote(r.Context(), req)
	if err != nil {
		var dup *notepress.DuplicateSlugError
		switch {
		case errors.Is(err, notepress.ErrUnauthenticated):
			redirectToLogin(w, r, h.loginPath)
		case errors.As(err, &dup):
			renderFieldError(w, r, "slug", dup.Error(), r.PostForm)
		case errors.Is(err, notepress.ErrNoteNotFound):
			http.NotFound(w, r)
		default:
			slog.Error("Failed to update note", "slug", slug, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	slog.Info("Note updated", "slug", note.Slug)
	http.Redirect(w, r, h.successPath, http.StatusFound)
}

// DeleteNote deletes a note
func (h *NotesHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromContext(r.Context())
	slug := chi.URLParam(r, "slug")

	if err := h.service.DeleteNote(r.Context(), p, slug); err != nil {
		switch {
		case errors.Is(err, notepress.ErrUnauthenticated):
			redirectToLogin(w, r, h.loginPath)
		case errors.Is(err, notepress.ErrNoteNotFound):
			http.NotFound(w, r)
		default:
			slog.Error("Failed to delete note", "slug", slug, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	slog.Info("Note deleted", "slug", slug)
	http.Redirect(w, r, h.successPath, http.StatusFound)
}
