package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/osliken/notepress/pkg/notepress"
)

// NewsHandler handles HTTP requests for the public news application and its
// comment threads.
type NewsHandler struct {
	service   notepress.Service
	loginPath string
	basePath  string // public mount path, used to build detail redirects
}

// NewNewsHandler creates a new news handler. basePath is the path the
// handler is mounted at (e.g. "/news").
func NewNewsHandler(service notepress.Service, loginPath, basePath string) *NewsHandler {
	return &NewsHandler{
		service:   service,
		loginPath: loginPath,
		basePath:  basePath,
	}
}

// Routes returns the routes for news and comments
func (h *NewsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Home)
	r.Get("/{id}", h.Detail)
	r.Post("/{id}/comments", h.CreateComment)
	r.Post("/comments/{id}/edit", h.UpdateComment)
	r.Post("/comments/{id}/delete", h.DeleteComment)

	return r
}

// NewsResponse is the response body for a news item
type NewsResponse struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Text  string    `json:"text"`
	Date  time.Time `json:"date"`
}

// CommentResponse is the response body for a comment
type CommentResponse struct {
	ID       string    `json:"id"`
	NewsID   string    `json:"news_id"`
	AuthorID string    `json:"author_id"`
	Text     string    `json:"text"`
	Created  time.Time `json:"created"`
}

// CommentForm is the write affordance included in the detail view for
// authenticated callers only.
type CommentForm struct {
	Fields []string `json:"fields"`
}

// NewsDetailResponse is the response body for the news detail view
type NewsDetailResponse struct {
	News       NewsResponse      `json:"news"`
	Comments   []CommentResponse `json:"comments"`
	CanComment bool              `json:"can_comment"`
	Form       *CommentForm      `json:"form,omitempty"`
}

func newsResponse(item *notepress.NewsItem) NewsResponse {
	return NewsResponse{
		ID:    item.ID.String(),
		Title: item.Title,
		Text:  item.Text,
		Date:  item.Date,
	}
}

func commentResponse(comment *notepress.Comment) CommentResponse {
	return CommentResponse{
		ID:       comment.ID.String(),
		NewsID:   comment.NewsID.String(),
		AuthorID: comment.AuthorID.String(),
		Text:     comment.Text,
		Created:  comment.Created,
	}
}

func (h *NewsHandler) detailURL(newsID uuid.UUID) string {
	return fmt.Sprintf("%s/%s#comments", h.basePath, newsID)
}

// Home lists the most recent news items
func (h *NewsHandler) Home(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListNews(r.Context())
	if err != nil {
		slog.Error("Failed to list news", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]NewsResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, newsResponse(item))
	}
	render.JSON(w, r, resp)
}

// Detail retrieves a news item with its comment thread
func (h *NewsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	detail, err := h.service.GetNewsDetail(r.Context(), p, id)
	if err != nil {
		if errors.Is(err, notepress.ErrNewsNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("Failed to get news detail", "news_id", id.String(), "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := NewsDetailResponse{
		News:       newsResponse(detail.News),
		Comments:   make([]CommentResponse, 0, len(detail.Comments)),
		CanComment: detail.CanComment,
	}
	for _, comment := range detail.Comments {
		resp.Comments = append(resp.Comments, commentResponse(comment))
	}
	if detail.CanComment {
		resp.Form = &CommentForm{Fields: []string{"text"}}
	}

	render.JSON(w, r, resp)
}

// CreateComment creates a comment on a news item from a form submission
func (h *NewsHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromContext(r.Context())

	newsID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := notepress.CreateCommentRequest{
		Author: p,
		NewsID: newsID,
		Text:   r.PostFormValue("text"),
	}

	comment, err := h.service.CreateComment(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, notepress.ErrUnauthenticated):
			redirectToLogin(w, r, h.loginPath)
		case errors.Is(err, notepress.ErrModerationRejected):
			renderFieldError(w, r, "text", notepress.ModerationWarning, r.PostForm)
		case errors.Is(err, notepress.ErrNewsNotFound):
			http.NotFound(w, r)
		default:
			slog.Error("Failed to create comment", "news_id", newsID.String(), "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	slog.Info("Comment created", "comment_id", comment.ID.String(), "news_id", newsID.String())
	http.Redirect(w, r, h.detailURL(newsID), http.StatusFound)
}

// UpdateComment edits a comment from a form submission
func (h *NewsHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromContext(r.Context())

	commentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := notepress.UpdateCommentRequest{
		Author:    p,
		CommentID: commentID,
		Text:      r.PostFormValue("text"),
	}

	comment, err := h.service.UpdateComment(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, notepress.ErrUnauthenticated):
			redirectToLogin(w, r, h.loginPath)
		case errors.Is(err, notepress.ErrModerationRejected):
			renderFieldError(w, r, "text", notepress.ModerationWarning, r.PostForm)
		case errors.Is(err, notepress.ErrCommentNotFound):
			http.NotFound(w, r)
		default:
			slog.Error("Failed to update comment", "comment_id", commentID.String(), "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	slog.Info("Comment updated", "comment_id", commentID.String())
	http.Redirect(w, r, h.detailURL(comment.NewsID), http.StatusFound)
}

// DeleteComment deletes a comment
func (h *NewsHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromContext(r.Context())

	commentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	comment, err := h.service.DeleteComment(r.Context(), p, commentID)
	if err != nil {
		switch {
		case errors.Is(err, notepress.ErrUnauthenticated):
			redirectToLogin(w, r, h.loginPath)
		case errors.Is(err, notepress.ErrCommentNotFound):
			http.NotFound(w, r)
		default:
			slog.Error("Failed to delete comment", "comment_id", commentID.String(), "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	slog.Info("Comment deleted", "comment_id", commentID.String())
	http.Redirect(w, r, h.detailURL(comment.NewsID), http.StatusFound)
}
