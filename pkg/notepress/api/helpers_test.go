package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/osliken/notepress/pkg/notepress"
	"github.com/osliken/notepress/pkg/notepress/api"
	"github.com/osliken/notepress/pkg/notepress/repo/memory"
	"github.com/stretchr/testify/require"
)

const (
	testLoginPath   = "/auth/login/"
	testSuccessPath = "/done/"
	testJWTSecret   = "test-secret"
)

// testServer wires the handlers the same way the server binary does: the
// identity middleware in front, notes and news mounted side by side.
type testServer struct {
	router  chi.Router
	service notepress.Service
	repo    notepress.Repository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	repo := memory.New()
	svc, err := notepress.New(notepress.WithRepository(repo))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(api.Identity(api.NewTokenAuth(testJWTSecret)))
	r.Mount("/notes", api.NewNotesHandler(svc, testLoginPath, testSuccessPath).Routes())
	r.Mount("/news", api.NewNewsHandler(svc, testLoginPath, "/news").Routes())

	return &testServer{router: r, service: svc, repo: repo}
}

// tokenFor issues a bearer token the identity middleware will resolve to p.
func tokenFor(t *testing.T, p notepress.Principal) string {
	t.Helper()

	ja := api.NewTokenAuth(testJWTSecret)
	_, token, err := ja.Encode(map[string]interface{}{
		"sub":  p.ID.String(),
		"name": p.Name,
	})
	require.NoError(t, err)
	return token
}

func (ts *testServer) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) postForm(t *testing.T, path, token string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) seedNews(t *testing.T, n int) []*notepress.NewsItem {
	t.Helper()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := make([]*notepress.NewsItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &notepress.NewsItem{
			ID:    uuid.New(),
			Title: fmt.Sprintf("News %d", i),
			Text:  "Body.",
			Date:  base.AddDate(0, 0, -i),
		})
	}
	require.NoError(t, ts.repo.SeedNews(context.Background(), items))
	return items
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
