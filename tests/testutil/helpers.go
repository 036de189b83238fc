package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/osliken/notepress/pkg/notepress"
	"github.com/osliken/notepress/pkg/notepress/api"
	"github.com/stretchr/testify/require"
)

// NoteResponse represents the response from note-related API endpoints
type NoteResponse struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Title   string `json:"title"`
	Text    string `json:"text"`
	Slug    string `json:"slug"`
}

// FieldErrorResponse represents a validation failure from a form endpoint
type FieldErrorResponse struct {
	Errors map[string][]string `json:"errors"`
	Values map[string]string   `json:"values"`
}

// TokenFor issues a bearer token the server resolves to the given principal
func TokenFor(t *testing.T, p notepress.Principal) string {
	t.Helper()

	ja := api.NewTokenAuth(JWTSecret)
	_, token, err := ja.Encode(map[string]interface{}{
		"sub":  p.ID.String(),
		"name": p.Name,
	})
	require.NoError(t, err)
	return token
}

// Client returns an HTTP client that surfaces redirects instead of
// following them, so tests can assert on Location headers.
func Client() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// PostForm submits a form with an optional bearer token
func PostForm(t *testing.T, serverURL, path, token string, form url.Values) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, serverURL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := Client().Do(req)
	require.NoError(t, err)
	return resp
}

// Get performs a GET with an optional bearer token
func Get(t *testing.T, serverURL, path, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, serverURL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := Client().Do(req)
	require.NoError(t, err)
	return resp
}

// DecodeJSON decodes a response body and closes it
func DecodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.Unmarshal(body, v))
}

// SeedNews stores n news fixtures with descending dates, freshest first
func SeedNews(t *testing.T, repo notepress.Repository, n int) []*notepress.NewsItem {
	t.Helper()

	base := time.Now().UTC()
	items := make([]*notepress.NewsItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &notepress.NewsItem{
			ID:    uuid.New(),
			Title: fmt.Sprintf("News %d", i),
			Text:  "Body.",
			Date:  base.AddDate(0, 0, -i),
		})
	}
	require.NoError(t, repo.SeedNews(context.Background(), items))
	return items
}
