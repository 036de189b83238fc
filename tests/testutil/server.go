package testutil

import (
	"log"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/osliken/notepress/pkg/notepress"
	"github.com/osliken/notepress/pkg/notepress/api"
	"github.com/osliken/notepress/pkg/notepress/repo/memory"
)

// Paths and secrets shared by the test server and the request helpers.
const (
	LoginPath   = "/auth/login/"
	SuccessPath = "/done/"
	JWTSecret   = "integration-test-secret"
)

// SetupTestServer creates a test server with all routes configured. The
// returned repository handle is for seeding news fixtures.
func SetupTestServer() (*httptest.Server, notepress.Repository) {
	repo := memory.New()

	svc, err := notepress.New(
		notepress.WithRepository(repo),
	)
	if err != nil {
		log.Fatal(err)
	}

	r := chi.NewRouter()
	r.Use(api.Identity(api.NewTokenAuth(JWTSecret)))

	r.Mount("/notes", api.NewNotesHandler(svc, LoginPath, SuccessPath).Routes())
	r.Mount("/news", api.NewNewsHandler(svc, LoginPath, "/news").Routes())

	return httptest.NewServer(r), repo
}
