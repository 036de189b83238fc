package config

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/osliken/notepress/pkg/notepress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "memory", cfg.DatabaseType)
	assert.Equal(t, "notepress", cfg.DBSchema)
	assert.Equal(t, notepress.DefaultNewsCountOnHomePage, cfg.NewsCountOnHomePage)
	assert.Equal(t, notepress.DefaultBannedWords, cfg.BannedWords)
	assert.Equal(t, "/auth/login/", cfg.LoginPath)
	assert.Equal(t, "/done/", cfg.SuccessPath)
}

func TestLoad_Options(t *testing.T) {
	cfg, err := Load(
		WithPort("9090"),
		WithEnvironment("production"),
		WithNewsCountOnHomePage(5),
		WithBannedWords("spam"),
		WithLoginPath("/login"),
		WithSuccessPath("/ok"),
		WithJWTSecret("secret"),
	)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 5, cfg.NewsCountOnHomePage)
	assert.Equal(t, []string{"spam"}, cfg.BannedWords)
	assert.Equal(t, "/login", cfg.LoginPath)
	assert.Equal(t, "/ok", cfg.SuccessPath)
	assert.Equal(t, "secret", cfg.JWTSecret)
}

func TestLoad_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty port", WithPort("")},
		{"empty environment", WithEnvironment("")},
		{"bad database type", WithDatabase("mysql", "")},
		{"postgres without url", WithDatabase("postgres", "")},
		{"zero news count", WithNewsCountOnHomePage(0)},
		{"negative news count", WithNewsCountOnHomePage(-1)},
		{"empty login path", WithLoginPath("")},
		{"empty success path", WithSuccessPath("")},
		{"empty jwt secret", WithJWTSecret("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.opt)
			assert.Error(t, err)
		})
	}
}

func TestLoad_NilOptionIgnored(t *testing.T) {
	cfg, err := Load(nil, WithPort("7070"))
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr bool
	}{
		{"defaults pass", func(c *ServerConfig) {}, false},
		{"missing port", func(c *ServerConfig) { c.Port = "" }, true},
		{"unknown database type", func(c *ServerConfig) { c.DatabaseType = "sqlite" }, true},
		{"postgres needs url", func(c *ServerConfig) { c.DatabaseType = "postgres" }, true},
		{"postgres with url", func(c *ServerConfig) {
			c.DatabaseType = "postgres"
			c.DatabaseURL = "postgres://localhost/notepress"
		}, false},
		{"news count must be positive", func(c *ServerConfig) { c.NewsCountOnHomePage = 0 }, true},
		{"missing login path", func(c *ServerConfig) { c.LoginPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildService_Memory(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	svc, err := cfg.BuildService()
	require.NoError(t, err)
	require.NotNil(t, svc)

	// The memory backend is fully usable without external services.
	_, err = svc.ListNews(context.Background())
	assert.NoError(t, err)
}

func TestBuildService_AppliesContentPolicy(t *testing.T) {
	cfg, err := Load(WithBannedWords("banana"))
	require.NoError(t, err)

	repo, err := cfg.BuildRepository()
	require.NoError(t, err)
	svc, err := cfg.BuildServiceWith(repo)
	require.NoError(t, err)

	item := &notepress.NewsItem{ID: uuid.New(), Title: "A", Text: "B"}
	require.NoError(t, repo.SeedNews(context.Background(), []*notepress.NewsItem{item}))

	_, err = svc.CreateComment(context.Background(), notepress.CreateCommentRequest{
		Author: notepress.Principal{ID: uuid.New()},
		NewsID: item.ID,
		Text:   "a banana split",
	})
	assert.ErrorIs(t, err, notepress.ErrModerationRejected)
}

func TestBuildRepository_UnsupportedType(t *testing.T) {
	cfg := defaults()
	cfg.DatabaseType = "sqlite"

	_, err := cfg.BuildRepository()
	assert.Error(t, err)
}
