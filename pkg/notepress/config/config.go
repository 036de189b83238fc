package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osliken/notepress/pkg/notepress"
	"github.com/osliken/notepress/pkg/notepress/repo/memory"
	repopg "github.com/osliken/notepress/pkg/notepress/repo/postgres"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:                "8080",
		Environment:         "development",
		DatabaseType:        "memory",
		DBSchema:            "notepress",
		NewsCountOnHomePage: notepress.DefaultNewsCountOnHomePage,
		BannedWords:         notepress.DefaultBannedWords,
		LoginPath:           "/auth/login/",
		SuccessPath:         "/done/",
		JWTSecret:           "dev-secret",
	}
}

// ServerConfig represents server configuration for the notepress service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Database configuration
	DatabaseURL  string
	DatabaseType string // "memory", "postgres"
	DBSchema     string // Postgres schema to use (default: notepress)

	// Content policy configuration
	NewsCountOnHomePage int
	BannedWords         []string

	// Route configuration
	LoginPath   string
	SuccessPath string

	// Identity configuration
	JWTSecret string
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	if c.DatabaseType != "memory" && c.DatabaseType != "postgres" {
		return errors.New("database_type must be 'memory' or 'postgres'")
	}

	if c.DatabaseType == "postgres" && c.DatabaseURL == "" {
		return errors.New("database_url is required when using postgres")
	}

	if c.NewsCountOnHomePage <= 0 {
		return errors.New("news count on home page must be positive")
	}

	if c.LoginPath == "" {
		return errors.New("login path is required")
	}

	return nil
}

// BuildService creates a Service instance from the server configuration
func (c *ServerConfig) BuildService() (notepress.Service, error) {
	repo, err := c.BuildRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}
	return c.BuildServiceWith(repo)
}

// BuildServiceWith creates a Service over an existing repository. Callers
// that need the repository handle (fixture seeding, tests) use this
// directly.
func (c *ServerConfig) BuildServiceWith(repo notepress.Repository) (notepress.Service, error) {
	return notepress.New(
		notepress.WithRepository(repo),
		notepress.WithModerationFilter(notepress.NewModerationFilter(c.BannedWords...)),
		notepress.WithOrderingPolicy(notepress.OrderingPolicy{HomePageCount: c.NewsCountOnHomePage}),
	)
}

// BuildRepository creates a Repository based on the configuration
func (c *ServerConfig) BuildRepository() (notepress.Repository, error) {
	switch c.DatabaseType {
	case "memory":
		return memory.New(), nil
	case "postgres":
		if c.DatabaseURL == "" {
			return nil, errors.New("database_url is required for postgres")
		}
		cfg, err := pgxpool.ParseConfig(c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
		}
		schema := c.DBSchema
		cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
			if schema == "" {
				return nil
			}
			// set search_path for this session
			_, err := conn.Exec(ctx, fmt.Sprintf("SET search_path TO %s", schema))
			return err
		}
		pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create pgx pool: %w", err)
		}
		return repopg.NewWithPool(pool), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", c.DatabaseType)
	}
}
