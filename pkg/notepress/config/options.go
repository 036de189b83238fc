package config

import (
	"fmt"
)

// WithPort sets the server port
func WithPort(port string) Option {
	return func(c *ServerConfig) error {
		if port == "" {
			return fmt.Errorf("port cannot be empty")
		}
		c.Port = port
		return nil
	}
}

// WithEnvironment sets the environment (development, production, testing)
func WithEnvironment(env string) Option {
	return func(c *ServerConfig) error {
		if env == "" {
			return fmt.Errorf("environment cannot be empty")
		}
		c.Environment = env
		return nil
	}
}

// WithDatabase configures the database backend
func WithDatabase(dbType, url string) Option {
	return func(c *ServerConfig) error {
		if dbType != "memory" && dbType != "postgres" {
			return fmt.Errorf("database type must be 'memory' or 'postgres', got: %s", dbType)
		}
		if dbType == "postgres" && url == "" {
			return fmt.Errorf("database URL is required for postgres")
		}
		c.DatabaseType = dbType
		c.DatabaseURL = url
		return nil
	}
}

// WithDatabaseSchema sets the database schema (for Postgres)
func WithDatabaseSchema(schema string) Option {
	return func(c *ServerConfig) error {
		c.DBSchema = schema
		return nil
	}
}

// WithNewsCountOnHomePage sets the page size of the news home listing
func WithNewsCountOnHomePage(n int) Option {
	return func(c *ServerConfig) error {
		if n <= 0 {
			return fmt.Errorf("news count on home page must be positive, got: %d", n)
		}
		c.NewsCountOnHomePage = n
		return nil
	}
}

// WithBannedWords replaces the banned-term list used by comment moderation
func WithBannedWords(words ...string) Option {
	return func(c *ServerConfig) error {
		c.BannedWords = append([]string(nil), words...)
		return nil
	}
}

// WithLoginPath sets the login endpoint used in unauthenticated redirects
func WithLoginPath(path string) Option {
	return func(c *ServerConfig) error {
		if path == "" {
			return fmt.Errorf("login path cannot be empty")
		}
		c.LoginPath = path
		return nil
	}
}

// WithSuccessPath sets the redirect target for successful note mutations
func WithSuccessPath(path string) Option {
	return func(c *ServerConfig) error {
		if path == "" {
			return fmt.Errorf("success path cannot be empty")
		}
		c.SuccessPath = path
		return nil
	}
}

// WithJWTSecret sets the HMAC secret used to verify identity tokens
func WithJWTSecret(secret string) Option {
	return func(c *ServerConfig) error {
		if secret == "" {
			return fmt.Errorf("jwt secret cannot be empty")
		}
		c.JWTSecret = secret
		return nil
	}
}
