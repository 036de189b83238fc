package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/osliken/notepress/pkg/notepress"
	"github.com/osliken/notepress/pkg/notepress/api"
	"github.com/osliken/notepress/pkg/notepress/config"
)

type envConfig struct {
	Port         string   `env:"PORT" env-default:"8080"`
	Environment  string   `env:"ENVIRONMENT" env-default:"development"`
	DatabaseType string   `env:"DATABASE_TYPE" env-default:"memory"`
	DatabaseURL  string   `env:"DATABASE_URL"`
	DBSchema     string   `env:"NOTEPRESS_DB_SCHEMA" env-default:"notepress"`
	NewsCount    int      `env:"NEWS_COUNT_ON_HOME_PAGE" env-default:"10"`
	BannedWords  []string `env:"BANNED_WORDS" env-separator:","`
	LoginPath    string   `env:"LOGIN_PATH" env-default:"/auth/login/"`
	SuccessPath  string   `env:"SUCCESS_PATH" env-default:"/done/"`
	JWTSecret    string   `env:"JWT_SECRET" env-default:"dev-secret"`
}

func main() {
	var env envConfig
	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	opts := []config.Option{
		config.WithPort(env.Port),
		config.WithEnvironment(env.Environment),
		config.WithDatabase(env.DatabaseType, env.DatabaseURL),
		config.WithDatabaseSchema(env.DBSchema),
		config.WithNewsCountOnHomePage(env.NewsCount),
		config.WithLoginPath(env.LoginPath),
		config.WithSuccessPath(env.SuccessPath),
		config.WithJWTSecret(env.JWTSecret),
	}
	if len(env.BannedWords) > 0 {
		opts = append(opts, config.WithBannedWords(env.BannedWords...))
	}

	serverConfig, err := config.Load(opts...)
	if err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	repo, err := serverConfig.BuildRepository()
	if err != nil {
		log.Fatalf("Failed to build repository: %v", err)
	}

	svc, err := serverConfig.BuildServiceWith(repo)
	if err != nil {
		log.Fatalf("Failed to build service: %v", err)
	}

	// The memory backend starts empty; give the development server
	// something to show on the home page.
	if serverConfig.Environment == "development" && serverConfig.DatabaseType == "memory" {
		if err := repo.SeedNews(context.Background(), demoNews()); err != nil {
			log.Fatalf("Failed to seed demo news: %v", err)
		}
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverConfig.Port),
		Handler: routes(svc, serverConfig),
	}

	go func() {
		slog.Info("Notepress server starting",
			"port", serverConfig.Port,
			"env", serverConfig.Environment,
			"database", serverConfig.DatabaseType)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("Server exiting")
}

func demoNews() []*notepress.NewsItem {
	now := time.Now().UTC()
	items := make([]*notepress.NewsItem, 0, 3)
	for i, title := range []string{"Welcome to Notepress", "Comment threads", "Private notes"} {
		items = append(items, &notepress.NewsItem{
			ID:    uuid.New(),
			Title: title,
			Text:  "Demo news item seeded for the development server.",
			Date:  now.AddDate(0, 0, -i),
		})
	}
	return items
}

func routes(svc notepress.Service, cfg *config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(api.Identity(api.NewTokenAuth(cfg.JWTSecret)))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	notesHandler := api.NewNotesHandler(svc, cfg.LoginPath, cfg.SuccessPath)
	newsHandler := api.NewNewsHandler(svc, cfg.LoginPath, "/news")

	r.Mount("/notes", notesHandler.Routes())
	r.Mount("/news", newsHandler.Routes())

	return r
}
