package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"Postboard/internal/api/middleware"
	"Postboard/internal/api/routes"
	"Postboard/internal/auth"
	"Postboard/internal/config"
	"Postboard/internal/core/comments"
	"Postboard/internal/core/likes"
	"Postboard/internal/core/posts"
	"Postboard/internal/db/memory"
	postgresRepo "Postboard/internal/db/postgres"
)

func main() {
	cfg := config.FromEnv()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

type repositories struct {
	posts    posts.Repository
	comments comments.Repository
	likes    likes.Repository
	close    func() error
}

func openRepositories(ctx context.Context, cfg config.Config, logger *slog.Logger) (*repositories, error) {
	if cfg.StoreBackend == config.BackendMemory {
		logger.Warn("using in-memory store; data is lost on restart")
		store := memory.New()
		return &repositories{
			posts:    store.Posts(),
			comments: store.Comments(),
			likes:    store.Likes(),
			close:    func() error { return nil },
		}, nil
	}

	db, err := postgresRepo.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database", "driver", cfg.DBDriver)

	if cfg.RunMigrations {
		if err := postgresRepo.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("migrations completed successfully")
	}

	return &repositories{
		posts:    postgresRepo.NewPostRepository(db),
		comments: postgresRepo.NewCommentRepository(db),
		likes:    postgresRepo.NewLikeRepository(db),
		close:    db.Close,
	}, nil
}

func newVerifier(ctx context.Context, cfg config.Config, logger *slog.Logger) (auth.Verifier, error) {
	var hmacVerifier, jwksVerifier auth.Verifier

	if cfg.AuthJWTSecret != "" {
		hmacVerifier = auth.NewHMACVerifier([]byte(cfg.AuthJWTSecret), cfg.AuthIssuer)
	}
	if cfg.AuthJWKSURL != "" {
		remote, err := auth.NewRemoteJWKSVerifier(ctx, cfg.AuthJWKSURL, cfg.AuthIssuer, cfg.JWKSRefresh)
		if err != nil {
			return nil, fmt.Errorf("failed to load JWKS: %w", err)
		}
		jwksVerifier = remote
	}

	verifier, err := auth.NewVerifier(hmacVerifier, jwksVerifier)
	if err != nil {
		return nil, err
	}

	if cfg.AuthCacheSize == 0 {
		return verifier, nil
	}
	cached, err := auth.NewCachingVerifier(verifier, cfg.AuthCacheSize, cfg.AuthCacheTTL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cache: %w", err)
	}
	return cached, nil
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.close(); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()

	verifier, err := newVerifier(ctx, cfg, logger)
	if err != nil {
		return err
	}
	authMiddleware := middleware.NewAuthMiddleware(verifier, logger)

	// Initialize services
	postService := posts.NewService(repos.posts, logger)
	commentService := comments.NewCommentService(repos.comments, logger)
	likeService := likes.NewService(repos.likes, repos.posts, logger)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	routes.RegisterPostRoutes(r, postService, authMiddleware)
	routes.RegisterCommentRoutes(r, commentService, authMiddleware)
	routes.RegisterLikeRoutes(r, likeService, authMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Postboard starting",
			"port", cfg.Port,
			"store", cfg.StoreBackend,
			"hs256", cfg.AuthJWTSecret != "",
			"jwks", cfg.AuthJWKSURL != "")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
