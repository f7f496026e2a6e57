// Package server wires the router, middleware, handlers and stores together.
//
// COMPOSITION ROOT:
// New is the one place where concrete types meet:
//
//	config → sqlite.DB → services → handlers → chi routes
//
// Each layer only receives what it needs. Services get repository
// interfaces, handlers get service interfaces, and nothing below this
// package knows which implementation it was handed.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/snack-api/internal/auth"
	"github.com/sakif/snack-api/internal/config"
	"github.com/sakif/snack-api/internal/handler"
	"github.com/sakif/snack-api/internal/middleware"
	sqliteRepo "github.com/sakif/snack-api/internal/repository/sqlite"
	"github.com/sakif/snack-api/internal/service"
)

// Server owns the HTTP router and the database connection. The connection
// is closed when Run returns, or by Close if the server is never run.
type Server struct {
	router *chi.Mux
	config *config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the database and builds the full dependency graph.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes registers middleware and routes.
//
// ROUTES:
//
//	GET    /healthz               → database ping
//	GET    /snacks                → list
//	POST   /snacks                → create
//	GET    /snacks/{id}           → get
//	PUT    /snacks/{id}           → update
//	DELETE /snacks/{id}           → delete
//	POST   /accounts              → register a principal
//	GET    /accounts/{id}         → principal by id
//
// With JWT_SECRET set:
//
//	POST   /auth/token            → password login
//	GET    /me                    → current principal       (RequireAuth)
//	PUT    /me/credential         → change password         (RequireAuth)
//
// With GitHub configured as well:
//
//	GET    /auth/github/login     → redirect to GitHub
//	GET    /auth/github/callback  → finish sign-in
//	POST   /auth/logout           → clear the token cookie
//
// MIDDLEWARE ORDER:
// RequestID first so every later layer can read the id; Logger outside
// Recoverer so a recovered panic is still logged as a 500.
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	var tokens *auth.TokenService
	if s.config.AuthEnabled() {
		var err error
		tokens, err = auth.NewTokenService(s.config.JWTSecret, s.config.TokenTTL)
		if err != nil {
			return fmt.Errorf("creating token service: %w", err)
		}
	} else {
		s.logger.Warn("JWT_SECRET not set: token login and /me are disabled")
	}

	// s.db implements both repository interfaces.
	snackService := service.NewSnackService(s.db, s.db, s.logger)
	accountService := service.NewAccountService(s.db, auth.NewPasswordService(), tokens, s.logger)

	snackHandler := handler.NewSnackHandler(snackService, s.logger)
	accountHandler := handler.NewAccountHandler(accountService, s.logger)
	healthHandler := handler.NewHealthHandler(s.db, s.logger)

	s.router.Get("/healthz", healthHandler.HandleHealth)
	s.router.Mount("/snacks", snackHandler.Routes())

	s.router.Post("/accounts", accountHandler.HandleRegister)
	s.router.Get("/accounts/{id}", accountHandler.HandleGet)

	if tokens == nil {
		return nil
	}

	s.router.Post("/auth/token", accountHandler.HandleToken)
	s.router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))
		r.Get("/me", accountHandler.HandleMe)
		r.Put("/me/credential", accountHandler.HandleChangeCredential)
	})

	if s.config.GitHub.Enabled() {
		github := auth.NewGitHubProvider(
			s.config.GitHub.ClientID,
			s.config.GitHub.ClientSecret,
			s.config.GitHub.CallbackURL,
		)
		githubHandler := handler.NewGitHubHandler(github, accountService, s.logger)

		s.router.Get("/auth/github/login", githubHandler.HandleGitHubLogin)
		s.router.Get("/auth/github/callback", githubHandler.HandleGitHubCallback)
		s.router.Post("/auth/logout", githubHandler.HandleLogout)
	}

	return nil
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the database. Run calls it on return.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the server until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully:
//  1. stop accepting connections
//  2. wait up to ShutdownTimeout for in-flight requests
//  3. close the database (flushes the WAL, releases the file lock)
func (s *Server) Run(ctx context.Context) error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
			slog.Bool("auth", s.config.AuthEnabled()),
			slog.Bool("github", s.config.GitHub.Enabled()),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case <-ctx.Done():
		s.logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
