package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"

	"github.com/mark47B/iam-service/internal/app"
	"github.com/mark47B/iam-service/internal/configs"
	"github.com/mark47B/iam-service/internal/domain/repository"
	"github.com/mark47B/iam-service/internal/i18n"
	"github.com/mark47B/iam-service/internal/infra/identity"
	"github.com/mark47B/iam-service/internal/infra/storage/pg"
	"github.com/mark47B/iam-service/internal/infra/transport/rest/gen"
	"github.com/mark47B/iam-service/internal/infra/transport/rest/handlers"
	"github.com/mark47B/iam-service/internal/infra/transport/rest/middleware"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := configs.Load()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Connect to database
	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close db", slog.Any("error", err))
		}
	}()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.RunMigrations {
		if err := pg.Migrate(db); err != nil {
			logger.Error("failed to apply migrations", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	messages, err := i18n.NewCatalog(cfg.DefaultLanguage)
	if err != nil {
		logger.Error("failed to load message catalogs", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := pg.NewUserStorage(db)
	auditRepo := pg.NewAuditStorage(db)
	txRepo := pg.NewTxManager(db, logger)

	var identityProvider repository.IdentityProvider
	if cfg.IdentityProviderURL != "" {
		identityProvider = identity.NewHTTPClient(cfg.IdentityProviderURL, cfg.IdentityProviderToken,
			cfg.IdentityProviderTimeout, logger)
	} else {
		logger.Warn("IDENTITY_PROVIDER_URL is empty, identity provider calls are only logged")
		identityProvider = identity.NewLogOnly(logger)
	}

	// Initialize service
	statusChanger := app.NewStatusChanger(userRepo, auditRepo, txRepo, identityProvider, messages, logger)
	svc := app.NewService(userRepo, statusChanger)

	// Initialize handlers
	h := handlers.NewHandlers(svc, validator.New(), messages, cfg.DefaultLanguage, logger)

	doc, err := gen.GetSwagger()
	if err != nil {
		logger.Error("failed to load openapi document", slog.Any("error", err))
		os.Exit(1)
	}
	requestValidator, err := middleware.OpenAPIValidator(doc)
	if err != nil {
		logger.Error("failed to build request validator", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logging(logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	router.Use(requestValidator)

	router.Get("/openapi.json", handlers.OpenAPIDocument(doc))

	// Register handlers
	gen.HandlerWithOptions(h, gen.ChiServerOptions{
		BaseRouter:       router,
		Middlewares:      []gen.MiddlewareFunc{middleware.Auth(cfg.JWTSecret)},
		ErrorHandlerFunc: handlers.ParamErrorHandler,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server
	go func() {
		logger.Info("server starting", slog.String("port", cfg.Port), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed to start", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("error", err))
		return
	}

	logger.Info("server exited")
}
