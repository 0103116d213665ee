// Package server initializes and runs the auth server application: it wires
// the configuration, database, credential components, and HTTP transport,
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/authd/internal/logging"
	"github.com/dmitrijs2005/authd/internal/server/auth"
	"github.com/dmitrijs2005/authd/internal/server/config"
	"github.com/dmitrijs2005/authd/internal/server/httpapi"
	"github.com/dmitrijs2005/authd/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authd/internal/server/services"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	repos      repomanager.RepositoryManager
	httpServer *httpapi.HTTPServer
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	// the signing secret has no default: refusing to start beats issuing
	// forgeable tokens
	if cfg.SecretKey == "" {
		return nil, errors.New("signing secret is not configured")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	issuer := auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.AccessTokenTTL)
	blacklist := auth.NewBlacklist()
	guard := auth.NewGuard(issuer, blacklist)

	authService := services.NewAuthService(db, rm, issuer, auth.NewPasswordHasher(), blacklist)
	userService := services.NewUserService(db, rm)

	router := httpapi.NewRouter(logger, guard, authService, userService, cfg.CORSOrigin)
	httpServer := httpapi.NewHTTPServer(cfg.EndpointAddrHTTP, router, logger)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         db,
		repos:      rm,
		httpServer: httpServer,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}

	return nil
}
