// Package server wires configuration, storage, services and both transports
// (HTTP and gRPC) into a runnable application with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/fitkeeper/internal/logging"
	"github.com/dmitrijs2005/fitkeeper/internal/server/config"
	gs "github.com/dmitrijs2005/fitkeeper/internal/server/grpc"
	"github.com/dmitrijs2005/fitkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fitkeeper/internal/server/rest"
	"github.com/dmitrijs2005/fitkeeper/internal/server/services"
	"github.com/dmitrijs2005/fitkeeper/internal/server/storage"
	"github.com/gin-gonic/gin"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	userService *services.UserService
	photoStore  *storage.PhotoStore
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewApp refuses to start without a signing secret, then selects the store:
// PostgreSQL when a DSN is configured, memory otherwise.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))

	app := &App{config: c, logger: logger}

	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "no database DSN configured, using in-memory store")
		app.repomanager = repomanager.NewMemoryRepositoryManager()
	} else {
		db, err := openDB(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db ping error: %w", err)
		}
		app.db = db
		app.repomanager = repomanager.NewPostgresRepositoryManager(db)
	}

	if err := app.repomanager.RunMigrations(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	app.userService = services.NewUserService(app.repomanager, c, logger)
	app.photoStore = storage.NewPhotoStore(c)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	handler := rest.NewHandler(app.userService, app.photoStore, app.logger, app.config.ExposeErrorDetails)
	limiter := rest.NewRateLimiter(app.config.RateLimitRPS, app.config.RateLimitBurst)
	return rest.NewRouter(handler, rest.NewAuth(app.config.SecretKeys()), limiter, app.logger)
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.router())
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.photoStore, app.config.SecretKeys())
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts both servers and blocks until a signal arrives, ctx is
// cancelled, or either server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.Close()
	app.logger.Info(context.Background(), "App stopped")
}

func (app *App) Close() {
	if app.db != nil {
		_ = app.db.Close()
		app.db = nil
	}
}
