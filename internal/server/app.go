// Package server initializes and runs the rental server.
// It opens and migrates the database, optionally connects the redis title
// cache, builds the services and serves them over HTTP until a shutdown
// signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/videoclub/internal/logging"
	"github.com/dmitrijs2005/videoclub/internal/server/config"
	"github.com/dmitrijs2005/videoclub/internal/server/repositories/movies"
	"github.com/dmitrijs2005/videoclub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/videoclub/internal/server/rest"
	"github.com/dmitrijs2005/videoclub/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	redis    *redis.Client
	services rest.Services
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, err
	}

	db, m, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app := &App{config: c, logger: logger, db: db}

	if c.RedisAddr != "" {
		rdb, err := movies.NewRedisClient(ctx, c.RedisAddr, c.RedisPassword)
		if err != nil {
			// the cache is optional, titles resolve from the database
			logger.Warn(ctx, "title cache disabled", "addr", c.RedisAddr, "error", err)
		} else {
			app.redis = rdb
			m = repomanager.WithTitleCache(m, movies.NewRedisTitleCache(rdb, c.TitleCacheTTL), logger.With("module", "title_cache"))
		}
	}

	app.services = rest.Services{
		Users:   services.NewUserService(db, m, c),
		Rentals: services.NewRentalService(db, m),
		Billing: services.NewBillingService(db, m),
		Catalog: services.NewCatalogService(db, m),
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config.EndpointAddrHTTP, app.logger, app.db, app.services, app.config.CORSAllowedOrigins)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a signal arrives or the server fails, then releases the
// database and redis connections.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.DatabaseDriver, "title_cache", app.redis != nil)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(ctx)
}

func (app *App) close(ctx context.Context) {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Warn(ctx, "redis close", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close", "error", err)
	}

	app.logger.Info(ctx, "Stopped")

	if s, ok := app.logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
