package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coderr/internal/config"
	"github.com/GlebRadaev/coderr/internal/handlers"
	"github.com/GlebRadaev/coderr/internal/pg"
	"github.com/GlebRadaev/coderr/internal/repo"
	"github.com/GlebRadaev/coderr/internal/service"
	"github.com/GlebRadaev/coderr/pkg/logger"
	"github.com/GlebRadaev/coderr/pkg/metrics"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

// Application owns the database pool and the HTTP server of the marketplace API.
type Application struct {
	cfg  *config.Config
	pool *pgxpool.Pool
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	a.cfg = config.New()
	if err := logger.InitLogger(a.cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err := a.initStorage(ctx); err != nil {
		return err
	}

	a.srv = service.New(a.repo, a.cfg)
	if err := a.srv.Provisioner.Provision(ctx); err != nil {
		zap.L().Error("account provisioning failed", zap.Error(err))
		return fmt.Errorf("can't provision accounts: %w", err)
	}

	m := metrics.NewDefault()
	metrics.RegisterPool(prometheus.DefaultRegisterer, a.pool)
	a.api = handlers.New(a.srv, m, a.cfg.GuestRestrictedOffers)

	a.startHTTPServer(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// initStorage opens the pool, migrates the schema and builds the repositories.
func (a *Application) initStorage(ctx context.Context) error {
	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		zap.L().Error("migrations failed", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	a.pool = pool
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
		a.pool.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()
}

// Wait blocks until ctx is done. The first server error cancels ctx and is returned.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
