package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/savesmart/internal/config"
	"github.com/GlebRadaev/savesmart/internal/handlers"
	"github.com/GlebRadaev/savesmart/internal/kv"
	"github.com/GlebRadaev/savesmart/internal/pg"
	"github.com/GlebRadaev/savesmart/internal/repo"
	kvrepo "github.com/GlebRadaev/savesmart/internal/repo/kv-repo"
	sqliterepo "github.com/GlebRadaev/savesmart/internal/repo/sqlite-repo"
	"github.com/GlebRadaev/savesmart/internal/service"
	"github.com/GlebRadaev/savesmart/internal/storage"
	"github.com/GlebRadaev/savesmart/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	closers []func()
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	policy, err := failurePolicy(cfg.Policy)
	if err != nil {
		return err
	}

	store, err := a.openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't open %s store: %w", cfg.Driver, err)
	}

	a.cfg = cfg
	a.repo = repo.New(store, storage.WithFailurePolicy(policy))
	a.srv = service.New(a.repo)
	a.api = handlers.New(a.srv)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.String("driver", cfg.Driver),
		zap.String("policy", cfg.Policy),
	)
	return nil
}

func failurePolicy(name string) (storage.FailurePolicy, error) {
	switch name {
	case config.PolicyOpen:
		return storage.FailOpen, nil
	case config.PolicyClosed:
		return storage.FailClosed, nil
	default:
		return storage.FailOpen, fmt.Errorf("unsupported storage policy: %s", name)
	}
}

func (a *Application) openStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return kv.NewMemoryStore(kv.WithQuota(cfg.Quota)), nil
	case config.DriverPostgres:
		pool, err := getPgxpool(ctx, cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(ctx, pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			pool.Close()
			return nil, fmt.Errorf("can't run migrations: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		return kvrepo.New(pg.New(pool)), nil
	case config.DriverSQLite:
		store, err := sqliterepo.Open(cfg.SQLitePath)
		if err != nil {
			zap.L().Error("open sqlite failed: ", zap.Error(err))
			return nil, err
		}
		a.closers = append(a.closers, func() {
			if err := store.Close(); err != nil {
				zap.L().Error("can't close sqlite store", zap.Error(err))
			}
		})
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Driver)
	}
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

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		for _, closeStore := range a.closers {
			closeStore()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

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
