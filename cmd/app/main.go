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

	"clinicmeals/cmd"
	"clinicmeals/internal/adapters/in/catalogfile"
	"clinicmeals/internal/adapters/out/postgres/migrations"
	"clinicmeals/internal/core/ports"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/gommon/log"
	"go.uber.org/fx"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	app := fx.New(
		fx.NopLogger,
		fx.Supply(configs),
		fx.Provide(
			newLogger,
			newGormDB,
			newPool,
			newPublisher,
			cmd.NewCompositionRoot,
		),
		fx.Invoke(
			registerBootstrap,
			registerJobs,
			registerWebServer,
		),
	)

	if err = app.Start(ctx); err != nil {
		log.Fatalf("Error starting application: %v", err)
	}

	exitCode := 0
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		exitCode = sig.ExitCode
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = app.Stop(stopCtx); err != nil {
		log.Fatalf("Error stopping application: %v", err)
	}
	if exitCode != 0 {
		cancel()
		stop()
		os.Exit(exitCode)
	}
}

func newLogger(configs cmd.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)
	return logger
}

func newGormDB(lc fx.Lifecycle, configs cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpg.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return sqlDB.Close() },
	})
	return db, nil
}

func newPool(lc fx.Lifecycle, configs cmd.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), configs.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect read pool: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func newPublisher(lc fx.Lifecycle, configs cmd.Config, logger *slog.Logger) (ports.NotificationPublisher, error) {
	publisher, err := cmd.NewNotificationPublisher(configs, logger)
	if err != nil {
		return nil, fmt.Errorf("notification sink %s: %w", configs.NotificationSink, err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return publisher.Close() },
	})
	return publisher, nil
}

func registerBootstrap(lc fx.Lifecycle, db *gorm.DB, root *cmd.CompositionRoot) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			if err = migrations.Up(sqlDB); err != nil {
				return err
			}
			return root.Bootstrap(ctx, catalogfile.Load)
		},
	})
}

func registerJobs(lc fx.Lifecycle, root *cmd.CompositionRoot) {
	manager := root.CreateJobManager()
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error { return manager.StartAll() },
		OnStop: func(context.Context) error {
			manager.StopAll()
			return nil
		},
	})
}

func registerWebServer(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	configs cmd.Config,
	root *cmd.CompositionRoot,
	logger *slog.Logger,
) {
	e := root.NewEcho()
	addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go serve(e.Start, addr, shutdowner, logger)
			logger.Info("http server listening", "addr", addr)
			return nil
		},
		OnStop: func(ctx context.Context) error { return e.Shutdown(ctx) },
	})
}

// serve blocks in start. A server that fails for any reason other than a
// graceful shutdown stops the whole application with exit code 1.
func serve(start func(addr string) error, addr string, shutdowner fx.Shutdowner, logger *slog.Logger) {
	err := start(addr)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}
	logger.Error("http server stopped", "error", err)
	if shutdownErr := shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
		logger.Error("shutdown request failed", "error", shutdownErr)
	}
}
