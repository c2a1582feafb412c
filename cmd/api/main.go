package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/salon-scheduler/internal/jobs"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
	"github.com/BruksfildServices01/salon-scheduler/internal/security"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(newLogger(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.Open(cfg)
	if err != nil {
		return err
	}

	deps := routes.Deps{
		DB:               db,
		Tokens:           security.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn),
		AuditLogs:        audit.New(db),
		AllowedOrigins:   cfg.AllowedOrigins(),
		CheckEmailDomain: cfg.CheckEmailDomain,
	}

	if err := wireStorage(ctx, cfg, &deps); err != nil {
		return err
	}

	dispatcher := audit.NewDispatcher(deps.AuditLogs, 100)
	defer dispatcher.Close()
	deps.Audit = dispatcher

	purge, err := jobs.Schedule(cfg.PurgeSchedule, jobs.NewPurger(db, cfg.PurgeRetention()))
	if err != nil {
		return err
	}
	if purge != nil {
		defer purge.Stop()
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger())

	if err := routes.RegisterRoutes(r, deps); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// wireStorage picks S3 when STORAGE_URL is set and the local upload dir
// otherwise. Signed URLs go through Redis when REDIS_URL is set.
func wireStorage(ctx context.Context, cfg *config.Config, deps *routes.Deps) error {
	expiry := cfg.SignedURLExpiry()

	if cfg.StorageURL != "" {
		deps.Store = storage.NewS3(storage.S3Config{
			Endpoint:  cfg.StorageURL,
			Region:    cfg.StorageRegion,
			Bucket:    cfg.StorageBucket,
			AccessKey: cfg.StorageKey,
			SecretKey: cfg.StorageSecret,
			Expiry:    expiry,
		})
	} else {
		disk := storage.NewDisk(cfg.UploadDir, "")
		deps.Store = disk
		deps.StaticDir = disk.Dir()
		deps.StaticBase = disk.StaticBase()
		slog.Warn("STORAGE_URL not set, serving uploads from disk", "dir", disk.Dir())
	}

	deps.Signer = deps.Store
	if cfg.RedisURL != "" {
		client, err := storage.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		deps.Signer = storage.NewCachedSigner(deps.Store, storage.NewRedisURLCache(client), expiry)
	}

	return nil
}
