package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-pos/internal/db"
	"github.com/BruksfildServices01/salon-pos/internal/infra/archive"
	"github.com/BruksfildServices01/salon-pos/internal/logger"
	"github.com/BruksfildServices01/salon-pos/internal/middleware"
	"github.com/BruksfildServices01/salon-pos/internal/notification"
	"github.com/BruksfildServices01/salon-pos/internal/routes"
	"github.com/BruksfildServices01/salon-pos/internal/store"
)

const slowRequest = 200 * time.Millisecond

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	s, db, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal("open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closeStore()

	if !cfg.AuthEnabled() {
		log.Warn("STAFF_PASSWORD_HASH not set, API is open")
	}

	deps := routes.Deps{
		Config: cfg,
		Store:  s,
		DB:     db,
		Logger: log,
	}
	if cfg.Backup.Enabled() {
		deps.Archiver = archive.NewS3Archiver(cfg.Backup)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log, slowRequest))

	app := routes.RegisterRoutes(r, deps)

	scheduler, err := notification.NewScheduler(app.Engine, cfg.DuePollInterval, log)
	if err != nil {
		log.Fatal("init scheduler", zap.Error(err))
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("store", cfg.StoreDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	scheduler.Stop(ctx)
	app.Audit.Close()
}

// openStore picks the persistence backend from STORE_DRIVER. The gorm
// handle is returned for postgres only, where audit logs are also kept.
func openStore(cfg *config.Config) (store.Store, *gorm.DB, func(), error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return store.NewGormStore(db), db, closeFn, nil

	case "redis":
		client, err := store.DialRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, nil, err
		}
		return store.NewRedisStore(client, cfg.RedisKeyPrefix), nil, func() { _ = client.Close() }, nil

	case "memory":
		return store.NewMemoryStore(), nil, func() {}, nil
	}

	return nil, nil, nil, fmt.Errorf("%w: %q", store.ErrUnknownDriver, cfg.StoreDriver)
}
