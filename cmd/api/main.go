package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samridhagrawal-cpu/radius-backend/config"
	"github.com/samridhagrawal-cpu/radius-backend/internal/bootstrap"
	"github.com/samridhagrawal-cpu/radius-backend/internal/logger"
	"github.com/samridhagrawal-cpu/radius-backend/internal/monitor"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/oracle"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/publish"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/repository"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/service"
)

const serviceName = "radius-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	// Run history: Redis when configured, process memory otherwise.
	var repo repository.RunRepository = repository.NewMemory()
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = bootstrap.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.WithError(err).Fatal("redis unavailable")
		}
		repo = repository.NewRedis(rdb)
		log.Info("run history backed by redis")
	} else {
		log.Info("run history kept in memory; lost on restart")
	}

	var db *sql.DB
	if cfg.Database.DSN != "" {
		db, err = bootstrap.OpenDB(ctx, cfg.Database.DSN)
		if err != nil {
			log.WithError(err).Fatal("archive database unavailable")
		}
		defer db.Close()
	}

	completer := oracle.NewClient(oracle.ClientOptions{
		BaseURL:           cfg.Oracle.BaseURL,
		APIKey:            cfg.Oracle.APIKey,
		Model:             cfg.Oracle.Model,
		Timeout:           time.Duration(cfg.Oracle.TimeoutSeconds) * time.Second,
		RequestsPerSecond: float64(cfg.Oracle.RequestsPerSecond),
	})
	gateway := publish.NewWordPress(0)

	orchestrator := service.NewOrchestrator(completer, repo, gateway, log)
	if db != nil {
		orchestrator.WithArchive(repository.NewArchive(db))
	}

	scheduler := monitor.NewScheduler(orchestrator, cfg.Monitor.CronSpec,
		monitor.ParseWatchlist(cfg.Monitor.Brands), log)
	if err := scheduler.Start(); err != nil {
		log.WithError(err).Fatal("failed to start watchlist monitor")
	}
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		Orchestrator: orchestrator,
		Redis:        rdb,
		DB:           db,
		Log:          log,
	})

	log.WithField("port", cfg.Server.Port).Info("listening")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
