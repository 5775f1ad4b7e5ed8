package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/lib/pq"
	"github.com/mwhite7112/woodpantry-nutrition/internal/api"
	"github.com/mwhite7112/woodpantry-nutrition/internal/cache"
	"github.com/mwhite7112/woodpantry-nutrition/internal/config"
	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
	"github.com/mwhite7112/woodpantry-nutrition/internal/logging"
	"github.com/mwhite7112/woodpantry-nutrition/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if err := cfg.RequireDB(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	sqlDB, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(sqlDB); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	svc := service.New(db.New(sqlDB), sqlDB, service.Config{
		ReducedConfidence:     cfg.MatchReducedConfidence,
		DefaultGoal:           cfg.DefaultGoal,
		NearDuplicateDistance: cfg.NearDuplicateDistance,
		BackfillPageSize:      cfg.BackfillPageSize,
	})
	if _, err := service.StrategyFor(svc.Config().DefaultGoal); err != nil {
		slog.Error("invalid DEFAULT_GOAL", "error", err, "goals", service.Goals())
		os.Exit(1)
	}

	if cfg.RedisAddr != "" {
		c, err := cache.Connect(context.Background(), cfg.RedisAddr, cfg.RedisTTL)
		if err != nil {
			slog.Error("redis unavailable", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer c.Close()
		svc.WithCache(c)
		slog.Info("nutrition result cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.RedisTTL)
	}

	handler := api.NewRouter(svc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("nutrition service listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
