package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	simulator "github.com/radieske/gallo-bet-platform/internal/backend-simulator"
	"github.com/radieske/gallo-bet-platform/internal/backend/mock"
	"github.com/radieske/gallo-bet-platform/internal/shared/config"
	"github.com/radieske/gallo-bet-platform/internal/shared/logger"
	"github.com/radieske/gallo-bet-platform/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New("backend-simulator", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Stub do backend: datasets fixos + latência artificial configurável
	m := mock.New(cfg.SimulatorLatency)
	api := simulator.NewServer(log, m)

	metrics.StartMetricsServer(cfg.MetricsPort, func(context.Context) error { return nil })
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	log.Info("backend-simulator listening",
		zap.String("addr", srv.Addr),
		zap.Duration("latency", cfg.SimulatorLatency),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
