package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/internal/backend/httpapi"
	"github.com/radieske/gallo-bet-platform/internal/gallo-app/consumer"
	ahttp "github.com/radieske/gallo-bet-platform/internal/gallo-app/http"
	kpub "github.com/radieske/gallo-bet-platform/internal/gallo-app/producer"
	"github.com/radieske/gallo-bet-platform/internal/session/vault"
	"github.com/radieske/gallo-bet-platform/internal/shared/cache"
	"github.com/radieske/gallo-bet-platform/internal/shared/config"
	"github.com/radieske/gallo-bet-platform/internal/shared/kafka"
	"github.com/radieske/gallo-bet-platform/internal/shared/logger"
	"github.com/radieske/gallo-bet-platform/internal/shared/metrics"
	"github.com/radieske/gallo-bet-platform/internal/store"
)

func main() {
	cfg := config.Load()
	log, err := logger.New("gallo-app", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Backend real ou simulado, sempre via REST
	var bcli backend.Client = httpapi.New(cfg.BackendURL)

	// Vault de sessão: arquivo local por padrão, Redis quando configurado
	var (
		sv       vault.Vault
		healthFn metrics.HealthFunc = func(context.Context) error { return nil }
	)
	switch cfg.SessionStore {
	case "redis":
		rdb, err := cache.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatal("redis", zap.Error(err))
		}
		sv = vault.NewRedis(rdb, cfg.SessionKey)
		healthFn = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	default:
		sv = vault.NewFile(cfg.SessionFile)
	}

	// Stores: a sessão reidrata antes de qualquer outro store agir
	session := store.NewSession(bcli, sv, log)
	session.Rehydrate(context.Background())

	// Kafka: publica bet_placed, consome bet_confirmed para reconciliar
	writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetPlaced)
	defer writer.Close()
	publ := kpub.NewKafkaPublisher(writer, cfg.TopicBetPlaced)

	matches := store.NewMatches(bcli, log)
	bets := store.NewBets(bcli, session, publ, log)
	notifications := store.NewNotifications(bcli, session, log)
	referrals := store.NewReferrals(bcli, session, log)
	transactions := store.NewTransactions(bcli, session, log)

	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicBetConfirmed, "gallo-app")
	defer reader.Close()

	recon := &consumer.BetConfirmedConsumer{Log: log, Reader: reader, Bets: bets}
	go func() {
		if err := recon.Run(context.Background()); err != nil {
			log.Warn("bet_confirmed consumer stopped", zap.Error(err))
		}
	}()

	// metrics/health
	store.RegisterMetrics(prometheus.DefaultRegisterer)
	metrics.StartMetricsServer(cfg.MetricsPort, healthFn)
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	// HTTP público
	api := ahttp.NewServer(log, session, matches, bets, notifications, referrals, transactions)
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	log.Info("gallo-app listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
