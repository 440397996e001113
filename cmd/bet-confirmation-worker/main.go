package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	sdto "github.com/radieske/gallo-bet-platform/internal/backend-simulator/dto"
	"github.com/radieske/gallo-bet-platform/internal/shared/config"
	"github.com/radieske/gallo-bet-platform/internal/shared/kafka"
	"github.com/radieske/gallo-bet-platform/internal/shared/logger"
	"github.com/radieske/gallo-bet-platform/internal/shared/metrics"
	ev "github.com/radieske/gallo-bet-platform/pkg/contracts/events"
)

func main() {
	cfg := config.Load()
	log, err := logger.New("bet-confirmation-worker", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Kafka consumer: consome bet_placed para processar confirmação
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicBetPlaced, "bet-confirmation")
	defer reader.Close()

	// Kafka producer: publica bet_confirmed e, em falha repetida, DLQ
	confirmedWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetConfirmed)
	defer confirmedWriter.Close()

	var dlqWriter *kafka.Writer
	if cfg.TopicBetPlacedDLQ != "" {
		dlqWriter = kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetPlacedDLQ)
		defer dlqWriter.Close()
	}

	metrics.StartMetricsServer(cfg.MetricsPort, func(context.Context) error { return nil })
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	log.Info("bet-confirmation-worker started",
		zap.String("consume", cfg.TopicBetPlaced),
		zap.String("publish", cfg.TopicBetConfirmed),
	)

	ctx := context.Background()

	// Loop principal: consome bet_placed, decide com o backend e publica
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			log.Warn("kafka read", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		var placed ev.BetPlaced
		if jerr := json.Unmarshal(msg.Value, &placed); jerr != nil {
			log.Error("unmarshal bet_placed", zap.Error(jerr))
			continue
		}

		if err := processOne(ctx, log, cfg, confirmedWriter, dlqWriter, &placed); err != nil {
			log.Error("process bet", zap.Int64("betId", placed.BetID), zap.Error(err))
			// Backoff simples para evitar flood em caso de erro
			time.Sleep(500 * time.Millisecond)
		}
	}
}

// processOne executa o fluxo de confirmação de uma aposta:
// 1. Chama o backend para confirmar/rejeitar (retry + DLQ)
// 2. Publica o evento bet_confirmed no Kafka
func processOne(
	ctx context.Context,
	log *zap.Logger,
	cfg config.Config,
	confirmedWriter *kafka.Writer,
	dlqWriter *kafka.Writer,
	placed *ev.BetPlaced,
) error {
	resp, err := callBackendConfirm(ctx, cfg, placed)
	if err != nil {
		// Retry simples: tenta até 3 vezes antes de enviar para DLQ
		const retries = 3
		for i := 0; i < retries; i++ {
			time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
			if resp, err = callBackendConfirm(ctx, cfg, placed); err == nil {
				break
			}
		}
		if err != nil {
			if dlqWriter != nil {
				_ = kafka.WriteJSON(ctx, dlqWriter, betKey(placed.BetID), mustJSON(placed))
			}
			return err
		}
	}

	status := strings.ToUpper(resp.Status)
	if status != ev.StatusConfirmed && status != ev.StatusRejected {
		status = ev.StatusRejected
	}

	evc := ev.BetConfirmed{
		BetID:       placed.BetID,
		UserID:      placed.UserID,
		Status:      status,
		Reason:      resp.Reason,
		ProviderRef: resp.ProviderRef,
		Ts:          time.Now(),
	}
	log.Info("bet processed", zap.Int64("betId", placed.BetID), zap.String("status", status))
	return kafka.WriteJSON(ctx, confirmedWriter, betKey(placed.BetID), mustJSON(evc))
}

// callBackendConfirm pede ao backend o veredito da aposta otimista
func callBackendConfirm(ctx context.Context, cfg config.Config, p *ev.BetPlaced) (*sdto.ConfirmResp, error) {
	body, _ := json.Marshal(sdto.ConfirmReq{
		BetID:        p.BetID,
		UserID:       p.UserID,
		MatchID:      p.MatchID,
		Amount:       p.Amount,
		Odds:         p.Odds,
		PotentialWin: p.PotentialWin,
	})
	url := cfg.BackendURL + "/backend/confirm"

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, errors.New("backend http " + resp.Status)
	}
	var out sdto.ConfirmResp
	if jerr := json.NewDecoder(resp.Body).Decode(&out); jerr != nil {
		return nil, jerr
	}
	return &out, nil
}

func betKey(id int64) string {
	return "bet-" + strconv.FormatInt(id, 10)
}

func mustJSON(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
