package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/pkg/contracts/events"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// Reconciler aplica o desfecho de uma aposta; implementado pelo store
// de apostas.
type Reconciler interface {
	Reconcile(betID int64, conf domain.BetConfirmation, reason string)
}

// BetConfirmedConsumer escuta o tópico bet_confirmed e reconcilia as
// apostas otimistas do store com o veredito do backend.
type BetConfirmedConsumer struct {
	Log    *zap.Logger
	Reader *kafka.Reader
	Bets   Reconciler
}

// Run inicia o loop de consumo; retorna quando o contexto é cancelado.
func (c *BetConfirmedConsumer) Run(ctx context.Context) error {
	for {
		m, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.Log.Warn("kafka read failed", zap.Error(err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		c.handle(m.Value)
	}
}

func (c *BetConfirmedConsumer) handle(value []byte) {
	var ev events.BetConfirmed
	if err := json.Unmarshal(value, &ev); err != nil {
		c.Log.Warn("invalid bet_confirmed message", zap.Error(err))
		return
	}

	conf := domain.ConfirmationRejected
	if ev.Status == events.StatusConfirmed {
		conf = domain.ConfirmationConfirmed
	}
	c.Bets.Reconcile(ev.BetID, conf, ev.Reason)
}
