package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/pkg/contracts/events"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// CurrentUser expõe a identidade da sessão autenticada; implementado
// pelo store de sessão.
type CurrentUser interface {
	UserID() (int64, bool)
}

// Publisher publica o evento bet_placed para o fluxo de confirmação.
type Publisher interface {
	PublishBetPlaced(ctx context.Context, e events.BetPlaced) error
}

// Bets guarda o histórico de apostas do usuário e aceita novas apostas
// de forma otimista: o registro entra local com confirmação "pending" e
// é reconciliado quando o bet_confirmed chega do backend.
type Bets struct {
	st      state
	backend backend.Client
	session CurrentUser
	publ    Publisher // opcional; nil desliga o fluxo de confirmação

	bets []domain.Bet
}

type BetsSnapshot struct {
	Bets    []domain.Bet
	Loading bool
	Err     error
}

func NewBets(b backend.Client, session CurrentUser, publ Publisher, log *zap.Logger) *Bets {
	return &Bets{st: newState("bets", log), backend: b, session: session, publ: publ}
}

func (s *Bets) Fetch(ctx context.Context) error {
	uid, ok := s.session.UserID()
	if !ok {
		seq := s.st.begin()
		return s.st.settle(seq, func() error { return ErrNotAuthenticated })
	}
	seq := s.st.begin()
	bs, cerr := s.backend.FetchUserBets(ctx, uid)
	return s.st.settle(seq, func() error {
		if cerr != nil {
			return cerr
		}
		s.bets = bs
		return nil
	})
}

// PlaceBet monta a aposta no cliente (potentialWin = amount*odds,
// id = max+1, status pending) e a anexa otimisticamente. A publicação do
// bet_placed acontece depois do estado aplicado; falha de publicação é
// logada e não desfaz a aposta.
func (s *Bets) PlaceBet(ctx context.Context, matchID int64, amount float64, selectedCock int, odds float64) (domain.Bet, error) {
	seq := s.st.begin()
	var placed domain.Bet
	err := s.st.settle(seq, func() error {
		uid, ok := s.session.UserID()
		if !ok {
			return ErrNotAuthenticated
		}
		if amount <= 0 || odds <= 0 || (selectedCock != 1 && selectedCock != 2) {
			return ErrInvalidBet
		}
		var maxID int64
		for _, b := range s.bets {
			if b.ID > maxID {
				maxID = b.ID
			}
		}
		placed = domain.Bet{
			ID:           maxID + 1,
			MatchID:      matchID,
			UserID:       uid,
			Amount:       amount,
			SelectedCock: selectedCock,
			PotentialWin: amount * odds,
			Status:       domain.BetPending,
			Confirmation: domain.ConfirmationPending,
			CreatedAt:    time.Now(),
		}
		s.bets = append(s.bets, placed)
		betsPlaced.Inc()
		return nil
	})
	if err != nil {
		return domain.Bet{}, err
	}

	if s.publ != nil {
		ev := events.BetPlaced{
			BetID:        placed.ID,
			UserID:       placed.UserID,
			MatchID:      placed.MatchID,
			Amount:       placed.Amount,
			SelectedCock: placed.SelectedCock,
			Odds:         odds,
			PotentialWin: placed.PotentialWin,
		}
		if perr := s.publ.PublishBetPlaced(ctx, ev); perr != nil {
			s.st.log.Warn("publish bet_placed", zap.Int64("bet_id", placed.ID), zap.Error(perr))
		}
	}
	return placed, nil
}

// Reconcile aplica o desfecho vindo do bet_confirmed. betID desconhecido
// é logado e ignorado: a aposta pode ter saído do estado por um fetch.
func (s *Bets) Reconcile(betID int64, conf domain.BetConfirmation, reason string) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	for i := range s.bets {
		if s.bets[i].ID == betID {
			s.bets[i].Confirmation = conf
			betsReconciled.WithLabelValues(string(conf)).Inc()
			s.st.log.Info("bet reconciled",
				zap.Int64("bet_id", betID),
				zap.String("confirmation", string(conf)),
				zap.String("reason", reason),
			)
			return
		}
	}
	s.st.log.Warn("reconcile for unknown bet", zap.Int64("bet_id", betID))
}

func (s *Bets) ClearError() { s.st.clearError() }

func (s *Bets) Snapshot() BetsSnapshot {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	out := make([]domain.Bet, len(s.bets))
	copy(out, s.bets)
	return BetsSnapshot{Bets: out, Loading: s.st.loading, Err: s.st.err}
}
