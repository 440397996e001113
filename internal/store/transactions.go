package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// Transactions é o extrato de movimentações do usuário; somente-leitura,
// mesmo contrato genérico dos demais stores.
type Transactions struct {
	st      state
	backend backend.Client
	session CurrentUser

	transactions []domain.Transaction
}

type TransactionsSnapshot struct {
	Transactions []domain.Transaction
	Loading      bool
	Err          error
}

func NewTransactions(b backend.Client, session CurrentUser, log *zap.Logger) *Transactions {
	return &Transactions{st: newState("transactions", log), backend: b, session: session}
}

func (s *Transactions) Fetch(ctx context.Context) error {
	uid, ok := s.session.UserID()
	if !ok {
		seq := s.st.begin()
		return s.st.settle(seq, func() error { return ErrNotAuthenticated })
	}
	seq := s.st.begin()
	ts, cerr := s.backend.FetchTransactions(ctx, uid)
	return s.st.settle(seq, func() error {
		if cerr != nil {
			return cerr
		}
		s.transactions = ts
		return nil
	})
}

func (s *Transactions) ClearError() { s.st.clearError() }

func (s *Transactions) Snapshot() TransactionsSnapshot {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return TransactionsSnapshot{Transactions: out, Loading: s.st.loading, Err: s.st.err}
}
