package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// Matches guarda a lista de peleas disponíveis para aposta. Snapshot
// imutável: transições de status (upcoming→live→finished) pertencem ao
// backend e só chegam aqui por um novo fetch integral.
type Matches struct {
	st      state
	backend backend.Client

	matches []domain.Match
}

type MatchesSnapshot struct {
	Matches []domain.Match
	Loading bool
	Err     error
}

func NewMatches(b backend.Client, log *zap.Logger) *Matches {
	return &Matches{st: newState("matches", log), backend: b}
}

func (s *Matches) Fetch(ctx context.Context) error {
	seq := s.st.begin()
	ms, cerr := s.backend.FetchMatches(ctx)
	return s.st.settle(seq, func() error {
		if cerr != nil {
			return cerr
		}
		s.matches = ms
		return nil
	})
}

func (s *Matches) ClearError() { s.st.clearError() }

func (s *Matches) Snapshot() MatchesSnapshot {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	out := make([]domain.Match, len(s.matches))
	copy(out, s.matches)
	return MatchesSnapshot{Matches: out, Loading: s.st.loading, Err: s.st.err}
}
