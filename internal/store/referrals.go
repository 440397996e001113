package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// Referrals é somente-leitura: lista de referidos e a soma agregada dos
// ganhos, recalculada a cada fetch.
type Referrals struct {
	st      state
	backend backend.Client
	session CurrentUser

	referrals     []domain.Referral
	totalEarnings float64
}

type ReferralsSnapshot struct {
	Referrals     []domain.Referral
	TotalEarnings float64
	Loading       bool
	Err           error
}

func NewReferrals(b backend.Client, session CurrentUser, log *zap.Logger) *Referrals {
	return &Referrals{st: newState("referrals", log), backend: b, session: session}
}

func (s *Referrals) Fetch(ctx context.Context) error {
	uid, ok := s.session.UserID()
	if !ok {
		seq := s.st.begin()
		return s.st.settle(seq, func() error { return ErrNotAuthenticated })
	}
	seq := s.st.begin()
	rs, cerr := s.backend.FetchReferrals(ctx, uid)
	return s.st.settle(seq, func() error {
		if cerr != nil {
			return cerr
		}
		total := 0.0
		for _, r := range rs {
			total += r.Earnings
		}
		s.referrals = rs
		s.totalEarnings = total
		return nil
	})
}

func (s *Referrals) ClearError() { s.st.clearError() }

func (s *Referrals) Snapshot() ReferralsSnapshot {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	out := make([]domain.Referral, len(s.referrals))
	copy(out, s.referrals)
	return ReferralsSnapshot{
		Referrals:     out,
		TotalEarnings: s.totalEarnings,
		Loading:       s.st.loading,
		Err:           s.st.err,
	}
}
