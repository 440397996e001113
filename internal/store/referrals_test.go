package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

func TestReferrals_FetchComputesTotalEarnings(t *testing.T) {
	fb := &fakeBackend{referralsFn: func(_ context.Context, _ int64) ([]domain.Referral, error) {
		return []domain.Referral{
			{ID: 1, Username: "usuario1", Earnings: 50},
			{ID: 2, Username: "usuario2", Earnings: 30},
			{ID: 3, Username: "usuario3", Earnings: 20},
		}, nil
	}}
	s := NewReferrals(fb, &fakeSession{id: 1, auth: true}, zap.NewNop())

	require.NoError(t, s.Fetch(context.Background()))

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)
	require.Len(t, snap.Referrals, 3)
	assert.EqualValues(t, 100, snap.TotalEarnings)
}

func TestReferrals_FetchFailureKeepsPriorAggregate(t *testing.T) {
	boom := errors.New("boom")
	fail := false
	fb := &fakeBackend{referralsFn: func(_ context.Context, _ int64) ([]domain.Referral, error) {
		if fail {
			return nil, boom
		}
		return []domain.Referral{{ID: 1, Earnings: 50}}, nil
	}}
	s := NewReferrals(fb, &fakeSession{id: 1, auth: true}, zap.NewNop())
	require.NoError(t, s.Fetch(context.Background()))

	fail = true
	require.ErrorIs(t, s.Fetch(context.Background()), boom)

	snap := s.Snapshot()
	require.Len(t, snap.Referrals, 1)
	assert.EqualValues(t, 50, snap.TotalEarnings)
}

func TestReferrals_FetchRequiresAuth(t *testing.T) {
	s := NewReferrals(&fakeBackend{}, &fakeSession{auth: false}, zap.NewNop())
	assert.ErrorIs(t, s.Fetch(context.Background()), ErrNotAuthenticated)
}
