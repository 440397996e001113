package mock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

func TestLogin(t *testing.T) {
	c := New(0)

	u, err := c.Login(context.Background(), "demo", "password")
	require.NoError(t, err)
	assert.EqualValues(t, 1, u.ID)
	assert.EqualValues(t, 1000, u.Balance)
	assert.True(t, u.IsVip)
	assert.Equal(t, "DEMO123", u.ReferralCode)

	_, err = c.Login(context.Background(), "demo", "nope")
	assert.ErrorIs(t, err, backend.ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	c := New(0)

	u, err := c.Register(context.Background(), "nuevo", "555-0100", "secreta")
	require.NoError(t, err)
	assert.EqualValues(t, 0, u.Balance)
	assert.False(t, u.IsVip)
	assert.Regexp(t, `^NEW\d+$`, u.ReferralCode)

	// ids de usuário não se repetem entre registros
	u2, err := c.Register(context.Background(), "otro", "555-0101", "secreta")
	require.NoError(t, err)
	assert.Greater(t, u2.ID, u.ID)

	_, err = c.Register(context.Background(), "", "555-0100", "secreta")
	assert.ErrorIs(t, err, backend.ErrIncompleteRegistration)
}

func TestFetchDatasets(t *testing.T) {
	c := New(0)
	ctx := context.Background()

	ms, err := c.FetchMatches(ctx)
	require.NoError(t, err)
	require.Len(t, ms, 4)
	assert.Equal(t, domain.MatchFinished, ms[3].Status)
	require.NotNil(t, ms[3].Winner)
	assert.Equal(t, 1, *ms[3].Winner)

	bs, err := c.FetchUserBets(ctx, 7)
	require.NoError(t, err)
	require.Len(t, bs, 3)
	for _, b := range bs {
		assert.EqualValues(t, 7, b.UserID, "apostas escopadas ao usuário pedido")
	}

	ns, err := c.FetchNotifications(ctx, 7)
	require.NoError(t, err)
	require.Len(t, ns, 3)

	rs, err := c.FetchReferrals(ctx, 7)
	require.NoError(t, err)
	require.Len(t, rs, 3)

	ts, err := c.FetchTransactions(ctx, 7)
	require.NoError(t, err)
	require.Len(t, ts, 4)
}

func TestLatencyHonorsContext(t *testing.T) {
	c := New(5 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.FetchMatches(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
