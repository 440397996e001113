package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/internal/backend-simulator/dto"
	"github.com/radieske/gallo-bet-platform/internal/backend/httpapi"
	"github.com/radieske/gallo-bet-platform/internal/backend/mock"
)

// Sobe o simulador em httptest e fala com ele pelo client REST real,
// cobrindo as duas pontas do contrato /api/* de uma vez.
func newTestPair(t *testing.T) (*httptest.Server, *httpapi.Client) {
	t.Helper()
	srv := httptest.NewServer(NewServer(zap.NewNop(), mock.New(0)).Router())
	t.Cleanup(srv.Close)
	return srv, httpapi.New(srv.URL)
}

func TestLoginOverHTTP(t *testing.T) {
	_, cli := newTestPair(t)
	ctx := context.Background()

	u, err := cli.Login(ctx, "demo", "password")
	require.NoError(t, err)
	assert.EqualValues(t, 1000, u.Balance)
	assert.Equal(t, "DEMO123", u.ReferralCode)

	_, err = cli.Login(ctx, "demo", "wrong")
	assert.ErrorIs(t, err, backend.ErrInvalidCredentials)
}

func TestRegisterOverHTTP(t *testing.T) {
	_, cli := newTestPair(t)
	ctx := context.Background()

	u, err := cli.Register(ctx, "nuevo", "555-0100", "secreta")
	require.NoError(t, err)
	assert.Regexp(t, `^NEW\d+$`, u.ReferralCode)

	_, err = cli.Register(ctx, "nuevo", "", "secreta")
	assert.ErrorIs(t, err, backend.ErrIncompleteRegistration)
}

func TestFetchEndpoints(t *testing.T) {
	_, cli := newTestPair(t)
	ctx := context.Background()

	ms, err := cli.FetchMatches(ctx)
	require.NoError(t, err)
	assert.Len(t, ms, 4)

	bs, err := cli.FetchUserBets(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, bs, 3)

	ns, err := cli.FetchNotifications(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, ns, 3)

	rs, err := cli.FetchReferrals(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rs, 3)

	ts, err := cli.FetchTransactions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, ts, 4)
}

func TestFetchBetsRequiresUserID(t *testing.T) {
	srv, _ := newTestPair(t)

	res, err := http.Get(srv.URL + "/api/bets")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestTransportFailureKind(t *testing.T) {
	cli := httpapi.New("http://127.0.0.1:1") // nada escutando
	_, err := cli.FetchMatches(context.Background())
	assert.ErrorIs(t, err, backend.ErrTransport)
}

func TestConfirmEndpoint(t *testing.T) {
	srv, _ := newTestPair(t)

	body, _ := json.Marshal(dto.ConfirmReq{BetID: 4, UserID: 1, MatchID: 1, Amount: 100, Odds: 1.8, PotentialWin: 180})
	res, err := http.Post(srv.URL+"/backend/confirm", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out dto.ConfirmResp
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	switch out.Status {
	case dto.StatusConfirmed:
		assert.Contains(t, out.ProviderRef, "SUP-")
	case dto.StatusRejected:
		assert.Equal(t, "backend_reject_mock", out.Reason)
	default:
		t.Fatalf("status inesperado: %q", out.Status)
	}
}
