package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/internal/backend/mock"
	"github.com/radieske/gallo-bet-platform/internal/gallo-app/dto"
	"github.com/radieske/gallo-bet-platform/internal/session/vault"
	"github.com/radieske/gallo-bet-platform/internal/store"
)

// Sobe a fachada completa sobre o backend stub in-process e um vault em
// diretório temporário; Kafka fica de fora (publisher nil).
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := zap.NewNop()
	bcli := mock.New(0)
	v := vault.NewFile(filepath.Join(t.TempDir(), "session.json"))

	session := store.NewSession(bcli, v, log)
	srv := NewServer(
		log,
		session,
		store.NewMatches(bcli, log),
		store.NewBets(bcli, session, nil, log),
		store.NewNotifications(bcli, session, log),
		store.NewReferrals(bcli, session, log),
		store.NewTransactions(bcli, session, log),
	)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return res
}

func decode[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	defer res.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func login(t *testing.T, ts *httptest.Server) {
	t.Helper()
	res := postJSON(t, ts.URL+"/v1/session/login", dto.LoginRequest{Username: "demo", Password: "password"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()
}

func TestSessionFlow(t *testing.T) {
	ts := newTestServer(t)

	// anônimo
	res, err := http.Get(ts.URL + "/v1/session")
	require.NoError(t, err)
	snap := decode[dto.SessionResponse](t, res)
	assert.False(t, snap.IsAuthenticated)

	// credenciais erradas
	res = postJSON(t, ts.URL+"/v1/session/login", dto.LoginRequest{Username: "demo", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	res.Body.Close()

	// login demo
	res = postJSON(t, ts.URL+"/v1/session/login", dto.LoginRequest{Username: "demo", Password: "password"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	snap = decode[dto.SessionResponse](t, res)
	require.True(t, snap.IsAuthenticated)
	require.NotNil(t, snap.User)
	assert.EqualValues(t, 1000, snap.User.Balance)

	// logout
	res = postJSON(t, ts.URL+"/v1/session/logout", struct{}{})
	require.Equal(t, http.StatusOK, res.StatusCode)
	snap = decode[dto.SessionResponse](t, res)
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)
}

func TestRegisterEndpoint(t *testing.T) {
	ts := newTestServer(t)

	res := postJSON(t, ts.URL+"/v1/session/register", dto.RegisterRequest{Username: "nuevo", Phone: "555-0100", Password: "secreta"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	snap := decode[dto.SessionResponse](t, res)
	require.True(t, snap.IsAuthenticated)
	assert.Regexp(t, `^NEW\d+$`, snap.User.ReferralCode)

	res = postJSON(t, ts.URL+"/v1/session/register", dto.RegisterRequest{Username: "nuevo"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()
}

func TestMatchesEndpoint(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/v1/matches")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	out := decode[dto.MatchesResponse](t, res)
	assert.False(t, out.IsLoading)
	assert.Nil(t, out.Error)
	assert.Len(t, out.Matches, 4)
}

func TestBetsEndpoints(t *testing.T) {
	ts := newTestServer(t)

	// sem sessão: 401
	res, err := http.Get(ts.URL + "/v1/bets")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	res.Body.Close()

	login(t, ts)

	res, err = http.Get(ts.URL + "/v1/bets")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	out := decode[dto.BetsResponse](t, res)
	require.Len(t, out.Bets, 3)

	// aposta otimista: id = max + 1, potentialWin = amount * odds
	res = postJSON(t, ts.URL+"/v1/bets", dto.PlaceBetRequest{MatchID: 1, Amount: 100, SelectedCock: 1, Odds: 1.8})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	placed := decode[dto.PlaceBetResponse](t, res)
	assert.Equal(t, "PENDING_CONFIRMATION", placed.Status)
	assert.EqualValues(t, 4, placed.Bet.ID)
	assert.EqualValues(t, 180, placed.Bet.PotentialWin)

	// parâmetros fora do domínio: 400
	res = postJSON(t, ts.URL+"/v1/bets", dto.PlaceBetRequest{MatchID: 1, Amount: -5, SelectedCock: 1, Odds: 1.8})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()
}

func TestNotificationsEndpoints(t *testing.T) {
	ts := newTestServer(t)
	login(t, ts)

	res, err := http.Get(ts.URL + "/v1/notifications")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	out := decode[dto.NotificationsResponse](t, res)
	assert.Equal(t, 2, out.UnreadCount)

	res = postJSON(t, ts.URL+"/v1/notifications/1/read", struct{}{})
	require.Equal(t, http.StatusOK, res.StatusCode)
	out = decode[dto.NotificationsResponse](t, res)
	assert.Equal(t, 1, out.UnreadCount)

	res = postJSON(t, ts.URL+"/v1/notifications/read-all", struct{}{})
	require.Equal(t, http.StatusOK, res.StatusCode)
	out = decode[dto.NotificationsResponse](t, res)
	assert.Equal(t, 0, out.UnreadCount)
}

func TestReferralsAndTransactionsEndpoints(t *testing.T) {
	ts := newTestServer(t)
	login(t, ts)

	res, err := http.Get(ts.URL + "/v1/referrals")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	refs := decode[dto.ReferralsResponse](t, res)
	assert.EqualValues(t, 100, refs.TotalEarnings)

	res, err = http.Get(ts.URL + "/v1/transactions")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	txs := decode[dto.TransactionsResponse](t, res)
	assert.Len(t, txs.Transactions, 4)
}
