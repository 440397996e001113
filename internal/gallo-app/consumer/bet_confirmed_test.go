package consumer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/pkg/contracts/events"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

type recordedReconcile struct {
	betID  int64
	conf   domain.BetConfirmation
	reason string
}

type fakeReconciler struct {
	calls []recordedReconcile
}

func (f *fakeReconciler) Reconcile(betID int64, conf domain.BetConfirmation, reason string) {
	f.calls = append(f.calls, recordedReconcile{betID, conf, reason})
}

func TestHandleConfirmed(t *testing.T) {
	rec := &fakeReconciler{}
	c := &BetConfirmedConsumer{Log: zap.NewNop(), Bets: rec}

	b, err := json.Marshal(events.BetConfirmed{BetID: 7, UserID: 1, Status: events.StatusConfirmed, ProviderRef: "SUP-abc123"})
	require.NoError(t, err)
	c.handle(b)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, int64(7), rec.calls[0].betID)
	assert.Equal(t, domain.ConfirmationConfirmed, rec.calls[0].conf)
}

func TestHandleRejected(t *testing.T) {
	rec := &fakeReconciler{}
	c := &BetConfirmedConsumer{Log: zap.NewNop(), Bets: rec}

	b, err := json.Marshal(events.BetConfirmed{BetID: 9, UserID: 1, Status: events.StatusRejected, Reason: "backend_reject_mock"})
	require.NoError(t, err)
	c.handle(b)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, domain.ConfirmationRejected, rec.calls[0].conf)
	assert.Equal(t, "backend_reject_mock", rec.calls[0].reason)
}

func TestHandleInvalidPayload(t *testing.T) {
	rec := &fakeReconciler{}
	c := &BetConfirmedConsumer{Log: zap.NewNop(), Bets: rec}

	c.handle([]byte("not json"))

	assert.Empty(t, rec.calls)
}
