package store

import (
	"context"
	"sync"

	"github.com/radieske/gallo-bet-platform/pkg/contracts/events"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// fakeBackend implementa backend.Client com comportamento programável
// por função; os testes de corrida usam canais dentro das funções para
// segurar uma resposta em voo.
type fakeBackend struct {
	loginFn         func(ctx context.Context, username, password string) (domain.User, error)
	registerFn      func(ctx context.Context, username, phone, password string) (domain.User, error)
	matchesFn       func(ctx context.Context) ([]domain.Match, error)
	betsFn          func(ctx context.Context, userID int64) ([]domain.Bet, error)
	notificationsFn func(ctx context.Context, userID int64) ([]domain.Notification, error)
	referralsFn     func(ctx context.Context, userID int64) ([]domain.Referral, error)
	transactionsFn  func(ctx context.Context, userID int64) ([]domain.Transaction, error)
}

func (f *fakeBackend) Login(ctx context.Context, u, p string) (domain.User, error) {
	if f.loginFn == nil {
		return domain.User{}, nil
	}
	return f.loginFn(ctx, u, p)
}

func (f *fakeBackend) Register(ctx context.Context, u, ph, p string) (domain.User, error) {
	if f.registerFn == nil {
		return domain.User{}, nil
	}
	return f.registerFn(ctx, u, ph, p)
}

func (f *fakeBackend) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	if f.matchesFn == nil {
		return nil, nil
	}
	return f.matchesFn(ctx)
}

func (f *fakeBackend) FetchUserBets(ctx context.Context, id int64) ([]domain.Bet, error) {
	if f.betsFn == nil {
		return nil, nil
	}
	return f.betsFn(ctx, id)
}

func (f *fakeBackend) FetchNotifications(ctx context.Context, id int64) ([]domain.Notification, error) {
	if f.notificationsFn == nil {
		return nil, nil
	}
	return f.notificationsFn(ctx, id)
}

func (f *fakeBackend) FetchReferrals(ctx context.Context, id int64) ([]domain.Referral, error) {
	if f.referralsFn == nil {
		return nil, nil
	}
	return f.referralsFn(ctx, id)
}

func (f *fakeBackend) FetchTransactions(ctx context.Context, id int64) ([]domain.Transaction, error) {
	if f.transactionsFn == nil {
		return nil, nil
	}
	return f.transactionsFn(ctx, id)
}

// fakeSession fixa a identidade do usuário corrente.
type fakeSession struct {
	id   int64
	auth bool
}

func (f *fakeSession) UserID() (int64, bool) { return f.id, f.auth }

// fakePublisher captura os eventos bet_placed publicados.
type fakePublisher struct {
	mu     sync.Mutex
	events []events.BetPlaced
	err    error
}

func (f *fakePublisher) PublishBetPlaced(_ context.Context, e events.BetPlaced) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakePublisher) published() []events.BetPlaced {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]events.BetPlaced, len(f.events))
	copy(out, f.events)
	return out
}
