package mock

import (
	"context"
	"math/rand"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// Credenciais aceitas pelo backend simulado.
const (
	DemoUsername = "demo"
	DemoPassword = "password"
)

// Client é o backend stub: datasets fixos em memória com latência
// artificial. Implementa backend.Client tanto in-process (testes, app em
// modo standalone) quanto como núcleo do backend-simulator HTTP.
type Client struct {
	Latency time.Duration

	nextUserID atomic.Int64
}

func New(latency time.Duration) *Client {
	c := &Client{Latency: latency}
	c.nextUserID.Store(2) // id 1 é o usuário demo
	return c
}

// delay simula a ida ao backend respeitando cancelamento de contexto.
func (c *Client) delay(ctx context.Context) error {
	if c.Latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.Latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Client) Login(ctx context.Context, username, password string) (domain.User, error) {
	if err := c.delay(ctx); err != nil {
		return domain.User{}, err
	}
	if username != DemoUsername || password != DemoPassword {
		return domain.User{}, backend.ErrInvalidCredentials
	}
	return DemoUser(), nil
}

func (c *Client) Register(ctx context.Context, username, phone, password string) (domain.User, error) {
	if err := c.delay(ctx); err != nil {
		return domain.User{}, err
	}
	if username == "" || phone == "" || password == "" {
		return domain.User{}, backend.ErrIncompleteRegistration
	}
	return domain.User{
		ID:           c.nextUserID.Add(1),
		Username:     username,
		Phone:        phone,
		Balance:      0,
		ReferralCode: "NEW" + strconv.Itoa(rand.Intn(1000)),
		IsVip:        false,
	}, nil
}

func (c *Client) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return Matches(), nil
}

func (c *Client) FetchUserBets(ctx context.Context, userID int64) ([]domain.Bet, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return Bets(userID), nil
}

func (c *Client) FetchNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return Notifications(userID), nil
}

func (c *Client) FetchReferrals(ctx context.Context, userID int64) ([]domain.Referral, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return Referrals(), nil
}

func (c *Client) FetchTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return Transactions(userID), nil
}
