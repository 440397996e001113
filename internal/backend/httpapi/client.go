package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// Client implementa backend.Client contra a API REST do backend
// (real ou o backend-simulator). Um endpoint por ação de store.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

type credentialsReq struct {
	Username string `json:"username"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, username, password string) (domain.User, error) {
	var u domain.User
	err := c.post(ctx, "/api/login", credentialsReq{Username: username, Password: password}, &u)
	return u, err
}

func (c *Client) Register(ctx context.Context, username, phone, password string) (domain.User, error) {
	var u domain.User
	err := c.post(ctx, "/api/register", credentialsReq{Username: username, Phone: phone, Password: password}, &u)
	return u, err
}

func (c *Client) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	var out []domain.Match
	if err := c.get(ctx, "/api/matches", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchUserBets(ctx context.Context, userID int64) ([]domain.Bet, error) {
	var out []domain.Bet
	if err := c.get(ctx, "/api/bets?userId="+strconv.FormatInt(userID, 10), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.get(ctx, "/api/notifications?userId="+strconv.FormatInt(userID, 10), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchReferrals(ctx context.Context, userID int64) ([]domain.Referral, error) {
	var out []domain.Referral
	if err := c.get(ctx, "/api/referrals?userId="+strconv.FormatInt(userID, 10), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	var out []domain.Transaction
	if err := c.get(ctx, "/api/transactions?userId="+strconv.FormatInt(userID, 10), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, _ := json.Marshal(in)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrTransport, err)
	}
	return c.do(req, out)
}

// do executa a requisição e traduz status HTTP para os erros de negócio.
func (c *Client) do(req *http.Request, out any) error {
	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrTransport, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		return backend.ErrInvalidCredentials
	case res.StatusCode == http.StatusBadRequest:
		return backend.ErrIncompleteRegistration
	case res.StatusCode == http.StatusNotFound:
		return backend.ErrNotFound
	case res.StatusCode >= 300:
		return fmt.Errorf("%w: http %d", backend.ErrTransport, res.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", backend.ErrTransport, err)
	}
	return nil
}
