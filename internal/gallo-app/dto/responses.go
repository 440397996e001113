package dto

import "github.com/radieske/gallo-bet-platform/pkg/domain"

// Respostas espelham os snapshots dos stores: dados + isLoading + error
// (string legível; null quando não há erro).

type SessionResponse struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsLoading       bool         `json:"isLoading"`
	Error           *string      `json:"error"`
}

type MatchesResponse struct {
	Matches   []domain.Match `json:"matches"`
	IsLoading bool           `json:"isLoading"`
	Error     *string        `json:"error"`
}

type BetsResponse struct {
	Bets      []domain.Bet `json:"bets"`
	IsLoading bool         `json:"isLoading"`
	Error     *string      `json:"error"`
}

type PlaceBetResponse struct {
	Bet    domain.Bet `json:"bet"`
	Status string     `json:"status"` // PENDING_CONFIRMATION
}

type NotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
	IsLoading     bool                  `json:"isLoading"`
	Error         *string               `json:"error"`
}

type ReferralsResponse struct {
	Referrals     []domain.Referral `json:"referrals"`
	TotalEarnings float64           `json:"totalEarnings"`
	IsLoading     bool              `json:"isLoading"`
	Error         *string           `json:"error"`
}

type TransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	IsLoading    bool                 `json:"isLoading"`
	Error        *string              `json:"error"`
}

// ErrMessage converte um erro para o campo error dos snapshots.
func ErrMessage(err error) *string {
	if err == nil {
		return nil
	}
	msg := err.Error()
	return &msg
}
