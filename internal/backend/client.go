package backend

import (
	"context"
	"errors"

	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// Erros de negócio que o backend pode sinalizar. Falhas de transporte
// são embrulhadas em ErrTransport para o chamador distinguir via errors.Is.
var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrIncompleteRegistration = errors.New("incomplete registration data")
	ErrTransport              = errors.New("backend unreachable")
	ErrNotFound               = errors.New("not found")
)

// Client define o contrato com o backend da plataforma: uma operação por
// ação de store. A colocação de aposta em si é otimista no cliente e não
// passa por aqui (reconciliação acontece via evento bet_confirmed).
type Client interface {
	Login(ctx context.Context, username, password string) (domain.User, error)
	Register(ctx context.Context, username, phone, password string) (domain.User, error)

	FetchMatches(ctx context.Context) ([]domain.Match, error)
	FetchUserBets(ctx context.Context, userID int64) ([]domain.Bet, error)
	FetchNotifications(ctx context.Context, userID int64) ([]domain.Notification, error)
	FetchReferrals(ctx context.Context, userID int64) ([]domain.Referral, error)
	FetchTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error)
}
