package mock

import (
	"time"

	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// DemoUser é o usuário aceito pelo login simulado.
func DemoUser() domain.User {
	return domain.User{
		ID:             1,
		Username:       DemoUsername,
		Balance:        1000,
		TotalInvested:  500,
		TotalEarnings:  1200,
		ProfilePicture: "https://images.unsplash.com/photo-1633332755192-727a05c4013d?auto=format&fit=crop&w=1180&q=80",
		ReferralCode:   "DEMO123",
		IsVip:          true,
	}
}

// Catálogo fixo de peleas simuladas. Cada chamada devolve um slice novo
// para preservar a semântica de substituição integral nos stores.
func Matches() []domain.Match {
	now := time.Now()
	one := 1
	return []domain.Match{
		{ID: 1, Cock1: "El Rayo", Cock2: "Tornado Negro", Odds1: 1.8, Odds2: 2.1, StartTime: now.Add(time.Hour), Status: domain.MatchUpcoming},
		{ID: 2, Cock1: "Furia Roja", Cock2: "Águila Dorada", Odds1: 2.5, Odds2: 1.5, StartTime: now.Add(30 * time.Minute), Status: domain.MatchUpcoming},
		{ID: 3, Cock1: "Relámpago", Cock2: "Tormenta", Odds1: 1.9, Odds2: 1.9, StartTime: now, Status: domain.MatchLive},
		{ID: 4, Cock1: "Vengador", Cock2: "Destructor", Odds1: 1.7, Odds2: 2.2, StartTime: now.Add(-time.Hour), Status: domain.MatchFinished, Winner: &one},
	}
}

func Bets(userID int64) []domain.Bet {
	now := time.Now()
	return []domain.Bet{
		{ID: 1, MatchID: 1, UserID: userID, Amount: 100, SelectedCock: 1, PotentialWin: 180, Status: domain.BetPending, Confirmation: domain.ConfirmationConfirmed, CreatedAt: now.Add(-24 * time.Hour)},
		{ID: 2, MatchID: 4, UserID: userID, Amount: 200, SelectedCock: 1, PotentialWin: 340, Status: domain.BetWon, Confirmation: domain.ConfirmationConfirmed, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 3, MatchID: 3, UserID: userID, Amount: 150, SelectedCock: 2, PotentialWin: 285, Status: domain.BetPending, Confirmation: domain.ConfirmationConfirmed, CreatedAt: now},
	}
}

func Notifications(userID int64) []domain.Notification {
	now := time.Now()
	return []domain.Notification{
		{ID: 1, UserID: userID, Message: "Has ganado 340 en tu apuesta reciente", Read: false, CreatedAt: now.Add(-time.Hour)},
		{ID: 2, UserID: userID, Message: "Nuevo usuario registrado con tu código de referido", Read: false, CreatedAt: now.Add(-24 * time.Hour)},
		{ID: 3, UserID: userID, Message: "Depósito de 500 confirmado en tu cuenta", Read: true, CreatedAt: now.Add(-48 * time.Hour)},
	}
}

func Referrals() []domain.Referral {
	now := time.Now()
	return []domain.Referral{
		{ID: 1, Username: "usuario1", JoinDate: now.Add(-30 * 24 * time.Hour), Earnings: 50},
		{ID: 2, Username: "usuario2", JoinDate: now.Add(-15 * 24 * time.Hour), Earnings: 30},
		{ID: 3, Username: "usuario3", JoinDate: now.Add(-5 * 24 * time.Hour), Earnings: 20},
	}
}

func Transactions(userID int64) []domain.Transaction {
	now := time.Now()
	return []domain.Transaction{
		{ID: 1, UserID: userID, Type: domain.TxDeposit, Amount: 500, Status: domain.TxCompleted, CreatedAt: now.Add(-72 * time.Hour)},
		{ID: 2, UserID: userID, Type: domain.TxBet, Amount: 200, Status: domain.TxCompleted, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 3, UserID: userID, Type: domain.TxWin, Amount: 340, Status: domain.TxCompleted, CreatedAt: now.Add(-47 * time.Hour)},
		{ID: 4, UserID: userID, Type: domain.TxReferral, Amount: 100, Status: domain.TxPending, CreatedAt: now.Add(-2 * time.Hour)},
	}
}
