package domain

import "time"

// Status possíveis de uma pelea.
type MatchStatus string

const (
	MatchUpcoming MatchStatus = "upcoming"
	MatchLive     MatchStatus = "live"
	MatchFinished MatchStatus = "finished"
)

// Status de liquidação de uma aposta (definido pelo backend).
type BetStatus string

const (
	BetPending BetStatus = "pending"
	BetWon     BetStatus = "won"
	BetLost    BetStatus = "lost"
)

// Confirmação da aposta junto ao backend. Ortogonal ao status de
// liquidação: uma aposta aceita continua "pending" até a pelea terminar.
type BetConfirmation string

const (
	ConfirmationPending   BetConfirmation = "pending"
	ConfirmationConfirmed BetConfirmation = "confirmed"
	ConfirmationRejected  BetConfirmation = "rejected"
)

// User é o registro da sessão autenticada. É a única entidade durável
// do lado do cliente (vault de sessão).
type User struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Phone          string  `json:"phone,omitempty"`
	Balance        float64 `json:"balance"`
	TotalInvested  float64 `json:"totalInvested,omitempty"`
	TotalEarnings  float64 `json:"totalEarnings,omitempty"`
	ProfilePicture string  `json:"profilePicture,omitempty"`
	ReferralCode   string  `json:"referralCode,omitempty"`
	IsVip          bool    `json:"isVip,omitempty"`
}

// Match é um snapshot imutável por fetch; o cliente nunca muta status
// nem winner, isso é responsabilidade exclusiva do backend.
type Match struct {
	ID        int64       `json:"id"`
	Cock1     string      `json:"cock1"`
	Cock2     string      `json:"cock2"`
	Odds1     float64     `json:"odds1"`
	Odds2     float64     `json:"odds2"`
	StartTime time.Time   `json:"startTime"`
	Status    MatchStatus `json:"status"`
	Winner    *int        `json:"winner,omitempty"` // 1 ou 2; nil enquanto não finalizada
}

// Bet é uma aposta do usuário. PotentialWin = amount * odds no momento
// da criação do registro.
type Bet struct {
	ID           int64           `json:"id"`
	MatchID      int64           `json:"matchId"`
	UserID       int64           `json:"userId"`
	Amount       float64         `json:"amount"`
	SelectedCock int             `json:"selectedCock"` // 1 ou 2
	PotentialWin float64         `json:"potentialWin"`
	Status       BetStatus       `json:"status"`
	Confirmation BetConfirmation `json:"confirmation"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Referral é um agregado somente-leitura; o total de ganhos da lista é
// recalculado a cada fetch.
type Referral struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	JoinDate time.Time `json:"joinDate"`
	Earnings float64   `json:"earnings"`
}

// Tipos de movimentação de saldo.
type TransactionType string

const (
	TxDeposit    TransactionType = "deposit"
	TxWithdrawal TransactionType = "withdrawal"
	TxBet        TransactionType = "bet"
	TxWin        TransactionType = "win"
	TxReferral   TransactionType = "referral"
)

type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxCompleted TransactionStatus = "completed"
	TxRejected  TransactionStatus = "rejected"
)

// Transaction é o extrato de movimentações do usuário (somente-leitura).
type Transaction struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"userId"`
	Type      TransactionType   `json:"type"`
	Amount    float64           `json:"amount"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}
