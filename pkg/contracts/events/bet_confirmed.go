package events

import "time"

const (
	StatusConfirmed = "CONFIRMED"
	StatusRejected  = "REJECTED"
)

// Evento emitido pelo bet-confirmation-worker após processar uma aposta.
type BetConfirmed struct {
	BetID       int64     `json:"betId"`
	UserID      int64     `json:"userId"`
	Status      string    `json:"status"` // "CONFIRMED" | "REJECTED"
	Reason      string    `json:"reason,omitempty"`
	ProviderRef string    `json:"providerRef,omitempty"`
	Ts          time.Time `json:"ts"`
}
