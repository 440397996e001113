package dto

const (
	StatusConfirmed = "CONFIRMED"
	StatusRejected  = "REJECTED"
)

type ConfirmReq struct {
	BetID        int64   `json:"betId"`
	UserID       int64   `json:"userId"`
	MatchID      int64   `json:"matchId"`
	Amount       float64 `json:"amount"`
	Odds         float64 `json:"odds"`
	PotentialWin float64 `json:"potentialWin"`
}

type ConfirmResp struct {
	Status      string `json:"status"` // CONFIRMED | REJECTED
	Reason      string `json:"reason,omitempty"`
	ProviderRef string `json:"providerRef,omitempty"`
}
