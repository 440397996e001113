package dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type PlaceBetRequest struct {
	MatchID      int64   `json:"matchId"`
	Amount       float64 `json:"amount"`
	SelectedCock int     `json:"selectedCock"` // 1 | 2
	Odds         float64 `json:"odds"`         // odd que o cliente viu
}
