package events

// Evento publicado no tópico "bet_placed" quando o store de apostas
// aceita uma aposta de forma otimista.
type BetPlaced struct {
	BetID        int64   `json:"betId"`
	UserID       int64   `json:"userId"`
	MatchID      int64   `json:"matchId"`
	Amount       float64 `json:"amount"`
	SelectedCock int     `json:"selectedCock"` // 1 ou 2
	Odds         float64 `json:"odds"`         // odd que o cliente viu
	PotentialWin float64 `json:"potentialWin"`
	TsUnixMs     int64   `json:"ts_unix_ms"`
}
