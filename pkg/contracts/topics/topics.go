package topics

const (
	// Bets
	BetPlaced    = "bet_placed"
	BetConfirmed = "bet_confirmed"

	// DLQs
	BetPlacedDLQ    = "bet_placed_dlq"
	BetConfirmedDLQ = "bet_confirmed_dlq"
)
