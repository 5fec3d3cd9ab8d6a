package topics

const (
	// Wagers
	WagerPlaced   = "wager_placed"
	WagerResolved = "wager_resolved"

	// DLQ
	WagerEventsDLQ = "wager_events_dlq"
)
