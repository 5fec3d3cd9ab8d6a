package dto

// Espelhos locais dos eventos consumidos; o worker só depende dos campos que usa.

type WagerPlaced struct {
	MatchID       string  `json:"match_id"`
	Outcome       string  `json:"outcome"`
	AmountSats    int64   `json:"amount_sats"`
	Odds          float64 `json:"odds"`
	TransactionID string  `json:"transaction_id"`
	TsUnixMs      int64   `json:"ts_unix_ms"`
}

type WagerResolved struct {
	MatchID        string `json:"match_id"`
	WinningOutcome string `json:"winning_outcome"`
	Winners        int    `json:"winners"`
	Payouts        int    `json:"payouts"`
}
