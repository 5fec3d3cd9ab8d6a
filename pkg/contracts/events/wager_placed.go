package events

type WagerPlaced struct {
	MatchID       string  `json:"match_id"`
	Outcome       string  `json:"outcome"`
	AmountSats    int64   `json:"amount_sats"`
	Odds          float64 `json:"odds"`
	TransactionID string  `json:"transaction_id"` // checking_id do pagamento no gateway
	TsUnixMs      int64   `json:"ts_unix_ms"`
}
