package dto

type PlaceBetRequest struct {
	MatchID         string  `json:"match_id"`
	SelectedOutcome string  `json:"selected_outcome"`
	WalletAdminkey  string  `json:"wallet_adminkey"`
	WalletInkey     string  `json:"wallet_inkey"`
	Odds            float64 `json:"odds"`
	Amount          int64   `json:"amount"` // sats
}

type ResolveBetRequest struct {
	MatchID        string `json:"match_id"`
	WinningOutcome string `json:"winning_outcome"`
}

type CreateWalletRequest struct {
	Username string `json:"username"`
}
