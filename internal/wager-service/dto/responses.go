package dto

type PlaceBetResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type ResolveBetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Payouts int    `json:"payouts"`
}

type CreateWalletResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	WalletID string `json:"wallet_id,omitempty"`
	AdminKey string `json:"adminkey,omitempty"`
	InKey    string `json:"inkey,omitempty"`
}

type BalanceResponse struct {
	Success bool   `json:"success"`
	Balance *int64 `json:"balance,omitempty"`
	Message string `json:"message,omitempty"`
}
