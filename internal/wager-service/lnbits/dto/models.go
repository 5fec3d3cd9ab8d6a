package dto

// Modelos de resposta da API do LNbits. Só os campos que o core usa.

type Account struct {
	ID       string `json:"id"`
	User     string `json:"user"`
	Name     string `json:"name"`
	AdminKey string `json:"adminkey"`
	InKey    string `json:"inkey"`
}

type Wallet struct {
	ID       string `json:"id"`
	User     string `json:"user"`
	Name     string `json:"name"`
	AdminKey string `json:"adminkey"`
	InKey    string `json:"inkey"`
}

// WalletInfo é o retorno do lookup por chave (inkey ou adminkey).
type WalletInfo struct {
	Name    string `json:"name"`
	Balance int64  `json:"balance"` // msats
}

// Invoice é uma cobrança criada por uma carteira, pagável por outra.
type Invoice struct {
	CheckingID  string `json:"checking_id"`
	PaymentHash string `json:"payment_hash"`
	Amount      int64  `json:"amount"`
	Bolt11      string `json:"bolt11"` // payment request a ser pago
	Status      string `json:"status"`
	Memo        string `json:"memo"`
}

// Payment é o resultado de um pagamento de invoice.
type Payment struct {
	CheckingID  string `json:"checking_id"`
	PaymentHash string `json:"payment_hash"`
	Status      string `json:"status"`
}
