package service

import (
	"context"

	lndto "github.com/radieske/lightning-wager-poc/internal/wager-service/lnbits/dto"
)

// PaymentGateway é o contrato do gateway externo que os serviços consomem.
// Cada chamada é best-effort: sem idempotência, sem retry do lado do gateway.
// Nos testes, é substituído por um fake determinístico.
type PaymentGateway interface {
	CreateAccount(ctx context.Context, name string) (*lndto.Account, error)
	CreateWallet(ctx context.Context, accountAdminKey, name string) (*lndto.Wallet, error)
	GetWallet(ctx context.Context, walletKey string) (*lndto.WalletInfo, error)
	CreateInvoice(ctx context.Context, walletKey string, amountSats int64, memo string) (*lndto.Invoice, error)
	PayInvoice(ctx context.Context, walletAdminKey, bolt11 string) (*lndto.Payment, error)
}
