package service

import (
	"context"
	"fmt"
	"sync"

	lndto "github.com/radieske/lightning-wager-poc/internal/wager-service/lnbits/dto"
)

// fakeGateway é o gateway determinístico dos testes: responde sucesso por
// default e permite roteirizar falhas por chamada, sem rede.
type fakeGateway struct {
	mu sync.Mutex

	// hooks de falha; nil = comportamento default de sucesso
	getWalletErr     error
	createInvoiceErr func(walletKey string, amountSats int64) error
	payInvoiceErr    func(adminKey, bolt11 string) error

	// chamadas registradas, na ordem
	invoicesCreated []createdInvoice
	invoicesPaid    []paidInvoice
	seq             int
}

type createdInvoice struct {
	WalletKey  string
	AmountSats int64
	Memo       string
}

type paidInvoice struct {
	AdminKey string
	Bolt11   string
}

func (f *fakeGateway) CreateAccount(ctx context.Context, name string) (*lndto.Account, error) {
	return &lndto.Account{ID: "acct-1", Name: name, AdminKey: "acct-admin", InKey: "acct-in"}, nil
}

func (f *fakeGateway) CreateWallet(ctx context.Context, accountAdminKey, name string) (*lndto.Wallet, error) {
	return &lndto.Wallet{ID: "wallet-1", Name: name, AdminKey: "new-admin", InKey: "new-in"}, nil
}

func (f *fakeGateway) GetWallet(ctx context.Context, walletKey string) (*lndto.WalletInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getWalletErr != nil {
		return nil, f.getWalletErr
	}
	return &lndto.WalletInfo{Name: "wallet", Balance: 1000}, nil
}

func (f *fakeGateway) CreateInvoice(ctx context.Context, walletKey string, amountSats int64, memo string) (*lndto.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createInvoiceErr != nil {
		if err := f.createInvoiceErr(walletKey, amountSats); err != nil {
			return nil, err
		}
	}
	f.seq++
	inv := createdInvoice{WalletKey: walletKey, AmountSats: amountSats, Memo: memo}
	f.invoicesCreated = append(f.invoicesCreated, inv)
	return &lndto.Invoice{
		CheckingID: fmt.Sprintf("inv-%d", f.seq),
		Amount:     amountSats,
		Bolt11:     fmt.Sprintf("lnbc-%s-%d", walletKey, amountSats),
		Memo:       memo,
	}, nil
}

func (f *fakeGateway) PayInvoice(ctx context.Context, adminKey, bolt11 string) (*lndto.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.payInvoiceErr != nil {
		if err := f.payInvoiceErr(adminKey, bolt11); err != nil {
			return nil, err
		}
	}
	f.seq++
	f.invoicesPaid = append(f.invoicesPaid, paidInvoice{AdminKey: adminKey, Bolt11: bolt11})
	return &lndto.Payment{CheckingID: fmt.Sprintf("tx-%d", f.seq)}, nil
}

func (f *fakeGateway) created() []createdInvoice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]createdInvoice, len(f.invoicesCreated))
	copy(out, f.invoicesCreated)
	return out
}

func (f *fakeGateway) paid() []paidInvoice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]paidInvoice, len(f.invoicesPaid))
	copy(out, f.invoicesPaid)
	return out
}
