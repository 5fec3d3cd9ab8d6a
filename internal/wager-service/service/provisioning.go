package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	lndto "github.com/radieske/lightning-wager-poc/internal/wager-service/lnbits/dto"
)

// Provisioning cria contas/carteiras no gateway para novos usuários e faz o
// funding inicial a partir da casa. Colaborador externo ao core de apostas;
// fica aqui porque o deployment atual expõe a operação na mesma API.
type Provisioning struct {
	log           *zap.Logger
	gw            PaymentGateway
	houseAdminKey string
	fundingSats   int64
}

func NewProvisioning(log *zap.Logger, gw PaymentGateway, houseAdminKey string, fundingSats int64) *Provisioning {
	return &Provisioning{log: log, gw: gw, houseAdminKey: houseAdminKey, fundingSats: fundingSats}
}

// CreateWallet cria conta + carteira para o usuário e tenta o funding inicial.
// O funding é best-effort: a carteira volta pro usuário mesmo se ele falhar.
func (s *Provisioning) CreateWallet(ctx context.Context, username string) (*lndto.Wallet, bool, error) {
	account, err := s.gw.CreateAccount(ctx, username)
	if err != nil {
		return nil, false, fmt.Errorf("create account: %w", err)
	}

	wallet, err := s.gw.CreateWallet(ctx, account.AdminKey, username+"'s wallet")
	if err != nil {
		return nil, false, fmt.Errorf("create wallet: %w", err)
	}

	funded := true
	if err := s.fund(ctx, wallet.InKey); err != nil {
		funded = false
		s.log.Warn("initial funding failed", zap.String("walletId", wallet.ID), zap.Error(err))
	}
	return wallet, funded, nil
}

// fund move sats iniciais da casa para a carteira recém-criada.
func (s *Provisioning) fund(ctx context.Context, walletInkey string) error {
	inv, err := s.gw.CreateInvoice(ctx, walletInkey, s.fundingSats, "Initial funding")
	if err != nil {
		return err
	}
	_, err = s.gw.PayInvoice(ctx, s.houseAdminKey, inv.Bolt11)
	return err
}
