package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/lightning-wager-poc/internal/wager-service/ledger"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/lnbits"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/metrics"
)

// Placement coleta a aposta do usuário para a carteira da casa e só então
// registra o participante no ledger. Nenhuma chamada ao gateway acontece
// segurando lock do ledger.
type Placement struct {
	log        *zap.Logger
	ledger     *ledger.Ledger
	gw         PaymentGateway
	houseInkey string // chave de recebimento da casa (a casa emite o invoice)
}

func NewPlacement(log *zap.Logger, l *ledger.Ledger, gw PaymentGateway, houseInkey string) *Placement {
	return &Placement{log: log, ledger: l, gw: gw, houseInkey: houseInkey}
}

// PlaceBet executa o protocolo de colocação:
// valida carteira -> invoice da casa -> pagamento pelo apostador -> append no ledger.
// Até o pagamento confirmado, nenhuma falha muta o ledger. Se a partida fechar
// entre o pagamento e o append, retorna ErrPaidNotRecorded (fundos já moveram).
func (s *Placement) PlaceBet(ctx context.Context, matchID, outcome, adminKey, inKey string, odds float64, amount int64) (string, error) {
	// 1) A chave precisa resolver para uma carteira real antes de mover fundos
	if _, err := s.gw.GetWallet(ctx, adminKey); err != nil {
		metrics.PlacementFailed("wallet")
		if errors.Is(err, lnbits.ErrWalletNotFound) {
			return "", ErrInvalidWallet
		}
		// Indisponibilidade do gateway não é credencial inválida
		return "", fmt.Errorf("%w: %v", ErrWalletValidation, err)
	}

	// 2) A casa emite o invoice; o apostador vai pagá-lo (inversão proposital
	//    em relação à resolução, onde o vencedor emite e a casa paga)
	memo := fmt.Sprintf("Bet on %s: %s", matchID, outcome)
	inv, err := s.gw.CreateInvoice(ctx, s.houseInkey, amount, memo)
	if err != nil {
		metrics.PlacementFailed("invoice")
		return "", fmt.Errorf("%w: %v", ErrInvoiceCreation, err)
	}

	// 3) Pagamento a partir da carteira do apostador. Se falhar aqui, o invoice
	//    fica órfão na carteira da casa; vazamento aceito, sem reconciliação
	payment, err := s.gw.PayInvoice(ctx, adminKey, inv.Bolt11)
	if err != nil {
		metrics.PlacementFailed("payment")
		s.log.Warn("payment failed, invoice left unpaid",
			zap.String("matchId", matchID),
			zap.String("checkingId", inv.CheckingID),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	// 4) Só com pagamento confirmado o participante entra no ledger
	p := ledger.Participant{
		AdminKey:   adminKey,
		InKey:      inKey,
		AmountSats: amount,
		Odds:       odds,
		PlacedAt:   time.Now(),
	}
	if err := s.ledger.AppendParticipant(matchID, outcome, p); err != nil {
		// Partida fechou durante a ida ao gateway: fundos coletados sem registro.
		// Caso de reconciliação, nunca um erro genérico.
		metrics.PlacementFailed("ledger")
		metrics.PaidNotRecorded()
		s.log.Error("bet paid but match closed before append",
			zap.String("matchId", matchID),
			zap.String("outcome", outcome),
			zap.String("transactionId", payment.CheckingID),
			zap.Int64("amount", amount),
		)
		return "", fmt.Errorf("%w (transaction %s)", ErrPaidNotRecorded, payment.CheckingID)
	}

	metrics.WagerPlaced()
	return payment.CheckingID, nil
}
