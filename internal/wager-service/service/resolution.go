package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/radieske/lightning-wager-poc/internal/wager-service/ledger"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/metrics"
)

// ResolutionReport resume o resultado de uma resolução.
type ResolutionReport struct {
	Winners int // participantes no outcome vencedor
	Payouts int // vencedores pagos com sucesso
}

// Resolution fecha uma partida e distribui os prêmios a partir da carteira da casa.
// Cada vencedor é pago de forma independente: a falha de um não aborta os demais.
type Resolution struct {
	log           *zap.Logger
	ledger        *ledger.Ledger
	gw            PaymentGateway
	houseAdminKey string // adminkey da casa (paga os invoices dos vencedores)
}

func NewResolution(log *zap.Logger, l *ledger.Ledger, gw PaymentGateway, houseAdminKey string) *Resolution {
	return &Resolution{log: log, ledger: l, gw: gw, houseAdminKey: houseAdminKey}
}

// PayoutAmount calcula o prêmio de um vencedor: floor(amount * odds), em sats.
func PayoutAmount(amountSats int64, odds float64) int64 {
	return int64(math.Floor(float64(amountSats) * odds))
}

// ResolveMatch fecha a partida no ledger e paga os vencedores, best-effort.
// ErrMatchNotFound/ErrAlreadyResolved sobem sem tradução. Nenhum vencedor no
// outcome é um desfecho válido (payouts=0), não um erro. Falhas de pagamento
// não são re-tentadas nesta chamada; só o agregado volta ao chamador.
func (s *Resolution) ResolveMatch(ctx context.Context, matchID, winningOutcome string) (ResolutionReport, error) {
	winners, err := s.ledger.Resolve(matchID, winningOutcome)
	if err != nil {
		return ResolutionReport{}, err
	}

	report := ResolutionReport{Winners: len(winners)}
	if len(winners) == 0 {
		return report, nil
	}

	memo := fmt.Sprintf("Winnings from %s: %s", matchID, winningOutcome)
	for _, winner := range winners {
		payout := PayoutAmount(winner.AmountSats, winner.Odds)

		// O vencedor emite o invoice na própria carteira; a casa paga
		inv, err := s.gw.CreateInvoice(ctx, winner.InKey, payout, memo)
		if err != nil {
			metrics.PayoutFailed()
			s.log.Error("payout invoice failed",
				zap.String("matchId", matchID),
				zap.String("winnerInkey", winner.InKey),
				zap.Int64("payout", payout),
				zap.Error(err),
			)
			continue
		}

		if _, err := s.gw.PayInvoice(ctx, s.houseAdminKey, inv.Bolt11); err != nil {
			metrics.PayoutFailed()
			s.log.Error("payout payment failed",
				zap.String("matchId", matchID),
				zap.String("winnerInkey", winner.InKey),
				zap.Int64("payout", payout),
				zap.Error(err),
			)
			continue
		}

		metrics.PayoutPaid()
		report.Payouts++
	}

	return report, nil
}
