package events

import "time"

// Evento emitido pelo wager-service após a resolução de uma partida.
type WagerResolved struct {
	MatchID        string    `json:"match_id"`
	WinningOutcome string    `json:"winning_outcome"`
	Winners        int       `json:"winners"` // participantes no outcome vencedor
	Payouts        int       `json:"payouts"` // vencedores pagos com sucesso
	Ts             time.Time `json:"ts"`
}
