package ledger

import "time"

// Status de uma partida no ledger. Transição única: open -> closed.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Participant é a aposta de um usuário em um outcome de uma partida.
// As chaves de carteira são identificadores opacos do gateway; o core não valida formato.
type Participant struct {
	AdminKey   string    `json:"wallet_adminkey"`
	InKey      string    `json:"wallet_inkey"`
	AmountSats int64     `json:"amount"`
	Odds       float64   `json:"odds"`
	PlacedAt   time.Time `json:"timestamp"`
}

// MatchView é a visão imutável de uma partida exposta pelo snapshot.
type MatchView struct {
	Status         Status                   `json:"status"`
	WinningOutcome string                   `json:"winner,omitempty"`
	Participants   map[string][]Participant `json:"participants"`
}
