package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// MatchID: obrigatório para subscribe/unsubscribe
type ClientMsg struct {
	Type    string `json:"type"`     // subscribe | unsubscribe | ping
	MatchID string `json:"match_id"` // requerido em subscribe/unsubscribe
}

// ActivityUpdate é o payload enviado aos clientes inscritos numa partida:
// uma aposta registrada ou uma resolução.
type ActivityUpdate struct {
	MatchID string      `json:"match_id"`
	Kind    string      `json:"kind"` // "wager_placed" | "wager_resolved"
	Payload interface{} `json:"payload"`
}
