package ledger

import (
	"errors"
	"sync"
)

var (
	ErrMatchNotFound   = errors.New("match not found")
	ErrMatchClosed     = errors.New("match is closed")
	ErrAlreadyResolved = errors.New("match already resolved")
)

// match é o registro interno de uma partida. Todo acesso aos campos passa pelo mutex.
type match struct {
	mu           sync.Mutex
	status       Status
	winner       string
	participants map[string][]Participant
}

// Ledger é o dono único do estado de partidas/participantes, em memória.
// Operações na mesma partida são serializadas pelo mutex da partida;
// partidas diferentes não se bloqueiam entre si.
type Ledger struct {
	mu      sync.Mutex
	matches map[string]*match
}

func New() *Ledger {
	return &Ledger{matches: make(map[string]*match)}
}

// getOrCreate retorna o registro da partida, criando-o aberto e vazio se não existir.
// Segura apenas o lock do mapa; o lock da partida fica a cargo do chamador.
func (l *Ledger) getOrCreate(matchID string) *match {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.matches[matchID]
	if !ok {
		m = &match{
			status:       StatusOpen,
			participants: make(map[string][]Participant),
		}
		l.matches[matchID] = m
	}
	return m
}

func (l *Ledger) get(matchID string) (*match, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.matches[matchID]
	return m, ok
}

// AppendParticipant registra um participante no outcome da partida.
// Cria a partida na primeira aposta; falha com ErrMatchClosed se já resolvida.
// Só deve ser chamado após o pagamento confirmado no gateway.
func (l *Ledger) AppendParticipant(matchID, outcome string, p Participant) error {
	m := l.getOrCreate(matchID)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status == StatusClosed {
		return ErrMatchClosed
	}
	m.participants[outcome] = append(m.participants[outcome], p)
	return nil
}

// Resolve fecha a partida e retorna uma cópia dos participantes do outcome vencedor
// (possivelmente vazia). Depois do retorno nenhum append na partida tem sucesso.
func (l *Ledger) Resolve(matchID, winningOutcome string) ([]Participant, error) {
	m, ok := l.get(matchID)
	if !ok {
		return nil, ErrMatchNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status == StatusClosed {
		return nil, ErrAlreadyResolved
	}
	m.status = StatusClosed
	m.winner = winningOutcome

	winners := make([]Participant, len(m.participants[winningOutcome]))
	copy(winners, m.participants[winningOutcome])
	return winners, nil
}

// Snapshot retorna uma cópia consistente de todas as partidas para inspeção.
func (l *Ledger) Snapshot() map[string]MatchView {
	l.mu.Lock()
	refs := make(map[string]*match, len(l.matches))
	for id, m := range l.matches {
		refs[id] = m
	}
	l.mu.Unlock()

	out := make(map[string]MatchView, len(refs))
	for id, m := range refs {
		m.mu.Lock()
		view := MatchView{
			Status:         m.status,
			WinningOutcome: m.winner,
			Participants:   make(map[string][]Participant, len(m.participants)),
		}
		for outcome, ps := range m.participants {
			cp := make([]Participant, len(ps))
			copy(cp, ps)
			view.Participants[outcome] = cp
		}
		m.mu.Unlock()
		out[id] = view
	}
	return out
}
