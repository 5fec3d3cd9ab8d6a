package repo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Postgres persiste a trilha de auditoria de eventos de aposta
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de auditoria
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// InsertEvent grava um evento consumido do Kafka na trilha de auditoria.
// O payload bruto vai junto pra permitir reprocessamento/reconciliação manual.
func (p *Postgres) InsertEvent(ctx context.Context, eventType, matchID string, payload []byte) (string, error) {
	id := uuid.NewString()
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO wager_audit (id, event_type, match_id, payload, created_at)
		VALUES ($1,$2,$3,$4,NOW())`,
		id, eventType, matchID, payload,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}
