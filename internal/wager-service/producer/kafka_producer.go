package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/lightning-wager-poc/pkg/contracts/events"
)

// KafkaPublisher publica os eventos de aposta/resolução consumidos pelo
// settlement-audit-worker. Publicação é fire-and-forget do ponto de vista
// do fluxo principal.
type KafkaPublisher struct {
	PlacedWriter   *kafka.Writer
	ResolvedWriter *kafka.Writer
}

func NewKafkaPublisher(placed, resolved *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{PlacedWriter: placed, ResolvedWriter: resolved}
}

func (p *KafkaPublisher) PublishWagerPlaced(ctx context.Context, e events.WagerPlaced) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return p.PlacedWriter.WriteMessages(ctx, kafka.Message{Key: []byte(e.MatchID), Value: b})
}

func (p *KafkaPublisher) PublishWagerResolved(ctx context.Context, e events.WagerResolved) error {
	e.Ts = time.Now()
	b, _ := json.Marshal(e)
	return p.ResolvedWriter.WriteMessages(ctx, kafka.Message{Key: []byte(e.MatchID), Value: b})
}
