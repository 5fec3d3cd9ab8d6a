package main

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	auditDto "github.com/radieske/lightning-wager-poc/internal/settlement-audit/dto"
	"github.com/radieske/lightning-wager-poc/internal/settlement-audit/repo"
	"github.com/radieske/lightning-wager-poc/internal/shared/config"
	"github.com/radieske/lightning-wager-poc/internal/shared/db"
	"github.com/radieske/lightning-wager-poc/internal/shared/kafka"
	"github.com/radieske/lightning-wager-poc/internal/shared/logger"
	"github.com/radieske/lightning-wager-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Postgres para a trilha de auditoria
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg connect", zap.Error(err))
	}
	defer pg.Close()
	auditRepo := repo.NewPostgres(pg)

	// Um reader por tópico; mesmo group id pros dois
	placedReader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicWagerPlaced, "settlement-audit")
	defer placedReader.Close()
	resolvedReader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicWagerResolved, "settlement-audit")
	defer resolvedReader.Close()

	// DLQ para mensagens que não parseiam ou não persistem
	var dlqWriter *kafkago.Writer
	if cfg.TopicWagerDLQ != "" {
		dlqWriter = kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicWagerDLQ)
		defer dlqWriter.Close()
	}

	// Servidor de métricas Prometheus e healthcheck
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})

	log.Info("settlement-audit-worker started",
		zap.String("placed", cfg.TopicWagerPlaced),
		zap.String("resolved", cfg.TopicWagerResolved),
	)

	ctx := context.Background()

	// parse valida a mensagem e extrai o match_id; payload vai bruto pro banco
	parsePlaced := func(b []byte) (string, error) {
		var ev auditDto.WagerPlaced
		if err := json.Unmarshal(b, &ev); err != nil {
			return "", err
		}
		return ev.MatchID, nil
	}
	parseResolved := func(b []byte) (string, error) {
		var ev auditDto.WagerResolved
		if err := json.Unmarshal(b, &ev); err != nil {
			return "", err
		}
		return ev.MatchID, nil
	}

	go consume(ctx, log, placedReader, dlqWriter, auditRepo, "wager_placed", parsePlaced)
	consume(ctx, log, resolvedReader, dlqWriter, auditRepo, "wager_resolved", parseResolved)
}

// consume lê um tópico em loop e grava cada evento na trilha de auditoria.
// Mensagens que não parseiam ou não persistem vão pra DLQ; o loop nunca para.
func consume(
	ctx context.Context,
	log *zap.Logger,
	reader *kafkago.Reader,
	dlqWriter *kafkago.Writer,
	auditRepo *repo.Postgres,
	eventType string,
	parse func([]byte) (string, error),
) {
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			log.Warn("kafka read", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		matchID, jerr := parse(msg.Value)
		if jerr != nil || matchID == "" {
			log.Error("unmarshal event", zap.String("type", eventType), zap.Error(jerr))
			if dlqWriter != nil {
				_ = kafka.WriteJSON(ctx, dlqWriter, string(msg.Key), msg.Value)
			}
			continue
		}

		if _, err := auditRepo.InsertEvent(ctx, eventType, matchID, msg.Value); err != nil {
			log.Error("audit insert", zap.String("matchId", matchID), zap.Error(err))
			if dlqWriter != nil {
				_ = kafka.WriteJSON(ctx, dlqWriter, string(msg.Key), msg.Value)
			}
			// Backoff simples para evitar flood em caso de erro de banco
			time.Sleep(500 * time.Millisecond)
		}
	}
}
