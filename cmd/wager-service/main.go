package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/lightning-wager-poc/internal/shared/cache"
	"github.com/radieske/lightning-wager-poc/internal/shared/config"
	"github.com/radieske/lightning-wager-poc/internal/shared/kafka"
	"github.com/radieske/lightning-wager-poc/internal/shared/logger"
	"github.com/radieske/lightning-wager-poc/internal/shared/metrics"
	wcache "github.com/radieske/lightning-wager-poc/internal/wager-service/cache"
	whttp "github.com/radieske/lightning-wager-poc/internal/wager-service/http"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/ledger"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/lnbits"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/producer"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/pubsub"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/service"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/ws"
)

func main() {
	cfg := config.Load()
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	if cfg.HouseWalletInkey == "" || cfg.HouseWalletAdmin == "" {
		log.Fatal("house wallet keys not configured (HOUSE_WALLET_INKEY / HOUSE_WALLET_ADMINKEY)")
	}

	// Redis (cache de saldo + pub/sub do feed)
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}

	// Kafka writers (wager_placed / wager_resolved)
	placedWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicWagerPlaced)
	defer placedWriter.Close()
	resolvedWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicWagerResolved)
	defer resolvedWriter.Close()

	// Gateway de pagamento (LNbits) com timeout por chamada
	gw := lnbits.New(cfg.LNbitsURL, cfg.GatewayTimeout)

	// Ledger em memória + serviços de colocação/resolução
	wagerLedger := ledger.New()
	placement := service.NewPlacement(log, wagerLedger, gw, cfg.HouseWalletInkey)
	resolution := service.NewResolution(log, wagerLedger, gw, cfg.HouseWalletAdmin)
	provisioning := service.NewProvisioning(log, gw, cfg.HouseWalletAdmin, cfg.InitialFundingSat)

	// Feed WebSocket alimentado pelo Pub/Sub do Redis
	hub := ws.NewHub(func(r *http.Request) bool { return true })
	ws.StartRedisSubscriber(context.Background(), rdb, cfg.RedisPubSubChannel, hub)

	api := &whttp.Server{
		Log:          log,
		Ledger:       wagerLedger,
		Placement:    placement,
		Resolution:   resolution,
		Provisioning: provisioning,
		Gateway:      gw,
		Balances:     wcache.NewBalanceCache(rdb, 15*time.Second),
		Publ:         producer.NewKafkaPublisher(placedWriter, resolvedWriter),
		Feed:         pubsub.NewRedisBroadcaster(rdb),
		FeedChannel:  cfg.RedisPubSubChannel,
		Hub:          hub,
	}

	// metrics/health em porta separada
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})

	addr := fmt.Sprintf(":%s", cfg.HTTPPort)
	apiSrv := &http.Server{Addr: addr, Handler: api.Router()}

	log.Info("wager-service listening", zap.String("addr", addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
