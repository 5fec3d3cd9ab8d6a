package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// BalanceCache guarda saldos de carteira consultados no gateway por um TTL curto,
// pra não bater no LNbits a cada refresh do frontend.
type BalanceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewBalanceCache(c *redis.Client, ttl time.Duration) *BalanceCache {
	return &BalanceCache{Client: c, TTL: ttl}
}

func key(walletInkey string) string {
	return fmt.Sprintf("wallet:balance:%s", walletInkey)
}

// GetBalance retorna (saldo, true) em caso de hit; (0, false) em miss ou erro.
func (c *BalanceCache) GetBalance(ctx context.Context, walletInkey string) (int64, bool) {
	val, err := c.Client.Get(ctx, key(walletInkey)).Int64()
	if err != nil {
		return 0, false
	}
	return val, true
}

// SetBalance grava o saldo com o TTL configurado.
func (c *BalanceCache) SetBalance(ctx context.Context, walletInkey string, balance int64) error {
	return c.Client.Set(ctx, key(walletInkey), balance, c.TTL).Err()
}
