package bootstrap

import (
	"context"
	"log/slog"

	"booking-engine/internal/infra/quotecache"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var QuoteCacheModule = fx.Module("quotecache",
	fx.Provide(
		NewQuoteCache,
	),
)

// NewQuoteCache picks the quote store from config: Redis when an address is
// configured, an in-process map otherwise. Quotes are advisory, so losing
// them on restart is acceptable in either mode.
func NewQuoteCache(lc fx.Lifecycle, cfg config.Config) commands.QuoteCache {
	if cfg.Redis.Addr == "" {
		slog.Info("quote cache: using in-memory store")
		return quotecache.NewMemoryCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return err
			}
			slog.Info("quote cache: connected to redis", "addr", cfg.Redis.Addr)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return quotecache.NewRedisCache(client, cfg.Redis.QuoteTTL)
}
