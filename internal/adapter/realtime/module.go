package realtime

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/GuiiMoreira/jobah-api/internal/config"
)

// Module exposes the notification publisher to fx graph.
var Module = fx.Provide(newPublisher)

type publisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// newPublisher uses Redis when REDIS_URL is set and logs notifications otherwise.
func newPublisher(p publisherParams) (Publisher, error) {
	if p.Config.RedisURL == "" {
		return NewLogPublisher(p.Logger), nil
	}
	pub, err := NewRedisPublisher(p.Config.RedisURL, p.Logger)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := pub.Ping(ctx); err != nil {
				// Undelivered rows stay in the outbox.
				p.Logger.WarnContext(ctx, "redis unavailable", slog.Any("error", err))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
