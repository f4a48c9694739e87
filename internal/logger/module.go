package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/GuiiMoreira/jobah-api/internal/config"
)

// Module wires the slog application logger and the zap container logger.
var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(newZap),
)

func newZap(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	l, err := NewZap(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// Sync fails on non-syncable stdout/stderr; nothing useful to report then.
			_ = l.Sync()
			return nil
		},
	})
	return l, nil
}

// EventLogger routes fx container events to zap.
func EventLogger(l *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: l}
}
