package logger

import (
	"context"
	"log/slog"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/GuiiMoreira/jobah-api/internal/config"
)

func TestModuleProvidesLoggers(t *testing.T) {
	var (
		resolved *slog.Logger
		zapped   *zap.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Supply(&config.Config{LogLevel: "info", LogFormat: "json"}),
		Module,
		fx.Populate(&resolved, &zapped),
	)
	t.Cleanup(func() { _ = app.Stop(context.Background()) })
	if err := app.Err(); err != nil {
		t.Fatalf("fx app failed: %v", err)
	}
	if resolved == nil || zapped == nil {
		t.Fatal("expected loggers to be populated")
	}
	if err := app.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
}

func TestEventLogger(t *testing.T) {
	l := EventLogger(zap.NewNop())
	if _, ok := l.(*fxevent.ZapLogger); !ok {
		t.Fatalf("expected zap event logger, got %T", l)
	}
}
