package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/GuiiMoreira/jobah-api/internal/di"
	"github.com/GuiiMoreira/jobah-api/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		fx.WithLogger(logger.EventLogger),
		di.Module(),
	)

	run(ctx, app)
}
