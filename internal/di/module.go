package di

import (
	"go.uber.org/fx"

	"github.com/GuiiMoreira/jobah-api/internal/adapter/pix"
	"github.com/GuiiMoreira/jobah-api/internal/adapter/realtime"
	"github.com/GuiiMoreira/jobah-api/internal/app"
	"github.com/GuiiMoreira/jobah-api/internal/config"
	"github.com/GuiiMoreira/jobah-api/internal/logger"
	"github.com/GuiiMoreira/jobah-api/internal/pkg/auth"
	"github.com/GuiiMoreira/jobah-api/internal/server/http/handlers"
	"github.com/GuiiMoreira/jobah-api/internal/server/http/router"
	"github.com/GuiiMoreira/jobah-api/internal/storage/postgres"
	"github.com/GuiiMoreira/jobah-api/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		pix.Module,
		realtime.Module,
		usecase.Module,
		fx.Provide(
			func(client pix.Client) app.PaymentProvider { return client },
			func(pub realtime.Publisher) app.Publisher { return pub },
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(f *app.MarketplaceFacade) handlers.MarketplaceFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
