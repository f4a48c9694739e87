package pix

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/GuiiMoreira/jobah-api/internal/config"
)

// Module exposes the payment provider client to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// newClient talks to the PSP when an address is configured and falls back to the mock.
func newClient(p clientParams) (Client, error) {
	if p.Config.PaymentProviderAddress == "" {
		return NewMockClient(p.Logger), nil
	}
	return NewHTTPClient(p.Config.PaymentProviderAddress, p.Config.PixKey, p.Logger)
}
