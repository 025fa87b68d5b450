package bootstrap

import (
	"log/slog"

	"promocode-service/internal/handler/api"
	"promocode-service/internal/infra/antifraud"
	"promocode-service/internal/infra/cache"
	"promocode-service/internal/infra/metrics"
	"promocode-service/internal/pkg/clock"
	"promocode-service/internal/pkg/config"
	"promocode-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var AntifraudModule = fx.Module("antifraud",
	fx.Provide(
		NewAntifraudClient,
		func(c *antifraud.Client) shared.FraudValidator { return c },
		func(c *antifraud.Client) api.Pinger { return c },
	),
)

func NewAntifraudClient(cfg config.Config, store *cache.AntifraudCache, m *metrics.Metrics, clk clock.Clock, logger *slog.Logger) (*antifraud.Client, error) {
	return antifraud.NewClient(cfg.AntiFraud, store, m, clk, logger)
}
