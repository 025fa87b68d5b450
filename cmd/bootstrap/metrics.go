package bootstrap

import (
	"promocode-service/internal/handler/middleware"
	"promocode-service/internal/infra/metrics"
	"promocode-service/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func() prometheus.Registerer { return prometheus.DefaultRegisterer },
		func() prometheus.Gatherer { return prometheus.DefaultGatherer },
		metrics.New,
		func(m *metrics.Metrics) shared.ActivationObserver { return m },
		func(m *metrics.Metrics) middleware.HTTPRecorder { return m },
	),
)
