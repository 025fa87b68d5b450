package components

import (
	"time"

	"promocode-service/internal/pkg/clock"
	"promocode-service/internal/pkg/config"
	"promocode-service/internal/usecase"
	"promocode-service/internal/usecase/commands"
	"promocode-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPromoLocation,
	func(loc *time.Location) queries.Settings {
		return queries.Settings{Location: loc}
	},
	func(cfg config.Config, loc *time.Location) commands.ActivationSettings {
		return commands.ActivationSettings{
			Location:    loc,
			MaxAttempts: cfg.Promo.AllocationRetries,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProfileCommands,
		commands.NewPromocodeCommands,
		commands.NewEngagementCommands,
		commands.NewActivationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPromocodeQueries,
		queries.NewCommentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewPromoLocation resolves the zone whose calendar day decides promocode activity.
func NewPromoLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Promo.TimeZone)
}
