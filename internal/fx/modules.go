package fx

import (
	"database/sql"

	"puckpattern/internal/api"
	"puckpattern/internal/config"
	"puckpattern/internal/database"
	"puckpattern/internal/db"
	"puckpattern/internal/logger"
	"puckpattern/internal/repository"
	"puckpattern/internal/server"
	"puckpattern/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(
		database.New,
		ProvideQueries,

		repository.NewReferenceRepository,
		repository.NewEventRepository,
		repository.NewDerivedRepository,
		repository.NewMetricsRepository,

		api.NewNHLClient,

		service.NewIngestService,
		service.NewProcessorService,
		service.NewMetricsService,

		server.NewAPIServer,
	),
)
