package main

import (
	"context"
	"database/sql"
	"net/http"

	"puckpattern/internal/config"
	"puckpattern/internal/constants"
	fxmodules "puckpattern/internal/fx"
	"puckpattern/internal/middleware"
	"puckpattern/internal/server"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	)
	app.Run()
}

func runServer(lc fx.Lifecycle, apiServer *server.APIServer, cfg *config.Config, db *sql.DB, logger zerolog.Logger) {
	mux := http.NewServeMux()
	apiServer.RegisterRoutes(mux)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := middleware.RequestID(logger)(c.Handler(mux))

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: handler,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info().Str("port", cfg.ServerPort).Msg("starting HTTP server")
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("HTTP server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
			}
			if err := db.Close(); err != nil {
				logger.Error().Err(err).Msg("database close failed")
				return err
			}
			return nil
		},
	})
}
