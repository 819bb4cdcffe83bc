package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath         string
	ServerPort     string
	LogLevel       string
	NHLWebAPIURL   string
	NHLStatsAPIURL string
	ProcessWorkers int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:         getEnv("DB_PATH", "puckpattern.db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		NHLWebAPIURL:   getEnv("NHL_WEB_API_URL", "https://api-web.nhle.com"),
		NHLStatsAPIURL: getEnv("NHL_STATS_API_URL", "https://api.nhle.com"),
		ProcessWorkers: getEnvInt("PROCESS_WORKERS", 4),
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("nhl_web_api_url", cfg.NHLWebAPIURL).
		Int("process_workers", cfg.ProcessWorkers).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
