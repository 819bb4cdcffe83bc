package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"puckpattern/internal/db"
	"puckpattern/internal/domain"

	"github.com/rs/zerolog"
)

// MetricsRepository persists the per-game aggregates. Aggregates are
// replaced wholesale per game, never patched in place.
type MetricsRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMetricsRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MetricsRepository {
	return &MetricsRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// ReplaceForGame deletes every aggregate row for the game and inserts
// the freshly computed set in the same transaction.
func (r *MetricsRepository) ReplaceForGame(ctx context.Context, gameID string, players []domain.PlayerGameMetrics, teams []domain.TeamGameMetrics) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()

	if err := qtx.DeletePlayerMetricsByGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete player metrics for game %s: %w", gameID, err)
	}
	if err := qtx.DeleteTeamMetricsByGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete team metrics for game %s: %w", gameID, err)
	}

	for _, m := range players {
		id, err := rowID(m.ID)
		if err != nil {
			return err
		}
		err = qtx.InsertPlayerGameMetrics(ctx, db.InsertPlayerGameMetricsParams{
			ID:            id,
			PlayerID:      m.PlayerID,
			GameID:        m.GameID,
			TeamID:        m.TeamID,
			Goals:         int64(m.Goals),
			Assists:       int64(m.Assists),
			Shots:         int64(m.Shots),
			Hits:          int64(m.Hits),
			Blocks:        int64(m.Blocks),
			Pim:           int64(m.PIM),
			FaceoffsTaken: int64(m.FaceoffsTaken),
			FaceoffsWon:   int64(m.FaceoffsWon),
			Ecr:           m.ECR,
			Pri:           m.PRI,
			Pdi:           m.PDI,
			XgDeltaPsm:    m.XGDeltaPSM,
			TotalXg:       m.TotalXG,
			IcePlus:       m.ICEPlus,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("failed to insert player metrics %s/%s: %w", m.PlayerID, m.GameID, err)
		}
	}

	for _, m := range teams {
		id, err := rowID(m.ID)
		if err != nil {
			return err
		}
		err = qtx.InsertTeamGameMetrics(ctx, db.InsertTeamGameMetricsParams{
			ID:                 id,
			TeamID:             m.TeamID,
			GameID:             m.GameID,
			Goals:              int64(m.Goals),
			Shots:              int64(m.Shots),
			Hits:               int64(m.Hits),
			Blocks:             int64(m.Blocks),
			Pim:                int64(m.PIM),
			FaceoffWins:        int64(m.FaceoffWins),
			FaceoffLosses:      int64(m.FaceoffLosses),
			Ecr:                m.ECR,
			Pri:                m.PRI,
			Pdi:                m.PDI,
			TotalXg:            m.TotalXG,
			RushPlays:          int64(m.RushPlays),
			Cycles:             int64(m.Cycles),
			ForecheckStyle:     m.ForecheckStyle,
			DefensiveStructure: m.DefensiveStructure,
			PpFormation:        m.PPFormation,
			PkFormation:        m.PKFormation,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
		if err != nil {
			return fmt.Errorf("failed to insert team metrics %s/%s: %w", m.TeamID, m.GameID, err)
		}
	}

	return tx.Commit()
}

func (r *MetricsRepository) GetPlayerMetricsByGame(ctx context.Context, gameID string) ([]domain.PlayerGameMetrics, error) {
	rows, err := r.queries.GetPlayerMetricsByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return playerMetricsFromDB(rows), nil
}

// GetPlayerMetrics returns a player's per-game aggregates, optionally
// restricted to one season.
func (r *MetricsRepository) GetPlayerMetrics(ctx context.Context, playerID, season string) ([]domain.PlayerGameMetrics, error) {
	var rows []db.PlayerGameMetric
	var err error
	if season == "" {
		rows, err = r.queries.GetPlayerMetricsByPlayer(ctx, playerID)
	} else {
		rows, err = r.queries.GetPlayerMetricsByPlayerSeason(ctx, db.GetPlayerMetricsByPlayerSeasonParams{
			PlayerID: playerID,
			Season:   season,
		})
	}
	if err != nil {
		return nil, err
	}
	return playerMetricsFromDB(rows), nil
}

func (r *MetricsRepository) GetTeamMetricsByGame(ctx context.Context, gameID string) ([]domain.TeamGameMetrics, error) {
	rows, err := r.queries.GetTeamMetricsByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return teamMetricsFromDB(rows), nil
}

func (r *MetricsRepository) GetTeamMetrics(ctx context.Context, teamID, season string) ([]domain.TeamGameMetrics, error) {
	var rows []db.TeamGameMetric
	var err error
	if season == "" {
		rows, err = r.queries.GetTeamMetricsByTeam(ctx, teamID)
	} else {
		rows, err = r.queries.GetTeamMetricsByTeamSeason(ctx, db.GetTeamMetricsByTeamSeasonParams{
			TeamID: teamID,
			Season: season,
		})
	}
	if err != nil {
		return nil, err
	}
	return teamMetricsFromDB(rows), nil
}

func playerMetricsFromDB(rows []db.PlayerGameMetric) []domain.PlayerGameMetrics {
	result := make([]domain.PlayerGameMetrics, len(rows))
	for i, row := range rows {
		result[i] = domain.PlayerGameMetrics{
			ID:            row.ID,
			PlayerID:      row.PlayerID,
			GameID:        row.GameID,
			TeamID:        row.TeamID,
			Goals:         int(row.Goals),
			Assists:       int(row.Assists),
			Shots:         int(row.Shots),
			Hits:          int(row.Hits),
			Blocks:        int(row.Blocks),
			PIM:           int(row.Pim),
			FaceoffsTaken: int(row.FaceoffsTaken),
			FaceoffsWon:   int(row.FaceoffsWon),
			ECR:           row.Ecr,
			PRI:           row.Pri,
			PDI:           row.Pdi,
			XGDeltaPSM:    row.XgDeltaPsm,
			TotalXG:       row.TotalXg,
			ICEPlus:       row.IcePlus,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		}
	}
	return result
}

func teamMetricsFromDB(rows []db.TeamGameMetric) []domain.TeamGameMetrics {
	result := make([]domain.TeamGameMetrics, len(rows))
	for i, row := range rows {
		result[i] = domain.TeamGameMetrics{
			ID:                 row.ID,
			TeamID:             row.TeamID,
			GameID:             row.GameID,
			Goals:              int(row.Goals),
			Shots:              int(row.Shots),
			Hits:               int(row.Hits),
			Blocks:             int(row.Blocks),
			PIM:                int(row.Pim),
			FaceoffWins:        int(row.FaceoffWins),
			FaceoffLosses:      int(row.FaceoffLosses),
			ECR:                row.Ecr,
			PRI:                row.Pri,
			PDI:                row.Pdi,
			TotalXG:            row.TotalXg,
			RushPlays:          int(row.RushPlays),
			Cycles:             int(row.Cycles),
			ForecheckStyle:     row.ForecheckStyle,
			DefensiveStructure: row.DefensiveStructure,
			PPFormation:        row.PpFormation,
			PKFormation:        row.PkFormation,
			CreatedAt:          row.CreatedAt,
			UpdatedAt:          row.UpdatedAt,
		}
	}
	return result
}
