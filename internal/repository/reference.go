package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"puckpattern/internal/db"
	"puckpattern/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// ReferenceRepository persists the slowly-changing reference entities:
// teams, players and game records.
type ReferenceRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewReferenceRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *ReferenceRepository {
	return &ReferenceRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *ReferenceRepository) UpsertTeams(ctx context.Context, teams []domain.Team) error {
	if len(teams) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()

	for _, team := range teams {
		id := team.ID
		if id == "" {
			id, err = gonanoid.New()
			if err != nil {
				return fmt.Errorf("failed to generate nanoid: %w", err)
			}
		}

		err := qtx.UpsertTeam(ctx, db.UpsertTeamParams{
			ID:           id,
			TeamID:       team.TeamID,
			Name:         team.Name,
			Abbreviation: team.Abbreviation,
			Division:     team.Division,
			Conference:   team.Conference,
			Active:       team.Active,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert team %s: %w", team.Abbreviation, err)
		}
	}

	return tx.Commit()
}

func (r *ReferenceRepository) UpsertPlayers(ctx context.Context, players []domain.Player) error {
	if len(players) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()

	for _, player := range players {
		id := player.ID
		if id == "" {
			id, err = gonanoid.New()
			if err != nil {
				return fmt.Errorf("failed to generate nanoid: %w", err)
			}
		}

		err := qtx.UpsertPlayer(ctx, db.UpsertPlayerParams{
			ID:        id,
			PlayerID:  player.PlayerID,
			Name:      player.Name,
			Position:  player.Position,
			TeamID:    player.TeamID,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert player %s: %w", player.PlayerID, err)
		}
	}

	return tx.Commit()
}

func (r *ReferenceRepository) UpsertGame(ctx context.Context, game *domain.Game) error {
	now := time.Now().UTC()
	return r.queries.UpsertGame(ctx, db.UpsertGameParams{
		GameID:     game.GameID,
		Season:     game.Season,
		GameDate:   game.GameDate,
		HomeTeamID: game.HomeTeamID,
		AwayTeamID: game.AwayTeamID,
		HomeScore:  int64(game.HomeScore),
		AwayScore:  int64(game.AwayScore),
		Status:     game.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (r *ReferenceRepository) GetGame(ctx context.Context, gameID string) (*domain.Game, error) {
	game, err := r.queries.GetGame(ctx, gameID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	result := gameFromDB(game)
	return &result, nil
}

func (r *ReferenceRepository) ListGamesBySeason(ctx context.Context, season string) ([]domain.Game, error) {
	games, err := r.queries.ListGamesBySeason(ctx, season)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Game, len(games))
	for i, g := range games {
		result[i] = gameFromDB(g)
	}
	return result, nil
}

func (r *ReferenceRepository) GetTeamByAbbreviation(ctx context.Context, abbreviation string) (*domain.Team, error) {
	team, err := r.queries.GetTeamByAbbreviation(ctx, abbreviation)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.Team{
		ID:           team.ID,
		TeamID:       team.TeamID,
		Name:         team.Name,
		Abbreviation: team.Abbreviation,
		Division:     team.Division,
		Conference:   team.Conference,
		Active:       team.Active,
		CreatedAt:    team.CreatedAt,
		UpdatedAt:    team.UpdatedAt,
	}, nil
}

func (r *ReferenceRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := r.queries.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Team, len(teams))
	for i, t := range teams {
		result[i] = domain.Team{
			ID:           t.ID,
			TeamID:       t.TeamID,
			Name:         t.Name,
			Abbreviation: t.Abbreviation,
			Division:     t.Division,
			Conference:   t.Conference,
			Active:       t.Active,
			CreatedAt:    t.CreatedAt,
			UpdatedAt:    t.UpdatedAt,
		}
	}
	return result, nil
}

func (r *ReferenceRepository) GetPlayerByPlayerID(ctx context.Context, playerID string) (*domain.Player, error) {
	player, err := r.queries.GetPlayerByPlayerID(ctx, playerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.Player{
		ID:        player.ID,
		PlayerID:  player.PlayerID,
		Name:      player.Name,
		Position:  player.Position,
		TeamID:    player.TeamID,
		CreatedAt: player.CreatedAt,
		UpdatedAt: player.UpdatedAt,
	}, nil
}

func gameFromDB(g db.Game) domain.Game {
	return domain.Game{
		GameID:     g.GameID,
		Season:     g.Season,
		GameDate:   g.GameDate,
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		HomeScore:  int(g.HomeScore),
		AwayScore:  int(g.AwayScore),
		Status:     g.Status,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}
