package service

import (
	"context"
	"errors"
	"fmt"

	"puckpattern/internal/config"
	"puckpattern/internal/constants"
	"puckpattern/internal/engine"
	"puckpattern/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ProcessorService runs the full derivation pipeline for a game:
// classify new events, link causal sequences, then rebuild every
// aggregate for the game from scratch.
type ProcessorService struct {
	events  *repository.EventRepository
	derived *repository.DerivedRepository
	metrics *repository.MetricsRepository
	workers int
	logger  zerolog.Logger
}

func NewProcessorService(events *repository.EventRepository, derived *repository.DerivedRepository, metrics *repository.MetricsRepository, cfg *config.Config, logger zerolog.Logger) *ProcessorService {
	workers := cfg.ProcessWorkers
	if workers <= 0 {
		workers = constants.DefaultProcessWorkers
	}
	return &ProcessorService{
		events:  events,
		derived: derived,
		metrics: metrics,
		workers: workers,
		logger:  logger,
	}
}

// ProcessResult summarizes one game's processing run.
type ProcessResult struct {
	GameID        string `json:"game_id"`
	Events        int    `json:"events"`
	NewShots      int    `json:"new_shots"`
	NewEntries    int    `json:"new_entries"`
	NewPasses     int    `json:"new_passes"`
	NewRecoveries int    `json:"new_recoveries"`
	PlayerRows    int    `json:"player_rows"`
	TeamRows      int    `json:"team_rows"`
}

// ProcessGame is idempotent: events already carrying a derived record
// are not reclassified, and the aggregates are replaced wholesale, so
// running it twice converges to the same state.
func (s *ProcessorService) ProcessGame(ctx context.Context, gameID string) (*ProcessResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ProcessTimeout)
	defer cancel()

	s.logger.Info().Str("game_id", gameID).Msg("processing game")

	events, err := s.events.GetByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events for game %s: %w", gameID, err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("no events for game %s", gameID)
	}

	classified, err := s.derived.GetClassifiedEventIDs(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load classified event ids: %w", err)
	}

	fresh := engine.NewClassifier(events, classified, s.logger).Classify()
	if err := s.derived.SaveAll(ctx, fresh.Shots, fresh.Entries, fresh.Passes, fresh.Recoveries); err != nil {
		return nil, fmt.Errorf("failed to save derived records: %w", err)
	}

	// Linking and aggregation always run over the game's complete
	// derived set, not just this run's additions.
	full, err := s.loadDerived(ctx, gameID, fresh)
	if err != nil {
		return nil, err
	}

	links := engine.NewLinker(events, s.logger).Link(full)

	// Linking mutates assists and entry conversion flags in place;
	// write the updated records back.
	if err := s.derived.SaveAll(ctx, full.Shots, full.Entries, full.Passes, full.Recoveries); err != nil {
		return nil, fmt.Errorf("failed to save linked records: %w", err)
	}

	agg := engine.AggregateGame(gameID, events, full, links)
	if err := s.metrics.ReplaceForGame(ctx, gameID, agg.Players, agg.Teams); err != nil {
		return nil, fmt.Errorf("failed to replace aggregates: %w", err)
	}

	result := &ProcessResult{
		GameID:        gameID,
		Events:        len(events),
		NewShots:      len(fresh.Shots),
		NewEntries:    len(fresh.Entries),
		NewPasses:     len(fresh.Passes),
		NewRecoveries: len(fresh.Recoveries),
		PlayerRows:    len(agg.Players),
		TeamRows:      len(agg.Teams),
	}

	s.logger.Info().
		Str("game_id", gameID).
		Int("events", result.Events).
		Int("new_shots", result.NewShots).
		Int("player_rows", result.PlayerRows).
		Int("team_rows", result.TeamRows).
		Msg("game processed")

	return result, nil
}

// ProcessGames fans out over a bounded worker pool. Games are
// independent, so every game runs to completion even when a sibling
// fails; per-game errors are collected and joined.
func (s *ProcessorService) ProcessGames(ctx context.Context, gameIDs []string) ([]*ProcessResult, error) {
	results := make([]*ProcessResult, len(gameIDs))
	errs := make([]error, len(gameIDs))

	var g errgroup.Group
	g.SetLimit(s.workers)

	for i, gameID := range gameIDs {
		g.Go(func() error {
			res, err := s.ProcessGame(ctx, gameID)
			if err != nil {
				s.logger.Error().Err(err).Str("game_id", gameID).Msg("failed to process game")
				errs[i] = err
				return nil
			}
			results[i] = res
			return nil
		})
	}

	g.Wait()
	return results, errors.Join(errs...)
}

func (s *ProcessorService) loadDerived(ctx context.Context, gameID string, fresh *engine.GameDerived) (*engine.GameDerived, error) {
	shots, err := s.derived.GetShotsByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shots: %w", err)
	}
	entries, err := s.derived.GetZoneEntriesByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	passes, err := s.derived.GetPassesByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load passes: %w", err)
	}
	recoveries, err := s.derived.GetPuckRecoveriesByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recoveries: %w", err)
	}

	// Counting stats and team attribution come from the classifier,
	// which recomputes them on every run regardless of the skip set.
	return &engine.GameDerived{
		Shots:          shots,
		Entries:        entries,
		Passes:         passes,
		Recoveries:     recoveries,
		PlayerCounting: fresh.PlayerCounting,
		TeamCounting:   fresh.TeamCounting,
		PlayerTeam:     fresh.PlayerTeam,
		Teams:          fresh.Teams,
	}, nil
}
