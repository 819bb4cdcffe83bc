package service

import (
	"context"

	"puckpattern/internal/constants"
	"puckpattern/internal/domain"
	"puckpattern/internal/engine"
	"puckpattern/internal/repository"

	"github.com/rs/zerolog"
)

// MetricsService answers read queries over the stored aggregates and
// reference entities.
type MetricsService struct {
	metrics   *repository.MetricsRepository
	derived   *repository.DerivedRepository
	events    *repository.EventRepository
	reference *repository.ReferenceRepository
	logger    zerolog.Logger
}

func NewMetricsService(metrics *repository.MetricsRepository, derived *repository.DerivedRepository, events *repository.EventRepository, reference *repository.ReferenceRepository, logger zerolog.Logger) *MetricsService {
	return &MetricsService{
		metrics:   metrics,
		derived:   derived,
		events:    events,
		reference: reference,
		logger:    logger,
	}
}

// PlayerSummary is a player's per-game rows plus season totals.
type PlayerSummary struct {
	PlayerID string                     `json:"player_id"`
	Season   string                     `json:"season,omitempty"`
	Games    []domain.PlayerGameMetrics `json:"games"`
	Totals   PlayerTotals               `json:"totals"`
}

type PlayerTotals struct {
	GamesPlayed int     `json:"games_played"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	Shots       int     `json:"shots"`
	TotalXG     float64 `json:"total_xg"`
	AvgECR      float64 `json:"avg_ecr"`
	AvgPRI      float64 `json:"avg_pri"`
	AvgPDI      float64 `json:"avg_pdi"`
	AvgICEPlus  float64 `json:"avg_ice_plus"`
}

// TeamSummary is a team's per-game rows plus the modal system reads.
type TeamSummary struct {
	TeamID  string                   `json:"team_id"`
	Season  string                   `json:"season,omitempty"`
	Games   []domain.TeamGameMetrics `json:"games"`
	Systems TeamSystems              `json:"systems"`
}

type TeamSystems struct {
	ForecheckStyle     string `json:"forecheck_style"`
	DefensiveStructure string `json:"defensive_structure"`
	PPFormation        string `json:"pp_formation"`
	PKFormation        string `json:"pk_formation"`
}

func (s *MetricsService) GetPlayerSummary(ctx context.Context, playerID, season string) (*PlayerSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	games, err := s.metrics.GetPlayerMetrics(ctx, playerID, season)
	if err != nil {
		s.logger.Error().Err(err).Str("player_id", playerID).Msg("failed to load player metrics")
		return nil, err
	}

	summary := &PlayerSummary{
		PlayerID: playerID,
		Season:   season,
		Games:    games,
		Totals:   playerTotals(games),
	}
	return summary, nil
}

func (s *MetricsService) GetTeamSummary(ctx context.Context, teamID, season string) (*TeamSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	games, err := s.metrics.GetTeamMetrics(ctx, teamID, season)
	if err != nil {
		s.logger.Error().Err(err).Str("team_id", teamID).Msg("failed to load team metrics")
		return nil, err
	}

	summary := &TeamSummary{
		TeamID:  teamID,
		Season:  season,
		Games:   games,
		Systems: modalSystems(games),
	}
	return summary, nil
}

func (s *MetricsService) GetGameMetrics(ctx context.Context, gameID string) ([]domain.PlayerGameMetrics, []domain.TeamGameMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	players, err := s.metrics.GetPlayerMetricsByGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	teams, err := s.metrics.GetTeamMetricsByGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	return players, teams, nil
}

// ShotBreakdown is the shot-quality bundle for one game, overall and
// sliced by shot type and by period.
type ShotBreakdown struct {
	GameID   string                        `json:"game_id"`
	Overall  domain.ShotMetrics            `json:"overall"`
	ByType   map[string]domain.ShotMetrics `json:"by_type"`
	ByPeriod map[int]domain.ShotMetrics    `json:"by_period"`
}

// GetGameShotMetrics computes the shot-quality breakdown for one game
// from its stored shot records.
func (s *MetricsService) GetGameShotMetrics(ctx context.Context, gameID string) (*ShotBreakdown, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	shots, err := s.derived.GetShotsByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	events, err := s.events.GetByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	periodByEvent := make(map[string]int, len(events))
	for i := range events {
		periodByEvent[events[i].ID] = events[i].Period
	}

	byType := map[string][]domain.ClassifiedShot{}
	byPeriod := map[int][]domain.ClassifiedShot{}
	for _, shot := range shots {
		shotType := shot.ShotType
		if shotType == "" {
			shotType = "unknown"
		}
		byType[shotType] = append(byType[shotType], shot)
		byPeriod[periodByEvent[shot.EventID]] = append(byPeriod[periodByEvent[shot.EventID]], shot)
	}

	breakdown := &ShotBreakdown{
		GameID:   gameID,
		Overall:  engine.ComputeShotMetrics(shots),
		ByType:   make(map[string]domain.ShotMetrics, len(byType)),
		ByPeriod: make(map[int]domain.ShotMetrics, len(byPeriod)),
	}
	for shotType, group := range byType {
		breakdown.ByType[shotType] = engine.ComputeShotMetrics(group)
	}
	for period, group := range byPeriod {
		breakdown.ByPeriod[period] = engine.ComputeShotMetrics(group)
	}
	return breakdown, nil
}

func (s *MetricsService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.reference.ListTeams(ctx)
}

func (s *MetricsService) ListGames(ctx context.Context, season string) ([]domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.reference.ListGamesBySeason(ctx, season)
}

func (s *MetricsService) GetGame(ctx context.Context, gameID string) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.reference.GetGame(ctx, gameID)
}

func (s *MetricsService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.reference.GetPlayerByPlayerID(ctx, playerID)
}

func playerTotals(games []domain.PlayerGameMetrics) PlayerTotals {
	t := PlayerTotals{GamesPlayed: len(games)}
	if len(games) == 0 {
		return t
	}
	for _, g := range games {
		t.Goals += g.Goals
		t.Assists += g.Assists
		t.Shots += g.Shots
		t.TotalXG += g.TotalXG
		t.AvgECR += g.ECR
		t.AvgPRI += g.PRI
		t.AvgPDI += g.PDI
		t.AvgICEPlus += g.ICEPlus
	}
	n := float64(len(games))
	t.AvgECR /= n
	t.AvgPRI /= n
	t.AvgPDI /= n
	t.AvgICEPlus /= n
	return t
}

// modalSystems picks the most frequent label per system across the
// games in scope, so a one-game outlier does not flip a team's profile.
func modalSystems(games []domain.TeamGameMetrics) TeamSystems {
	systems := TeamSystems{
		ForecheckStyle:     "STANDARD",
		DefensiveStructure: "HYBRID",
		PPFormation:        "1-3-1",
		PKFormation:        "BOX",
	}
	if len(games) == 0 {
		return systems
	}

	// A games slice with only empty labels keeps the defaults.
	if v := modal(games, func(m *domain.TeamGameMetrics) string { return m.ForecheckStyle }); v != "" {
		systems.ForecheckStyle = v
	}
	if v := modal(games, func(m *domain.TeamGameMetrics) string { return m.DefensiveStructure }); v != "" {
		systems.DefensiveStructure = v
	}
	if v := modal(games, func(m *domain.TeamGameMetrics) string { return m.PPFormation }); v != "" {
		systems.PPFormation = v
	}
	if v := modal(games, func(m *domain.TeamGameMetrics) string { return m.PKFormation }); v != "" {
		systems.PKFormation = v
	}
	return systems
}

func modal(games []domain.TeamGameMetrics, pick func(*domain.TeamGameMetrics) string) string {
	counts := map[string]int{}
	best := ""
	for i := range games {
		label := pick(&games[i])
		if label == "" {
			continue
		}
		counts[label]++
		if best == "" || counts[label] > counts[best] {
			best = label
		}
	}
	return best
}
