package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"puckpattern/internal/api"
	"puckpattern/internal/constants"
	"puckpattern/internal/domain"
	"puckpattern/internal/repository"

	"github.com/rs/zerolog"
)

// IngestService pulls games from the NHL feeds and lands them as
// normalized raw events. Ingest is idempotent: events are keyed by feed
// id and re-running a game upserts.
type IngestService struct {
	nhl       *api.NHLClient
	reference *repository.ReferenceRepository
	events    *repository.EventRepository
	logger    zerolog.Logger
}

func NewIngestService(nhl *api.NHLClient, reference *repository.ReferenceRepository, events *repository.EventRepository, logger zerolog.Logger) *IngestService {
	return &IngestService{
		nhl:       nhl,
		reference: reference,
		events:    events,
		logger:    logger,
	}
}

// SyncTeams refreshes the team directory from the NHL stats API.
func (s *IngestService) SyncTeams(ctx context.Context) (int, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.nhl.GetTeams(apiCtx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch teams")
		return 0, fmt.Errorf("failed to fetch teams: %w", err)
	}

	teams := make([]domain.Team, 0, len(resp.Data))
	for _, t := range resp.Data {
		teams = append(teams, domain.Team{
			TeamID:       strconv.FormatInt(t.ID, 10),
			Name:         t.FullName,
			Abbreviation: t.TriCode,
			Active:       true,
		})
	}

	if err := s.reference.UpsertTeams(ctx, teams); err != nil {
		return 0, fmt.Errorf("failed to store teams: %w", err)
	}

	s.logger.Info().Int("count", len(teams)).Msg("teams synced")
	return len(teams), nil
}

// SyncRoster refreshes one team's roster for a season.
func (s *IngestService) SyncRoster(ctx context.Context, teamAbbrev, season string) (int, error) {
	team, err := s.reference.GetTeamByAbbreviation(ctx, teamAbbrev)
	if err != nil {
		return 0, err
	}
	if team == nil {
		return 0, fmt.Errorf("unknown team: %s", teamAbbrev)
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.nhl.GetRoster(apiCtx, teamAbbrev, season)
	if err != nil {
		s.logger.Error().Err(err).Str("team", teamAbbrev).Msg("failed to fetch roster")
		return 0, fmt.Errorf("failed to fetch roster: %w", err)
	}

	var players []domain.Player
	for _, group := range [][]api.RosterPlayer{resp.Forwards, resp.Defensemen, resp.Goalies} {
		for _, p := range group {
			teamID := team.TeamID
			players = append(players, domain.Player{
				PlayerID: strconv.FormatInt(p.ID, 10),
				Name:     strings.TrimSpace(p.FirstName.Default + " " + p.LastName.Default),
				Position: p.PositionCode,
				TeamID:   &teamID,
			})
		}
	}

	if err := s.reference.UpsertPlayers(ctx, players); err != nil {
		return 0, fmt.Errorf("failed to store roster: %w", err)
	}

	s.logger.Info().Str("team", teamAbbrev).Int("count", len(players)).Msg("roster synced")
	return len(players), nil
}

// SyncSchedule stores game records for one team's season schedule, so
// a season can be ingested game by game without hitting the feed for
// the game list each time.
func (s *IngestService) SyncSchedule(ctx context.Context, teamAbbrev, season string) (int, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.nhl.GetSchedule(apiCtx, teamAbbrev, season)
	if err != nil {
		s.logger.Error().Err(err).Str("team", teamAbbrev).Msg("failed to fetch schedule")
		return 0, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	for _, sg := range resp.Games {
		game := gameFromScheduled(&sg)
		if err := s.reference.UpsertGame(ctx, game); err != nil {
			return 0, fmt.Errorf("failed to store game %s: %w", game.GameID, err)
		}
	}

	s.logger.Info().Str("team", teamAbbrev).Int("count", len(resp.Games)).Msg("schedule synced")
	return len(resp.Games), nil
}

// IngestGame fetches a game's play-by-play and stores the game record
// and its normalized events.
func (s *IngestService) IngestGame(ctx context.Context, gameID string) (int, error) {
	s.logger.Info().Str("game_id", gameID).Msg("ingesting game")

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	pbp, err := s.nhl.GetPlayByPlay(apiCtx, gameID)
	if err != nil {
		s.logger.Error().Err(err).Str("game_id", gameID).Msg("failed to fetch play-by-play")
		return 0, fmt.Errorf("failed to fetch play-by-play: %w", err)
	}

	game := gameFromPlayByPlay(gameID, pbp)
	if err := s.reference.UpsertGame(ctx, game); err != nil {
		return 0, fmt.Errorf("failed to store game: %w", err)
	}

	events := eventsFromPlays(gameID, pbp)
	if err := s.events.UpsertBatch(ctx, events); err != nil {
		return 0, fmt.Errorf("failed to store events: %w", err)
	}

	s.logger.Info().
		Str("game_id", gameID).
		Int("events", len(events)).
		Msg("game ingested")
	return len(events), nil
}

func gameFromPlayByPlay(gameID string, pbp *api.PlayByPlayResponse) *domain.Game {
	home := strconv.FormatInt(pbp.HomeTeam.ID, 10)
	away := strconv.FormatInt(pbp.AwayTeam.ID, 10)

	gameDate, err := time.Parse("2006-01-02", pbp.GameDate)
	if err != nil {
		gameDate = time.Time{}
	}

	return &domain.Game{
		GameID:     gameID,
		Season:     strconv.FormatInt(pbp.Season, 10),
		GameDate:   gameDate,
		HomeTeamID: &home,
		AwayTeamID: &away,
		HomeScore:  pbp.HomeTeam.Score,
		AwayScore:  pbp.AwayTeam.Score,
		Status:     statusFromGameState(pbp.GameState),
	}
}

func statusFromGameState(state string) string {
	switch state {
	case "LIVE", "CRIT":
		return "live"
	case "FINAL", "OFF":
		return "final"
	default:
		return "scheduled"
	}
}

func gameFromScheduled(sg *api.ScheduledGame) *domain.Game {
	home := strconv.FormatInt(sg.HomeTeam.ID, 10)
	away := strconv.FormatInt(sg.AwayTeam.ID, 10)

	gameDate, err := time.Parse("2006-01-02", sg.GameDate)
	if err != nil {
		gameDate = time.Time{}
	}

	return &domain.Game{
		GameID:     strconv.FormatInt(sg.ID, 10),
		Season:     strconv.FormatInt(sg.Season, 10),
		GameDate:   gameDate,
		HomeTeamID: &home,
		AwayTeamID: &away,
		HomeScore:  sg.HomeTeam.Score,
		AwayScore:  sg.AwayTeam.Score,
		Status:     statusFromGameState(sg.GameState),
	}
}

func eventsFromPlays(gameID string, pbp *api.PlayByPlayResponse) []domain.RawEvent {
	events := make([]domain.RawEvent, 0, len(pbp.Plays))
	for _, play := range pbp.Plays {
		ev := domain.RawEvent{
			ID:            fmt.Sprintf("%s-%d", gameID, play.EventID),
			GameID:        gameID,
			EventType:     play.TypeDescKey,
			ShotType:      play.Details.ShotType,
			Period:        play.PeriodDescriptor.Number,
			TimeElapsed:   parseClock(play.TimeInPeriod),
			X:             play.Details.XCoord,
			Y:             play.Details.YCoord,
			SortOrder:     play.SortOrder,
			IsScoringPlay: play.TypeDescKey == "goal",
			IsPenalty:     play.TypeDescKey == "penalty",
		}

		if ev.IsPenalty && play.Details.Duration != nil {
			ev.PenaltyMinutes = *play.Details.Duration
		}

		if play.Details.EventOwnerTeamID != nil {
			team := strconv.FormatInt(*play.Details.EventOwnerTeamID, 10)
			ev.TeamID = &team
		}
		if pid := actingPlayerID(&play); pid != nil {
			player := strconv.FormatInt(*pid, 10)
			ev.PlayerID = &player
		}

		switch play.TypeDescKey {
		case "goal":
			ev.GoalieID = refID(play.Details.GoalieInNetID)
			ev.PrimaryAssistID = refID(play.Details.Assist1PlayerID)
			ev.SecondaryAssistID = refID(play.Details.Assist2PlayerID)
		case "shot-on-goal", "missed-shot":
			ev.GoalieID = refID(play.Details.GoalieInNetID)
		case "faceoff":
			ev.FaceoffLoserID = refID(play.Details.LosingPlayerID)
		case "blocked-shot":
			ev.BlockerID = refID(play.Details.BlockingPlayerID)
		}

		ev.Situation = situationFor(&play, pbp)

		events = append(events, ev)
	}

	normalizeAttackDirection(events)
	return events
}

// parseClock converts a "mm:ss" period clock into elapsed seconds.
// Unparseable clocks map to zero rather than dropping the event.
func parseClock(clock string) float64 {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return float64(minutes*60 + seconds)
}

// refID converts an optional numeric feed id into the string id form
// used everywhere else.
func refID(id *int64) *string {
	if id == nil {
		return nil
	}
	s := strconv.FormatInt(*id, 10)
	return &s
}

// actingPlayerID picks the player the event belongs to. The feed uses a
// different details field per event type.
func actingPlayerID(play *api.Play) *int64 {
	d := &play.Details
	switch play.TypeDescKey {
	case "goal":
		return d.ScoringPlayerID
	case "shot-on-goal", "missed-shot", "blocked-shot":
		return d.ShootingPlayerID
	case "faceoff":
		return d.WinningPlayerID
	case "hit":
		return d.HittingPlayerID
	case "penalty":
		return d.CommittedByPlayerID
	default:
		return d.PlayerID
	}
}

// situationFor decodes the feed's situation code, a four digit string
// of away goalies, away skaters, home skaters, home goalies. Strength
// is relative to the event's owning team.
func situationFor(play *api.Play, pbp *api.PlayByPlayResponse) domain.Situation {
	code := play.SituationCode
	if len(code) != 4 || play.Details.EventOwnerTeamID == nil {
		return domain.SituationEvenStrength
	}

	awaySkaters, err1 := strconv.Atoi(code[1:2])
	homeSkaters, err2 := strconv.Atoi(code[2:3])
	if err1 != nil || err2 != nil || awaySkaters == homeSkaters {
		return domain.SituationEvenStrength
	}

	ownSkaters, oppSkaters := awaySkaters, homeSkaters
	if *play.Details.EventOwnerTeamID == pbp.HomeTeam.ID {
		ownSkaters, oppSkaters = homeSkaters, awaySkaters
	}

	if ownSkaters > oppSkaters {
		return domain.SituationPowerPlay
	}
	return domain.SituationShortHanded
}

// normalizeAttackDirection flips coordinates so every team always
// attacks toward positive x. Teams switch ends each period; the feed
// reports absolute rink coordinates, so the attacking sign is inferred
// per (team, period) from where that team's shots point.
func normalizeAttackDirection(events []domain.RawEvent) {
	type key struct {
		team   string
		period int
	}

	sum := map[key]float64{}
	for i := range events {
		ev := &events[i]
		if ev.TeamID == nil || ev.X == nil {
			continue
		}
		if !isShotType(ev.EventType) {
			continue
		}
		sum[key{*ev.TeamID, ev.Period}] += *ev.X
	}

	for i := range events {
		ev := &events[i]
		if ev.TeamID == nil || ev.X == nil {
			continue
		}
		if sum[key{*ev.TeamID, ev.Period}] >= 0 {
			continue
		}
		x := -*ev.X
		ev.X = &x
		if ev.Y != nil {
			y := -*ev.Y
			ev.Y = &y
		}
	}
}

func isShotType(eventType string) bool {
	switch eventType {
	case "shot-on-goal", "goal", "missed-shot":
		return true
	}
	return false
}
