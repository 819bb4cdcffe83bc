package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puckpattern/internal/config"
	"puckpattern/internal/database"
	"puckpattern/internal/db"
	"puckpattern/internal/domain"
	"puckpattern/internal/repository"
)

type processorHarness struct {
	svc       *ProcessorService
	events    *repository.EventRepository
	metrics   *repository.MetricsRepository
	reference *repository.ReferenceRepository
}

func newProcessorHarness(t *testing.T) *processorHarness {
	t.Helper()

	cfg := &config.Config{
		DBPath:         filepath.Join(t.TempDir(), "test.db"),
		ProcessWorkers: 2,
	}
	sqlDB, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	events := repository.NewEventRepository(sqlDB, queries, zerolog.Nop())
	derived := repository.NewDerivedRepository(sqlDB, queries, zerolog.Nop())
	metrics := repository.NewMetricsRepository(sqlDB, queries, zerolog.Nop())
	reference := repository.NewReferenceRepository(sqlDB, queries, zerolog.Nop())

	return &processorHarness{
		svc:       NewProcessorService(events, derived, metrics, cfg, zerolog.Nop()),
		events:    events,
		metrics:   metrics,
		reference: reference,
	}
}

func strp(s string) *string { return &s }
func f64p(v float64) *float64 {
	return &v
}

func (h *processorHarness) seedGame(t *testing.T, gameID string) {
	t.Helper()
	ctx := context.Background()

	home, away := "10", "20"
	require.NoError(t, h.reference.UpsertGame(ctx, &domain.Game{
		GameID:     gameID,
		Season:     "20242025",
		HomeTeamID: &home,
		AwayTeamID: &away,
		Status:     "final",
	}))

	mk := func(id, eventType string, elapsed, x, y float64, playerID, teamID string, order int) domain.RawEvent {
		return domain.RawEvent{
			ID:          gameID + "-" + id,
			GameID:      gameID,
			EventType:   eventType,
			Period:      1,
			TimeElapsed: elapsed,
			X:           f64p(x),
			Y:           f64p(y),
			PlayerID:    strp(playerID),
			TeamID:      strp(teamID),
			Situation:   domain.SituationEvenStrength,
			SortOrder:   order,
		}
	}

	faceoff := mk("1", "faceoff", 0, 0, 0, "p1", "10", 10)
	faceoff.FaceoffLoserID = strp("p9")

	goal := mk("4", "goal", 65, 80, 5, "p2", "10", 40)
	goal.IsScoringPlay = true
	goal.GoalieID = strp("g30")
	goal.PrimaryAssistID = strp("p1")

	events := []domain.RawEvent{
		faceoff,
		mk("2", "pass", 60, 40, 10, "p1", "10", 20),
		mk("3", "shot-on-goal", 62, 70, 0, "p2", "10", 30),
		goal,
		mk("5", "hit", 100, -30, 0, "p9", "20", 50),
	}
	require.NoError(t, h.events.UpsertBatch(ctx, events))
}

func TestProcessGameRerunConverges(t *testing.T) {
	h := newProcessorHarness(t)
	h.seedGame(t, "2024020001")
	ctx := context.Background()

	first, err := h.svc.ProcessGame(ctx, "2024020001")
	require.NoError(t, err)
	assert.Equal(t, 5, first.Events)
	assert.Equal(t, 2, first.NewShots)

	players1, err := h.metrics.GetPlayerMetricsByGame(ctx, "2024020001")
	require.NoError(t, err)
	teams1, err := h.metrics.GetTeamMetricsByGame(ctx, "2024020001")
	require.NoError(t, err)
	require.NotEmpty(t, players1)
	require.Len(t, teams1, 2)

	second, err := h.svc.ProcessGame(ctx, "2024020001")
	require.NoError(t, err)
	assert.Zero(t, second.NewShots)
	assert.Zero(t, second.NewEntries)
	assert.Zero(t, second.NewPasses)
	assert.Zero(t, second.NewRecoveries)
	assert.Equal(t, first.PlayerRows, second.PlayerRows)
	assert.Equal(t, first.TeamRows, second.TeamRows)

	players2, err := h.metrics.GetPlayerMetricsByGame(ctx, "2024020001")
	require.NoError(t, err)
	teams2, err := h.metrics.GetTeamMetricsByGame(ctx, "2024020001")
	require.NoError(t, err)

	// The aggregate replace keeps one row per (player, game) and
	// (team, game) with identical values across reruns.
	require.Len(t, players2, len(players1))
	byPlayer := map[string]domain.PlayerGameMetrics{}
	for _, p := range players1 {
		byPlayer[p.PlayerID] = p
	}
	for _, p := range players2 {
		prev, ok := byPlayer[p.PlayerID]
		require.True(t, ok, "player %s appeared on rerun only", p.PlayerID)
		assert.Equal(t, prev.Goals, p.Goals)
		assert.Equal(t, prev.Assists, p.Assists)
		assert.Equal(t, prev.Shots, p.Shots)
		assert.Equal(t, prev.FaceoffsTaken, p.FaceoffsTaken)
		assert.Equal(t, prev.FaceoffsWon, p.FaceoffsWon)
		assert.InDelta(t, prev.TotalXG, p.TotalXG, 1e-9)
		assert.InDelta(t, prev.ICEPlus, p.ICEPlus, 1e-9)
	}

	require.Len(t, teams2, 2)
	byTeam := map[string]domain.TeamGameMetrics{}
	for _, tm := range teams1 {
		byTeam[tm.TeamID] = tm
	}
	for _, tm := range teams2 {
		prev, ok := byTeam[tm.TeamID]
		require.True(t, ok)
		assert.Equal(t, prev.Goals, tm.Goals)
		assert.Equal(t, prev.Shots, tm.Shots)
		assert.Equal(t, prev.FaceoffWins, tm.FaceoffWins)
		assert.InDelta(t, prev.TotalXG, tm.TotalXG, 1e-9)
	}
}

func TestProcessGameCountsSecondaryParticipants(t *testing.T) {
	h := newProcessorHarness(t)
	h.seedGame(t, "2024020002")
	ctx := context.Background()

	_, err := h.svc.ProcessGame(ctx, "2024020002")
	require.NoError(t, err)

	players, err := h.metrics.GetPlayerMetricsByGame(ctx, "2024020002")
	require.NoError(t, err)

	byPlayer := map[string]domain.PlayerGameMetrics{}
	for _, p := range players {
		byPlayer[p.PlayerID] = p
	}

	// p9 lost the opening draw; p1 won it and assisted the goal.
	loser, ok := byPlayer["p9"]
	require.True(t, ok)
	assert.Equal(t, 1, loser.FaceoffsTaken)
	assert.Equal(t, 0, loser.FaceoffsWon)

	winner, ok := byPlayer["p1"]
	require.True(t, ok)
	assert.Equal(t, 1, winner.FaceoffsTaken)
	assert.Equal(t, 1, winner.FaceoffsWon)
	assert.Equal(t, 1, winner.Assists)
}

func TestProcessGamesCollectsFailures(t *testing.T) {
	h := newProcessorHarness(t)
	h.seedGame(t, "2024020003")
	ctx := context.Background()

	results, err := h.svc.ProcessGames(ctx, []string{"2024020003", "2024029999"})

	// The empty game fails but must not stop its sibling.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2024029999")
	require.Len(t, results, 2)
	require.NotNil(t, results[0])
	assert.Equal(t, "2024020003", results[0].GameID)
	assert.Nil(t, results[1])
}
