package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puckpattern/internal/domain"
)

func fp(v float64) *float64 { return &v }
func sp(s string) *string   { return &s }

func mkEvent(id, eventType string, period int, elapsed, x, y float64, playerID, teamID string) domain.RawEvent {
	ev := domain.RawEvent{
		ID:          id,
		GameID:      "2024020001",
		EventType:   eventType,
		Period:      period,
		TimeElapsed: elapsed,
		X:           fp(x),
		Y:           fp(y),
		Situation:   domain.SituationEvenStrength,
	}
	if playerID != "" {
		ev.PlayerID = sp(playerID)
	}
	if teamID != "" {
		ev.TeamID = sp(teamID)
	}
	return ev
}

func classify(t *testing.T, events []domain.RawEvent) *GameDerived {
	t.Helper()
	return NewClassifier(events, nil, zerolog.Nop()).Classify()
}

func TestClassifyShotOnGoalLine(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "shot-on-goal", 1, 100, 89, 0, "p1", "TOR"),
	}
	d := classify(t, events)

	require.Len(t, d.Shots, 1)
	s := d.Shots[0]
	require.NotNil(t, s.Distance)
	require.NotNil(t, s.Angle)
	assert.InDelta(t, 0.0, *s.Distance, 1e-9)
	assert.InDelta(t, 90.0, *s.Angle, 1e-9)
	assert.False(t, s.Goal)
	assert.True(t, s.ScoringChance)
	assert.True(t, s.HighDanger)
	assert.Equal(t, "p1", *s.ShooterID)
}

func TestShotTypeCarriedFromFeed(t *testing.T) {
	ev := mkEvent("e1", "shot-on-goal", 1, 100, 39, 0, "p1", "TOR")
	ev.ShotType = "tip-in"

	d := classify(t, []domain.RawEvent{ev})

	require.Len(t, d.Shots, 1)
	s := d.Shots[0]
	assert.Equal(t, "tip-in", s.ShotType)
	// distance 50, straight on: 0.5 * 1.0 * 1.4
	assert.InDelta(t, 0.70, s.XG, 1e-9)
}

func TestShotTypeDefaultsToWrist(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "shot-on-goal", 1, 100, 39, 0, "p1", "TOR"),
	}
	d := classify(t, events)

	require.Len(t, d.Shots, 1)
	assert.Equal(t, "wrist", d.Shots[0].ShotType)
}

func TestShotCarriesFeedParticipants(t *testing.T) {
	goal := mkEvent("e1", "goal", 1, 100, 80, 5, "p1", "TOR")
	goal.GoalieID = sp("g30")
	goal.PrimaryAssistID = sp("p2")
	goal.SecondaryAssistID = sp("p3")

	d := classify(t, []domain.RawEvent{goal})

	require.Len(t, d.Shots, 1)
	s := d.Shots[0]
	require.NotNil(t, s.GoalieID)
	assert.Equal(t, "g30", *s.GoalieID)
	require.NotNil(t, s.PrimaryAssistID)
	assert.Equal(t, "p2", *s.PrimaryAssistID)
	require.NotNil(t, s.SecondaryAssistID)
	assert.Equal(t, "p3", *s.SecondaryAssistID)
}

func TestClassifyGoal(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "goal", 2, 300, 80, 5, "p1", "TOR"),
	}
	d := classify(t, events)

	require.Len(t, d.Shots, 1)
	assert.True(t, d.Shots[0].Goal)
}

func TestReboundWindowBoundary(t *testing.T) {
	tests := []struct {
		name    string
		gap     float64
		rebound bool
	}{
		{"inside window", 2.9, true},
		{"exactly at window", 3.0, true},
		{"outside window", 3.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []domain.RawEvent{
				mkEvent("e1", "shot-on-goal", 1, 100, 70, 0, "p1", "TOR"),
				mkEvent("e2", "shot-on-goal", 1, 100+tt.gap, 85, 0, "p2", "TOR"),
			}
			d := classify(t, events)
			require.Len(t, d.Shots, 2)
			assert.Equal(t, tt.rebound, d.Shots[1].ReboundShot)
		})
	}
}

func TestReboundDoesNotCrossPeriods(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "shot-on-goal", 1, 1199, 70, 0, "p1", "TOR"),
		mkEvent("e2", "shot-on-goal", 2, 1, 85, 0, "p2", "TOR"),
	}
	d := classify(t, events)
	require.Len(t, d.Shots, 2)
	assert.False(t, d.Shots[1].ReboundShot)
}

func TestRushShotFlag(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "hit", 1, 100, 0, 0, "p1", "TOR"),
		mkEvent("e2", "shot-on-goal", 1, 103, 80, 0, "p2", "TOR"),
	}
	d := classify(t, events)
	require.Len(t, d.Shots, 1)
	assert.True(t, d.Shots[0].RushShot)
}

func TestRushShotRequiresSameTeam(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "hit", 1, 100, 0, 0, "p1", "BOS"),
		mkEvent("e2", "shot-on-goal", 1, 103, 80, 0, "p2", "TOR"),
	}
	d := classify(t, events)
	require.Len(t, d.Shots, 1)
	assert.False(t, d.Shots[0].RushShot)
}

func TestMalformedEventSkipped(t *testing.T) {
	events := []domain.RawEvent{
		{ID: "e1", GameID: "2024020001", EventType: "", Period: 1, TimeElapsed: 10},
		mkEvent("e2", "shot-on-goal", 0, 20, 80, 0, "p1", "TOR"),
		mkEvent("e3", "shot-on-goal", 1, 30, 80, 0, "p1", "TOR"),
	}
	d := classify(t, events)
	require.Len(t, d.Shots, 1)
	assert.Equal(t, "e3", d.Shots[0].EventID)
}

func TestAlreadyClassifiedSkipped(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "shot-on-goal", 1, 100, 80, 0, "p1", "TOR"),
		mkEvent("e2", "shot-on-goal", 1, 110, 80, 0, "p2", "BOS"),
		mkEvent("e3", "faceoff", 1, 120, 0, 0, "p1", "TOR"),
	}
	first := classify(t, events)
	require.Len(t, first.Shots, 2)

	skip := map[string]bool{}
	for _, s := range first.Shots {
		skip[s.EventID] = true
	}

	second := NewClassifier(events, skip, zerolog.Nop()).Classify()
	assert.Empty(t, second.Shots)
	// Counting stats are always recomputed; the wholesale aggregate
	// rebuild depends on them being present on every run.
	assert.Equal(t, 1, second.PlayerCounting["p1"].FaceoffsWon)
}

func TestExplicitZoneEntry(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "zone-entry", 1, 100, 30, 0, "p1", "TOR"),
	}
	d := classify(t, events)
	require.Len(t, d.Entries, 1)
	e := d.Entries[0]
	assert.True(t, e.Controlled)
	assert.Equal(t, "carry", e.EntryType)
	assert.Equal(t, "CONTROLLED", e.AttackSpeed)
}

func TestEntryStyleFromEventLabel(t *testing.T) {
	tests := []struct {
		eventType  string
		entryType  string
		controlled bool
	}{
		{"zone-entry", "carry", true},
		{"dump-in-entry", "dump", false},
		{"pass-entry", "pass", true},
	}
	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			events := []domain.RawEvent{
				mkEvent("e1", tt.eventType, 1, 100, 30, 0, "p1", "TOR"),
			}
			d := classify(t, events)
			require.Len(t, d.Entries, 1)
			assert.Equal(t, tt.entryType, d.Entries[0].EntryType)
			assert.Equal(t, tt.controlled, d.Entries[0].Controlled)
		})
	}
}

func TestEntryRushAttackSpeed(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "hit", 1, 100, -40, 0, "p1", "TOR"),
		mkEvent("e2", "zone-entry", 1, 104, 30, 0, "p1", "TOR"),
	}
	d := classify(t, events)
	require.Len(t, d.Entries, 1)
	assert.Equal(t, "RUSH", d.Entries[0].AttackSpeed)
}

func TestInferredEntryFromTransition(t *testing.T) {
	// An unlabeled offensive-zone touch right after a neutral-zone
	// touch by the same team reads as an entry.
	events := []domain.RawEvent{
		mkEvent("e1", "puck-touch", 1, 100, 0, 0, "p1", "TOR"),
		mkEvent("e2", "puck-touch", 1, 103, 40, 0, "p1", "TOR"),
	}
	d := classify(t, events)
	require.Len(t, d.Entries, 1)
	assert.Equal(t, "e2", d.Entries[0].EventID)
}

func TestShotNotDoubleClassifiedAsEntry(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "hit", 1, 100, 0, 0, "p1", "TOR"),
		mkEvent("e2", "shot-on-goal", 1, 103, 40, 0, "p1", "TOR"),
	}
	d := classify(t, events)
	assert.Len(t, d.Shots, 1)
	assert.Empty(t, d.Entries)
}

func TestCompletedPass(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "pass", 1, 100, 30, 10, "p1", "TOR"),
		mkEvent("e2", "puck-touch", 1, 101, 35, -5, "p2", "TOR"),
	}
	d := classify(t, events)
	require.Len(t, d.Passes, 1)
	p := d.Passes[0]
	assert.True(t, p.Completed)
	require.NotNil(t, p.RecipientID)
	assert.Equal(t, "p2", *p.RecipientID)
	assert.Equal(t, domain.ZoneOffensive, p.Zone)
	assert.False(t, p.Intercepted)
}

func TestInterceptedPass(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "pass", 1, 100, 0, 0, "p1", "TOR"),
		mkEvent("e2", "puck-touch", 1, 101.5, 5, 0, "p9", "BOS"),
	}
	d := classify(t, events)
	require.Len(t, d.Passes, 1)
	p := d.Passes[0]
	assert.False(t, p.Completed)
	assert.True(t, p.Intercepted)
	require.NotNil(t, p.InterceptedByID)
	assert.Equal(t, "p9", *p.InterceptedByID)
}

func TestIncompletePassNobodyTouches(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "pass", 1, 100, 0, 0, "p1", "TOR"),
		mkEvent("e2", "puck-touch", 1, 110, 5, 0, "p9", "BOS"),
	}
	d := classify(t, events)
	require.Len(t, d.Passes, 1)
	assert.False(t, d.Passes[0].Completed)
	assert.False(t, d.Passes[0].Intercepted)
}

func TestTakeawayRecovery(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "takeaway", 1, 100, 40, 0, "p1", "TOR"),
		mkEvent("e2", "puck-touch", 1, 102, 45, 0, "p2", "TOR"),
	}
	d := classify(t, events)
	require.Len(t, d.Recoveries, 1)
	r := d.Recoveries[0]
	assert.Equal(t, "takeaway", r.RecoveryType)
	assert.Equal(t, domain.ZoneOffensive, r.Zone)
	assert.True(t, r.LeadToPossession)
}

func TestTakeawayNoPossession(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "takeaway", 1, 100, 40, 0, "p1", "TOR"),
		mkEvent("e2", "puck-touch", 1, 108, 45, 0, "p9", "BOS"),
	}
	d := classify(t, events)
	require.Len(t, d.Recoveries, 1)
	assert.False(t, d.Recoveries[0].LeadToPossession)
}

func TestGiveawayCreditsOpponent(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "giveaway", 1, 100, -40, 0, "p1", "TOR"),
		mkEvent("e2", "puck-touch", 1, 102, -42, 0, "p9", "BOS"),
	}
	d := classify(t, events)
	require.Len(t, d.Recoveries, 1)
	r := d.Recoveries[0]
	assert.Equal(t, "p9", *r.PlayerID)
	// TOR's defensive zone is BOS's forecheck territory, but zone is
	// taken from the recovering touch's raw coordinates.
	assert.Equal(t, domain.ZoneDefensive, r.Zone)
	assert.Equal(t, "loose", r.RecoveryType)
	assert.True(t, r.LeadToPossession)
}

func TestGiveawayNobodyRecovers(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "giveaway", 1, 100, -40, 0, "p1", "TOR"),
		mkEvent("e2", "puck-touch", 1, 110, -42, 0, "p9", "BOS"),
	}
	d := classify(t, events)
	assert.Empty(t, d.Recoveries)
}

func TestFaceoffCounting(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "faceoff", 1, 0, 0, 0, "p1", "TOR"),
		mkEvent("e2", "faceoff", 1, 60, 0, 0, "p9", "BOS"),
		mkEvent("e3", "faceoff", 1, 120, 0, 0, "p1", "TOR"),
	}
	d := classify(t, events)

	assert.Equal(t, 2, d.PlayerCounting["p1"].FaceoffsTaken)
	assert.Equal(t, 2, d.PlayerCounting["p1"].FaceoffsWon)
	assert.Equal(t, 1, d.PlayerCounting["p9"].FaceoffsWon)

	assert.Equal(t, 3, d.TeamCounting["TOR"].FaceoffsTaken)
	assert.Equal(t, 2, d.TeamCounting["TOR"].FaceoffsWon)
	assert.Equal(t, 3, d.TeamCounting["BOS"].FaceoffsTaken)
	assert.Equal(t, 1, d.TeamCounting["BOS"].FaceoffsWon)
}

func TestFaceoffLoserTakesWithoutWinning(t *testing.T) {
	draw := mkEvent("e1", "faceoff", 1, 0, 0, 0, "p1", "TOR")
	draw.FaceoffLoserID = sp("p9")

	d := classify(t, []domain.RawEvent{draw})

	assert.Equal(t, 1, d.PlayerCounting["p1"].FaceoffsTaken)
	assert.Equal(t, 1, d.PlayerCounting["p1"].FaceoffsWon)
	assert.Equal(t, 1, d.PlayerCounting["p9"].FaceoffsTaken)
	assert.Equal(t, 0, d.PlayerCounting["p9"].FaceoffsWon)
}

func TestPenaltyCounting(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "penalty", 1, 100, 0, 0, "p1", "TOR"),
		mkEvent("e2", "penalty", 2, 100, 0, 0, "p1", "TOR"),
	}
	d := classify(t, events)
	assert.Equal(t, 4, d.PlayerCounting["p1"].PIM)
	assert.Equal(t, 4, d.TeamCounting["TOR"].PIM)
}

func TestPenaltyCountingUsesFeedDuration(t *testing.T) {
	major := mkEvent("e1", "penalty", 1, 100, 0, 0, "p1", "TOR")
	major.PenaltyMinutes = 5

	d := classify(t, []domain.RawEvent{major})
	assert.Equal(t, 5, d.PlayerCounting["p1"].PIM)
	assert.Equal(t, 5, d.TeamCounting["TOR"].PIM)
}

func TestBlockedShotCreditsDefendingTeam(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "faceoff", 1, 0, 0, 0, "p9", "BOS"),
		mkEvent("e2", "blocked-shot", 1, 100, 60, 0, "p1", "TOR"),
	}
	d := classify(t, events)
	assert.Equal(t, 1, d.TeamCounting["BOS"].Blocks)
	assert.Equal(t, 0, d.TeamCounting["TOR"].Blocks)
	// The attempt still produces a shot record for the shooting team.
	assert.Len(t, d.Shots, 1)
}

func TestBlockedShotCreditsBlockingPlayer(t *testing.T) {
	block := mkEvent("e1", "blocked-shot", 1, 100, 60, 0, "p1", "TOR")
	block.BlockerID = sp("p8")

	d := classify(t, []domain.RawEvent{block})
	assert.Equal(t, 1, d.PlayerCounting["p8"].Blocks)
	assert.Equal(t, 0, d.PlayerCounting["p1"].Blocks)
}

func TestHitCounting(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "hit", 1, 100, 0, 0, "p1", "TOR"),
	}
	d := classify(t, events)
	assert.Equal(t, 1, d.PlayerCounting["p1"].Hits)
	assert.Equal(t, 1, d.TeamCounting["TOR"].Hits)
	assert.Empty(t, d.Shots)
	assert.Empty(t, d.Passes)
}
