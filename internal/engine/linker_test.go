package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puckpattern/internal/domain"
)

func classifyAndLink(t *testing.T, events []domain.RawEvent) (*GameDerived, *LinkResult) {
	t.Helper()
	d := NewClassifier(events, nil, zerolog.Nop()).Classify()
	res := NewLinker(events, zerolog.Nop()).Link(d)
	return d, res
}

func TestEntryLeadsToShotWithinWindow(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "zone-entry", 1, 100, 30, 0, "p1", "TOR"),
		mkEvent("e2", "shot-on-goal", 1, 106, 80, 0, "p2", "TOR"),
	}
	d, _ := classifyAndLink(t, events)

	require.Len(t, d.Entries, 1)
	e := d.Entries[0]
	assert.True(t, e.LeadToShot)
	require.NotNil(t, e.LeadToShotTime)
	assert.InDelta(t, 6.0, *e.LeadToShotTime, 1e-9)
}

func TestEntryShotOutsideWindow(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "zone-entry", 1, 100, 30, 0, "p1", "TOR"),
		mkEvent("e2", "shot-on-goal", 1, 111, 80, 0, "p2", "TOR"),
	}
	d, _ := classifyAndLink(t, events)

	require.Len(t, d.Entries, 1)
	assert.False(t, d.Entries[0].LeadToShot)
	assert.Nil(t, d.Entries[0].LeadToShotTime)
}

func TestEntryShotRequiresSameTeam(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "zone-entry", 1, 100, 30, 0, "p1", "TOR"),
		mkEvent("e2", "shot-on-goal", 1, 104, -80, 0, "p9", "BOS"),
	}
	d, _ := classifyAndLink(t, events)

	require.Len(t, d.Entries, 1)
	assert.False(t, d.Entries[0].LeadToShot)
}

func TestRetroactivePrimaryAssist(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "pass", 1, 50, 0, 0, "p1", "TOR"),
		mkEvent("e2", "goal", 1, 52, 80, 0, "p2", "TOR"),
	}
	d, res := classifyAndLink(t, events)

	require.Len(t, d.Shots, 1)
	shot := d.Shots[0]
	assert.True(t, shot.Goal)
	require.NotNil(t, shot.PrimaryAssistID)
	assert.Equal(t, "p1", *shot.PrimaryAssistID)
	assert.Greater(t, res.XGDeltaByPasser["p1"], 0.0)
}

func TestAssistNotOverwritten(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "pass", 1, 50, 0, 0, "p1", "TOR"),
		mkEvent("e2", "goal", 1, 52, 80, 0, "p2", "TOR"),
	}
	d := NewClassifier(events, nil, zerolog.Nop()).Classify()
	d.Shots[0].PrimaryAssistID = sp("p7")
	NewLinker(events, zerolog.Nop()).Link(d)

	assert.Equal(t, "p7", *d.Shots[0].PrimaryAssistID)
}

func TestFeedAssistSurvivesLinking(t *testing.T) {
	goal := mkEvent("e2", "goal", 1, 52, 80, 0, "p2", "TOR")
	goal.PrimaryAssistID = sp("p7")
	events := []domain.RawEvent{
		mkEvent("e1", "pass", 1, 50, 0, 0, "p1", "TOR"),
		goal,
	}
	d, _ := classifyAndLink(t, events)

	require.Len(t, d.Shots, 1)
	require.NotNil(t, d.Shots[0].PrimaryAssistID)
	assert.Equal(t, "p7", *d.Shots[0].PrimaryAssistID)
}

func TestPassShotDeltaNeverNegative(t *testing.T) {
	// Pass from the slot out to the point: the shot is worth less than
	// a shot from the pass origin would have been.
	events := []domain.RawEvent{
		mkEvent("e1", "pass", 1, 50, 85, 0, "p1", "TOR"),
		mkEvent("e2", "shot-on-goal", 1, 52, 30, 0, "p2", "TOR"),
	}
	_, res := classifyAndLink(t, events)
	assert.InDelta(t, 0.0, res.XGDeltaByPasser["p1"], 1e-9)
}

func TestPassShotWindowExcludesLateShots(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "pass", 1, 50, 0, 0, "p1", "TOR"),
		mkEvent("e2", "puck-touch", 1, 51, 5, 0, "p2", "TOR"),
		mkEvent("e3", "shot-on-goal", 1, 55, 80, 0, "p2", "TOR"),
	}
	_, res := classifyAndLink(t, events)
	assert.Zero(t, res.XGDeltaByPasser["p1"])
}

func TestOffensiveZoneCycleDetected(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "pass", 1, 10, 60, 20, "p1", "TOR"),
		mkEvent("e2", "pass", 1, 11.5, 70, -10, "p2", "TOR"),
		mkEvent("e3", "pass", 1, 13, 55, 15, "p1", "TOR"),
		mkEvent("e4", "shot-on-goal", 1, 14, 80, 0, "p2", "TOR"),
	}
	_, res := classifyAndLink(t, events)
	assert.Equal(t, 1, res.CyclesByTeam["TOR"])
}

func TestCycleBrokenByGap(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "pass", 1, 10, 60, 20, "p1", "TOR"),
		mkEvent("e2", "pass", 1, 11.5, 70, -10, "p2", "TOR"),
		mkEvent("e3", "pass", 1, 17, 55, 15, "p1", "TOR"),
		mkEvent("e4", "shot-on-goal", 1, 18, 80, 0, "p2", "TOR"),
	}
	_, res := classifyAndLink(t, events)
	assert.Zero(t, res.CyclesByTeam["TOR"])
}

func TestCycleRequiresOffensiveZone(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "pass", 1, 10, 0, 20, "p1", "TOR"),
		mkEvent("e2", "pass", 1, 11.5, 5, -10, "p2", "TOR"),
		mkEvent("e3", "pass", 1, 13, 10, 15, "p1", "TOR"),
		mkEvent("e4", "puck-touch", 1, 14, 12, 0, "p2", "TOR"),
	}
	_, res := classifyAndLink(t, events)
	assert.Zero(t, res.CyclesByTeam["TOR"])
}

func TestRushPlayDetected(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "hit", 1, 10, -50, 0, "p1", "TOR"),
		mkEvent("e2", "hit", 1, 12, 0, 0, "p2", "TOR"),
		mkEvent("e3", "shot-on-goal", 1, 14, 60, 0, "p3", "TOR"),
	}
	_, res := classifyAndLink(t, events)
	assert.Equal(t, 1, res.RushPlaysByTeam["TOR"])
}

func TestRushPlayTooSlow(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "hit", 1, 10, -50, 0, "p1", "TOR"),
		mkEvent("e2", "hit", 1, 13, 0, 0, "p2", "TOR"),
		mkEvent("e3", "shot-on-goal", 1, 16, 60, 0, "p3", "TOR"),
	}
	_, res := classifyAndLink(t, events)
	assert.Zero(t, res.RushPlaysByTeam["TOR"])
}

func TestRushPlayNeedsZoneProgression(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "hit", 1, 10, 60, 0, "p1", "TOR"),
		mkEvent("e2", "hit", 1, 12, 65, 0, "p2", "TOR"),
		mkEvent("e3", "shot-on-goal", 1, 14, 70, 0, "p3", "TOR"),
	}
	_, res := classifyAndLink(t, events)
	assert.Zero(t, res.RushPlaysByTeam["TOR"])
}
