package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puckpattern/internal/domain"
)

func TestComputeShotMetricsEmpty(t *testing.T) {
	m := ComputeShotMetrics(nil)
	assert.Equal(t, domain.ShotMetrics{}, m)
}

func TestComputeShotMetrics(t *testing.T) {
	shots := []domain.ClassifiedShot{
		{EventID: "e1", Goal: true, XG: 0.3},
		{EventID: "e2", Goal: false, XG: 0.1},
		{EventID: "e3", Goal: false, XG: 0.2},
		{EventID: "e4", Goal: false, XG: 0.2},
	}
	m := ComputeShotMetrics(shots)
	assert.Equal(t, 4, m.TotalShots)
	assert.Equal(t, 1, m.Goals)
	assert.InDelta(t, 25.0, m.ShootingPercentage, 1e-9)
	assert.InDelta(t, 0.8, m.TotalXG, 1e-9)
	assert.InDelta(t, 0.2, m.AvgXG, 1e-9)
	assert.InDelta(t, 0.2, m.XGPerformance, 1e-9)
}

func TestEntryConversionRate(t *testing.T) {
	entries := []domain.ZoneEntry{
		{Controlled: true, LeadToShot: true},
		{Controlled: true, LeadToShot: false},
		{Controlled: false, LeadToShot: true}, // dump-ins never count
		{Controlled: true, LeadToShot: true},
	}
	assert.InDelta(t, 2.0/3.0, EntryConversionRate(entries), 1e-9)
}

func TestEntryConversionRateNoControlledEntries(t *testing.T) {
	assert.Zero(t, EntryConversionRate(nil))
	assert.Zero(t, EntryConversionRate([]domain.ZoneEntry{
		{Controlled: false, LeadToShot: true},
	}))
}

func TestRecoveryImpactWeights(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.PuckRecovery
		want float64
	}{
		{
			"offensive takeaway with possession",
			domain.PuckRecovery{Zone: domain.ZoneOffensive, RecoveryType: "takeaway", LeadToPossession: true},
			2.0 * 2.0 * 1.5,
		},
		{
			"neutral forecheck without possession",
			domain.PuckRecovery{Zone: domain.ZoneNeutral, RecoveryType: "forecheck"},
			1.0 * 1.5,
		},
		{
			"defensive loose puck",
			domain.PuckRecovery{Zone: domain.ZoneDefensive, RecoveryType: "loose"},
			0.5 * 1.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RecoveryImpact([]domain.PuckRecovery{tt.rec}), 1e-9)
		})
	}
}

func TestRecoveryImpactSums(t *testing.T) {
	recs := []domain.PuckRecovery{
		{Zone: domain.ZoneOffensive, RecoveryType: "takeaway", LeadToPossession: true},
		{Zone: domain.ZoneDefensive, RecoveryType: "loose"},
	}
	assert.InDelta(t, 6.0+0.5, RecoveryImpact(recs), 1e-9)
}

func TestDisruptionIndex(t *testing.T) {
	assert.Zero(t, DisruptionIndex(0, 0, 0))
	assert.InDelta(t, 1.5, DisruptionIndex(1, 0, 0), 1e-9)
	assert.InDelta(t, 2.0, DisruptionIndex(0, 1, 0), 1e-9)
	assert.InDelta(t, 1.8, DisruptionIndex(0, 0, 1), 1e-9)
	assert.InDelta(t, 2*1.5+1*2.0+3*1.8, DisruptionIndex(2, 1, 3), 1e-9)
}

func TestICEPlusWeights(t *testing.T) {
	assert.Zero(t, ICEPlus(0, 0, 0, 0))
	assert.InDelta(t, 1.5+1.2+1.0+2.0, ICEPlus(1, 1, 1, 1), 1e-9)
	assert.InDelta(t, 1.5*0.5+1.2*2+1.0*3+2.0*0.1, ICEPlus(0.5, 2, 3, 0.1), 1e-9)
}

func TestAggregateGameEndToEnd(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "faceoff", 1, 0, 0, 0, "p1", "TOR"),
		mkEvent("e2", "zone-entry", 1, 100, 30, 0, "p1", "TOR"),
		mkEvent("e3", "pass", 1, 103, 60, 10, "p1", "TOR"),
		mkEvent("e4", "goal", 1, 105, 80, 0, "p2", "TOR"),
		mkEvent("e5", "takeaway", 1, 300, 40, 0, "p9", "BOS"),
		mkEvent("e6", "shot-on-goal", 1, 302, -80, 0, "p9", "BOS"),
		mkEvent("e7", "hit", 2, 50, 0, 0, "p2", "TOR"),
	}

	d := NewClassifier(events, nil, zerolog.Nop()).Classify()
	links := NewLinker(events, zerolog.Nop()).Link(d)
	agg := AggregateGame("2024020001", events, d, links)

	byPlayer := map[string]domain.PlayerGameMetrics{}
	for _, m := range agg.Players {
		byPlayer[m.PlayerID] = m
	}
	byTeam := map[string]domain.TeamGameMetrics{}
	for _, m := range agg.Teams {
		byTeam[m.TeamID] = m
	}

	p1, ok := byPlayer["p1"]
	require.True(t, ok)
	require.NotNil(t, p1.TeamID)
	assert.Equal(t, "TOR", *p1.TeamID)
	assert.Equal(t, 1, p1.Assists)
	assert.Equal(t, 1, p1.FaceoffsWon)
	// p1's controlled entry converted into p2's goal within the window.
	assert.InDelta(t, 1.0, p1.ECR, 1e-9)
	assert.InDelta(t, ICEPlus(p1.ECR, p1.PRI, p1.PDI, p1.XGDeltaPSM), p1.ICEPlus, 1e-9)

	p2, ok := byPlayer["p2"]
	require.True(t, ok)
	assert.Equal(t, 1, p2.Goals)
	assert.Equal(t, 1, p2.Shots)
	assert.Equal(t, 1, p2.Hits)
	assert.Greater(t, p2.TotalXG, 0.0)

	p9, ok := byPlayer["p9"]
	require.True(t, ok)
	assert.Greater(t, p9.PRI, 0.0)
	assert.InDelta(t, 1.8, p9.PDI, 1e-9)

	tor, ok := byTeam["TOR"]
	require.True(t, ok)
	assert.Equal(t, 1, tor.Goals)
	assert.Equal(t, 1, tor.Shots)
	assert.Equal(t, 1, tor.FaceoffWins)
	assert.InDelta(t, 1.0, tor.ECR, 1e-9)

	bos, ok := byTeam["BOS"]
	require.True(t, ok)
	assert.Equal(t, 1, bos.Shots)
	assert.Equal(t, 0, bos.Goals)
	assert.InDelta(t, 1.8, bos.PDI, 1e-9)

	require.Len(t, agg.Profiles, 2)
}

func TestAggregateGameEmpty(t *testing.T) {
	d := NewClassifier(nil, nil, zerolog.Nop()).Classify()
	links := NewLinker(nil, zerolog.Nop()).Link(d)
	agg := AggregateGame("2024020001", nil, d, links)

	assert.Empty(t, agg.Players)
	assert.Empty(t, agg.Teams)
	assert.Empty(t, agg.Profiles)
}

func TestFormationDefaultsWithoutSpecialTeamsSample(t *testing.T) {
	events := []domain.RawEvent{
		mkEvent("e1", "shot-on-goal", 1, 100, 80, 0, "p1", "TOR"),
		mkEvent("e2", "shot-on-goal", 1, 200, -80, 0, "p9", "BOS"),
	}
	d := NewClassifier(events, nil, zerolog.Nop()).Classify()
	links := NewLinker(events, zerolog.Nop()).Link(d)
	agg := AggregateGame("2024020001", events, d, links)

	for _, m := range agg.Teams {
		assert.Equal(t, "1-3-1", m.PPFormation)
		assert.Equal(t, "BOX", m.PKFormation)
	}
}
