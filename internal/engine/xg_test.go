package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puckpattern/internal/domain"
)

func TestShotGeometryGoalLine(t *testing.T) {
	// Directly on the goal: zero distance, angle pinned to 90.
	d, a := ShotGeometry(fp(89), fp(0))
	require.NotNil(t, d)
	require.NotNil(t, a)
	assert.InDelta(t, 0.0, *d, 1e-9)
	assert.InDelta(t, 90.0, *a, 1e-9)

	// On the goal line but off to the side: still pinned.
	d, a = ShotGeometry(fp(89), fp(10))
	assert.InDelta(t, 10.0, *d, 1e-9)
	assert.InDelta(t, 90.0, *a, 1e-9)
}

func TestShotGeometryStraightOn(t *testing.T) {
	d, a := ShotGeometry(fp(79), fp(0))
	require.NotNil(t, d)
	require.NotNil(t, a)
	assert.InDelta(t, 10.0, *d, 1e-9)
	assert.InDelta(t, 0.0, *a, 1e-9)
}

func TestShotGeometryMissingCoords(t *testing.T) {
	d, a := ShotGeometry(nil, fp(0))
	assert.Nil(t, d)
	assert.Nil(t, a)
}

func TestExpectedGoalsMissingGeometry(t *testing.T) {
	xg := ExpectedGoals(nil, nil, "wrist", false, false, domain.SituationEvenStrength)
	assert.InDelta(t, 0.05, xg, 1e-9)
}

func TestExpectedGoalsFormula(t *testing.T) {
	// 40 feet straight on, wrist: (1 - 40/100) * (1 - 0) * 1.1.
	xg := ExpectedGoals(fp(40), fp(0), "wrist", false, false, domain.SituationEvenStrength)
	assert.InDelta(t, 0.66, xg, 1e-9)

	// 10 feet from a 45 degree angle: 0.9 * (1 - 0.5*0.7) * 1.1.
	xg = ExpectedGoals(fp(10), fp(45), "wrist", false, false, domain.SituationEvenStrength)
	assert.InDelta(t, 0.9*0.65*1.1, xg, 1e-9)
}

func TestExpectedGoalsMultipliers(t *testing.T) {
	base := ExpectedGoals(fp(40), fp(30), "snap", false, false, domain.SituationEvenStrength)

	rush := ExpectedGoals(fp(40), fp(30), "snap", true, false, domain.SituationEvenStrength)
	assert.InDelta(t, base*1.2, rush, 1e-9)

	rebound := ExpectedGoals(fp(40), fp(30), "snap", false, true, domain.SituationEvenStrength)
	assert.InDelta(t, base*1.3, rebound, 1e-9)

	pp := ExpectedGoals(fp(40), fp(30), "snap", false, false, domain.SituationPowerPlay)
	assert.InDelta(t, base*1.2, pp, 1e-9)

	sh := ExpectedGoals(fp(40), fp(30), "snap", false, false, domain.SituationShortHanded)
	assert.InDelta(t, base*0.7, sh, 1e-9)
}

func TestExpectedGoalsCapped(t *testing.T) {
	// Point blank tip-in on the power play off a rebound stacks every
	// multiplier; the cap holds.
	xg := ExpectedGoals(fp(2), fp(0), "tip-in", true, true, domain.SituationPowerPlay)
	assert.InDelta(t, 0.95, xg, 1e-9)
}

func TestExpectedGoalsBounds(t *testing.T) {
	distances := []float64{0, 5, 15, 30, 60, 100, 150, 250}
	angles := []float64{0, 15, 30, 45, 60, 89, 90}
	types := []string{"", "slap", "wrist", "tip-in", "backhand", "nonsense"}
	for _, d := range distances {
		for _, a := range angles {
			for _, st := range types {
				xg := ExpectedGoals(fp(d), fp(a), st, true, true, domain.SituationPowerPlay)
				assert.GreaterOrEqual(t, xg, 0.0)
				assert.LessOrEqual(t, xg, 0.95)
			}
		}
	}
}

func TestShotTypeFactorNormalization(t *testing.T) {
	canonical := ExpectedGoals(fp(30), fp(20), "tip-in", false, false, domain.SituationEvenStrength)
	for _, variant := range []string{"Tip-In", "tip_in", "tip in", "tip-in-shot", "TIP IN SHOT"} {
		xg := ExpectedGoals(fp(30), fp(20), variant, false, false, domain.SituationEvenStrength)
		assert.InDelta(t, canonical, xg, 1e-9, "variant %q", variant)
	}
}
