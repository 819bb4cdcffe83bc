package engine

import (
	"math"
	"strings"

	"puckpattern/internal/constants"
	"puckpattern/internal/domain"
)

// shotTypeFactors adjusts the base xG by how the puck was shot.
// Unknown types get 1.0.
var shotTypeFactors = map[string]float64{
	"slap":       0.8,
	"wrist":      1.1,
	"deflection": 1.3,
	"deflected":  1.3,
	"tip-in":     1.4,
	"backhand":   0.9,
	"snap":       1.0,
}

// ShotGeometry computes distance (feet) and angle (degrees, 0 straight
// on) from shot coordinates to the goal at (89, 0). When the shot is on
// the goal line the angle is pinned to 90 since the atan denominator
// vanishes.
func ShotGeometry(x, y *float64) (distance, angle *float64) {
	if x == nil || y == nil {
		return nil, nil
	}
	dx := *x - constants.GoalX
	dy := *y - constants.GoalY

	d := math.Sqrt(dx*dx + dy*dy)

	var a float64
	if dx == 0 {
		a = 90
	} else {
		a = math.Atan(math.Abs(dy)/math.Abs(dx)) * 180 / math.Pi
	}
	return &d, &a
}

// ExpectedGoals is the fixed heuristic xG model. Not a fitted
// statistical model; the formula and constants are load-bearing and
// must not drift.
func ExpectedGoals(distance, angle *float64, shotType string, rush, rebound bool, situation domain.Situation) float64 {
	if distance == nil || angle == nil {
		return constants.XGDefault
	}

	base := math.Max(constants.XGFloor, 1.0-*distance/100)
	angleFactor := *angle / 90.0
	xg := base * (1.0 - angleFactor*0.7)

	xg *= shotTypeFactor(shotType)

	if rush {
		xg *= constants.XGRushBoost
	}
	if rebound {
		xg *= constants.XGReboundBoost
	}

	switch situation {
	case domain.SituationPowerPlay:
		xg *= constants.XGPowerPlay
	case domain.SituationShortHanded:
		xg *= constants.XGShortHanded
	}

	return math.Min(constants.XGCap, xg)
}

func shotTypeFactor(shotType string) float64 {
	key := strings.ToLower(strings.TrimSpace(shotType))
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, " ", "-")
	key = strings.TrimSuffix(key, "-shot")
	if f, ok := shotTypeFactors[key]; ok {
		return f
	}
	return 1.0
}
