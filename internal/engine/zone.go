package engine

import (
	"puckpattern/internal/constants"
	"puckpattern/internal/domain"
)

// ZoneFor maps an ice x-coordinate to a zone. Missing coordinates
// default to the neutral zone rather than erroring.
func ZoneFor(x *float64) domain.Zone {
	if x == nil {
		return domain.ZoneNeutral
	}
	switch {
	case *x > constants.BlueLineX:
		return domain.ZoneOffensive
	case *x < -constants.BlueLineX:
		return domain.ZoneDefensive
	default:
		return domain.ZoneNeutral
	}
}
