package engine

import "puckpattern/internal/constants"

// ICEPlus is the composite impact score: a fixed-weight linear blend of
// entry conversion, recovery impact, disruption and pass-shot xG delta.
// The weights are part of the metric's definition.
func ICEPlus(ecr, pri, pdi, xgDeltaPSM float64) float64 {
	return constants.ICEWeightECR*ecr +
		constants.ICEWeightPRI*pri +
		constants.ICEWeightPDI*pdi +
		constants.ICEWeightXGDeltaPSM*xgDeltaPSM
}
