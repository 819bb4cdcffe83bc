package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"puckpattern/internal/domain"
)

func TestModalSystemsPicksMostFrequentLabel(t *testing.T) {
	games := []domain.TeamGameMetrics{
		{ForecheckStyle: "AGGRESSIVE", DefensiveStructure: "MAN", PPFormation: "UMBRELLA", PKFormation: "DIAMOND"},
		{ForecheckStyle: "AGGRESSIVE", DefensiveStructure: "ZONE", PPFormation: "UMBRELLA", PKFormation: "DIAMOND"},
		{ForecheckStyle: "PASSIVE", DefensiveStructure: "ZONE", PPFormation: "OVERLOAD", PKFormation: "DIAMOND"},
	}

	systems := modalSystems(games)

	assert.Equal(t, "AGGRESSIVE", systems.ForecheckStyle)
	assert.Equal(t, "ZONE", systems.DefensiveStructure)
	assert.Equal(t, "UMBRELLA", systems.PPFormation)
	assert.Equal(t, "DIAMOND", systems.PKFormation)
}

func TestModalSystemsDefaultsWhenNoGames(t *testing.T) {
	systems := modalSystems(nil)

	assert.Equal(t, "STANDARD", systems.ForecheckStyle)
	assert.Equal(t, "HYBRID", systems.DefensiveStructure)
	assert.Equal(t, "1-3-1", systems.PPFormation)
	assert.Equal(t, "BOX", systems.PKFormation)
}

func TestModalSystemsDefaultsWhenLabelsEmpty(t *testing.T) {
	games := []domain.TeamGameMetrics{
		{PKFormation: "DIAMOND"},
		{},
	}

	systems := modalSystems(games)

	// Rows with blank labels fall back to the defaults per system.
	assert.Equal(t, "STANDARD", systems.ForecheckStyle)
	assert.Equal(t, "HYBRID", systems.DefensiveStructure)
	assert.Equal(t, "1-3-1", systems.PPFormation)
	assert.Equal(t, "DIAMOND", systems.PKFormation)
}
