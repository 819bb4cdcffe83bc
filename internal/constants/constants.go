package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	ProcessTimeout     = 2 * time.Minute
)

const (
	// SQLite allows one writer at a time; the pool is sized for the
	// process worker fan-out plus API readers, not for a server DB.
	DBMaxOpenConns    = 8
	DBMaxIdleConns    = 4
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

// Rink geometry. NHL coordinates put center ice at (0,0), the goal
// lines at x = +/-89 and the blue lines at x = +/-25.
const (
	GoalX     = 89.0
	GoalY     = 0.0
	BlueLineX = 25.0
)

// Causal window bounds in seconds. These are behavioral contracts of
// the classifier and linker, not tuning knobs.
const (
	ReboundWindow       = 3.0  // prior shot by either team
	RushWindow          = 5.0  // prior same-team event in NZ/DZ
	RushEntryNZWindow   = 4.0  // NZ-to-OZ transition fast enough to call a rush
	PassRecipientWindow = 2.0  // same-team event by a different player
	InterceptionWindow  = 2.0  // opposing-team event after an incomplete pass
	PossessionWindow    = 3.0  // same-team event after a recovery
	AssistWindow        = 3.0  // recipient shot after a completed pass
	EntryShotWindow     = 10.0 // same-team shot after a controlled entry
	CycleGapWindow      = 4.0  // max gap between consecutive cycle passes
	EntryInferWindow    = 5.0  // preceding same-team NZ/DZ event
	FirstTouchWindow    = 3.0  // no prior same-team event => first possession
	PrecedingWindow     = 10.0 // generic preceding-event context
)

// Shot quality thresholds (feet / degrees).
const (
	ScoringChanceDistance = 25.0
	ScoringChanceAngle    = 30.0
	HighDangerDistance    = 15.0
	HighDangerAngle       = 15.0
)

// Expected-goals model constants.
const (
	XGDefault      = 0.05
	XGFloor        = 0.01
	XGCap          = 0.95
	XGRushBoost    = 1.2
	XGReboundBoost = 1.3
	XGPowerPlay    = 1.2
	XGShortHanded  = 0.7
)

// Puck Recovery Impact weights.
const (
	PRIZoneOffensive = 2.0
	PRIZoneNeutral   = 1.0
	PRIZoneDefensive = 0.5
	PRITakeaway      = 2.0
	PRIForecheck     = 1.5
	PRILoose         = 1.0
	PRIPossession    = 1.5
)

// Positional Disruption Index weights.
const (
	PDIInterception = 1.5
	PDIEntryDenial  = 2.0
	PDITakeaway     = 1.8
)

// ICE+ composite weights.
const (
	ICEWeightECR        = 1.5
	ICEWeightPRI        = 1.2
	ICEWeightPDI        = 1.0
	ICEWeightXGDeltaPSM = 2.0
)

// Sequence detection.
const (
	CycleMinPasses    = 3
	RushPlayMinEvents = 3
	RushPlayWindow    = 5.0
)

const (
	DefaultProcessWorkers = 4
)
