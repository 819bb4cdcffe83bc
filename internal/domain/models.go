package domain

import (
	"time"
)

// Zone is a third of the ice determined by x coordinate.
type Zone string

const (
	ZoneOffensive Zone = "OZ"
	ZoneNeutral   Zone = "NZ"
	ZoneDefensive Zone = "DZ"
)

// Situation is the on-ice strength for the acting team.
type Situation string

const (
	SituationEvenStrength Situation = "EV"
	SituationPowerPlay    Situation = "PP"
	SituationShortHanded  Situation = "SH"
)

type Team struct {
	ID           string    `json:"id"`
	TeamID       string    `json:"team_id"` // NHL team id
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Division     string    `json:"division,omitempty"`
	Conference   string    `json:"conference,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Player struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"` // NHL player id
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	TeamID    *string   `json:"team_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Game struct {
	GameID     string    `json:"game_id"`
	Season     string    `json:"season"`
	GameDate   time.Time `json:"game_date"`
	HomeTeamID *string   `json:"home_team_id,omitempty"`
	AwayTeamID *string   `json:"away_team_id,omitempty"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RawEvent is one play occurrence as ingested from the NHL play-by-play
// feed. Immutable after creation; ordered within a game by
// (period, time_elapsed, sort_order).
type RawEvent struct {
	ID          string
	GameID      string
	EventType   string // normalized, e.g. "shot-on-goal", "faceoff"
	ShotType    string // feed's shot type for shot events, "" otherwise
	Period      int
	TimeElapsed float64 // seconds into the period
	X           *float64
	Y           *float64
	PlayerID    *string
	TeamID      *string

	// Secondary participants, set only for the event types that carry
	// them in the feed.
	GoalieID          *string // shots and goals
	PrimaryAssistID   *string // goals
	SecondaryAssistID *string // goals
	FaceoffLoserID    *string // faceoffs
	BlockerID         *string // blocked shots

	Situation      Situation
	IsScoringPlay  bool
	IsPenalty      bool
	PenaltyMinutes int // 0 for non-penalty events
	SortOrder      int
	CreatedAt      time.Time
}

// ClassifiedShot is derived from a shot/goal family RawEvent.
// At most one per raw event.
type ClassifiedShot struct {
	ID                string
	EventID           string
	ShotType          string
	Distance          *float64 // feet to the goal at (89, 0)
	Angle             *float64 // degrees, 0 = straight on
	Goal              bool
	XG                float64
	ShooterID         *string
	GoalieID          *string
	PrimaryAssistID   *string
	SecondaryAssistID *string
	PrecedingEventID  *string
	ScoringChance     bool
	HighDanger        bool
	RushShot          bool
	ReboundShot       bool
	CreatedAt         time.Time
}

type ZoneEntry struct {
	ID             string
	EventID        string
	EntryType      string // "carry", "dump", "pass"
	Controlled     bool
	PlayerID       *string
	DefenderID     *string
	LeadToShot     bool
	LeadToShotTime *float64
	AttackSpeed    string // "RUSH" or "CONTROLLED"
	CreatedAt      time.Time
}

type ClassifiedPass struct {
	ID              string
	EventID         string
	PasserID        *string
	RecipientID     *string // nil implies incomplete
	PassType        string
	Zone            Zone
	Completed       bool
	Intercepted     bool
	InterceptedByID *string
	Distance        *float64
	AngleChange     *float64
	CreatedAt       time.Time
}

type PuckRecovery struct {
	ID               string
	EventID          string
	PlayerID         *string
	Zone             Zone
	RecoveryType     string // "loose", "forecheck", "takeaway"
	LeadToPossession bool
	PrecededByID     *string
	CreatedAt        time.Time
}

// PlayerGameMetrics is the per-(player, game) aggregate. Recomputed
// wholesale when a game is reprocessed, never patched incrementally.
type PlayerGameMetrics struct {
	ID            string    `json:"id"`
	PlayerID      string    `json:"player_id"`
	GameID        string    `json:"game_id"`
	TeamID        *string   `json:"team_id,omitempty"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	Shots         int       `json:"shots"`
	Hits          int       `json:"hits"`
	Blocks        int       `json:"blocks"`
	PIM           int       `json:"pim"`
	FaceoffsTaken int       `json:"faceoffs_taken"`
	FaceoffsWon   int       `json:"faceoffs_won"`
	ECR           float64   `json:"ecr"`
	PRI           float64   `json:"pri"`
	PDI           float64   `json:"pdi"`
	XGDeltaPSM    float64   `json:"xg_delta_psm"`
	TotalXG       float64   `json:"total_xg"`
	ICEPlus       float64   `json:"ice_plus"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TeamGameMetrics struct {
	ID                 string    `json:"id"`
	TeamID             string    `json:"team_id"`
	GameID             string    `json:"game_id"`
	Goals              int       `json:"goals"`
	Shots              int       `json:"shots"`
	Hits               int       `json:"hits"`
	Blocks             int       `json:"blocks"`
	PIM                int       `json:"pim"`
	FaceoffWins        int       `json:"faceoff_wins"`
	FaceoffLosses      int       `json:"faceoff_losses"`
	ECR                float64   `json:"ecr"`
	PRI                float64   `json:"pri"`
	PDI                float64   `json:"pdi"`
	TotalXG            float64   `json:"total_xg"`
	RushPlays          int       `json:"rush_plays"`
	Cycles             int       `json:"cycles"`
	ForecheckStyle     string    `json:"forecheck_style"`
	DefensiveStructure string    `json:"defensive_structure"`
	PPFormation        string    `json:"pp_formation"`
	PKFormation        string    `json:"pk_formation"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TeamSystemProfile carries the categorical system labels for one team
// in one game together with the signals they were derived from.
type TeamSystemProfile struct {
	TeamID                string
	GameID                string
	ForecheckStyle        string
	DefensiveStructure    string
	PPFormation           string
	PKFormation           string
	OZRecoveryRatio       float64
	AvgRecoveryDepth      float64
	BlockPct              float64
	ShotDispersion        float64
	HighDangerSuppression float64
}

// ShotMetrics is the shot-quality bundle for one scope.
type ShotMetrics struct {
	TotalShots         int     `json:"total_shots"`
	Goals              int     `json:"goals"`
	ShootingPercentage float64 `json:"shooting_percentage"`
	TotalXG            float64 `json:"total_xg"`
	AvgXG              float64 `json:"avg_xg"`
	XGPerformance      float64 `json:"xg_performance"`
}

// CountingStats accumulates the contextual counters fed directly by
// faceoff, hit, penalty and block events during classification.
type CountingStats struct {
	Goals         int
	Assists       int
	Shots         int
	Hits          int
	Blocks        int
	PIM           int
	FaceoffsTaken int
	FaceoffsWon   int
}
