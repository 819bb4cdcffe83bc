package engine

import (
	"strings"

	"github.com/rs/zerolog"

	"puckpattern/internal/constants"
	"puckpattern/internal/domain"
)

// GameDerived holds every derived record produced for one game, plus
// the contextual counters fed directly by faceoff/hit/penalty events.
// It is the working state of a single game's processing run and is
// discarded once aggregation completes.
type GameDerived struct {
	Shots      []domain.ClassifiedShot
	Entries    []domain.ZoneEntry
	Passes     []domain.ClassifiedPass
	Recoveries []domain.PuckRecovery

	PlayerCounting map[string]*domain.CountingStats
	TeamCounting   map[string]*domain.CountingStats

	// PlayerTeam maps a player id to the team they acted for in this
	// game, as observed from the raw events.
	PlayerTeam map[string]string
	Teams      []string
}

// Classifier turns one game's ordered raw events into specialized
// derived records. Events must be sorted by (period, time_elapsed,
// sort_order); the look-back and look-ahead rules assume it.
type Classifier struct {
	events  []domain.RawEvent
	skip    map[string]bool
	logger  zerolog.Logger
	derived *GameDerived
}

// NewClassifier builds a classifier over a game's ordered events.
// Event ids present in alreadyClassified are skipped so reruns are
// no-ops for them.
func NewClassifier(events []domain.RawEvent, alreadyClassified map[string]bool, logger zerolog.Logger) *Classifier {
	if alreadyClassified == nil {
		alreadyClassified = map[string]bool{}
	}
	return &Classifier{
		events: events,
		skip:   alreadyClassified,
		logger: logger,
		derived: &GameDerived{
			PlayerCounting: map[string]*domain.CountingStats{},
			TeamCounting:   map[string]*domain.CountingStats{},
			PlayerTeam:     map[string]string{},
		},
	}
}

var shotEventTypes = map[string]bool{
	"shot":         true,
	"shot-on-goal": true,
	"goal":         true,
	"missed-shot":  true,
	"blocked-shot": true,
}

// Classify walks the event sequence once. A malformed event is logged
// and skipped; it never aborts the rest of the game.
func (c *Classifier) Classify() *GameDerived {
	c.collectTeams()

	for i := range c.events {
		ev := &c.events[i]

		if ev.EventType == "" || ev.Period <= 0 {
			c.logger.Warn().
				Str("event_id", ev.ID).
				Str("game_id", ev.GameID).
				Str("event_type", ev.EventType).
				Int("period", ev.Period).
				Msg("malformed event, skipping")
			continue
		}

		eventType := strings.ToLower(ev.EventType)

		// Contextual counters are recomputed on every run; the
		// aggregates built from them are replaced wholesale.
		switch eventType {
		case "faceoff":
			c.countFaceoff(ev)
			continue
		case "hit":
			c.countHit(ev)
			continue
		case "penalty":
			c.countPenalty(ev)
			continue
		}
		if eventType == "blocked-shot" {
			c.countBlock(ev)
		}

		if c.skip[ev.ID] {
			continue
		}

		switch {
		case shotEventTypes[eventType]:
			c.classifyShot(i)
		case strings.Contains(eventType, "entry"):
			c.classifyEntry(i)
		case strings.Contains(eventType, "pass"):
			c.classifyPass(i)
		case eventType == "takeaway":
			c.classifyTakeaway(i)
		case eventType == "giveaway":
			c.classifyGiveaway(i)
		default:
			if c.isInferredEntry(i) {
				c.classifyEntry(i)
			} else if recipient := c.findPassRecipient(i); recipient != nil {
				c.classifyPass(i)
			}
		}
	}

	return c.derived
}

func (c *Classifier) collectTeams() {
	seen := map[string]bool{}
	for i := range c.events {
		ev := &c.events[i]
		if ev.TeamID != nil && !seen[*ev.TeamID] {
			seen[*ev.TeamID] = true
			c.derived.Teams = append(c.derived.Teams, *ev.TeamID)
		}
		if ev.PlayerID != nil && ev.TeamID != nil {
			c.derived.PlayerTeam[*ev.PlayerID] = *ev.TeamID
		}
	}
}

func (c *Classifier) otherTeam(teamID string) (string, bool) {
	if len(c.derived.Teams) != 2 {
		return "", false
	}
	if c.derived.Teams[0] == teamID {
		return c.derived.Teams[1], true
	}
	if c.derived.Teams[1] == teamID {
		return c.derived.Teams[0], true
	}
	return "", false
}

func (c *Classifier) playerStats(playerID string) *domain.CountingStats {
	s, ok := c.derived.PlayerCounting[playerID]
	if !ok {
		s = &domain.CountingStats{}
		c.derived.PlayerCounting[playerID] = s
	}
	return s
}

func (c *Classifier) teamStats(teamID string) *domain.CountingStats {
	s, ok := c.derived.TeamCounting[teamID]
	if !ok {
		s = &domain.CountingStats{}
		c.derived.TeamCounting[teamID] = s
	}
	return s
}

// lookBack returns the latest earlier event within window seconds in
// the same period that satisfies pred. Window bounds are inclusive.
func (c *Classifier) lookBack(i int, window float64, pred func(*domain.RawEvent) bool) *domain.RawEvent {
	ev := &c.events[i]
	for j := i - 1; j >= 0; j-- {
		prev := &c.events[j]
		if prev.Period != ev.Period {
			return nil
		}
		if ev.TimeElapsed-prev.TimeElapsed > window {
			return nil
		}
		if pred(prev) {
			return prev
		}
	}
	return nil
}

// lookAhead returns the earliest later event within window seconds in
// the same period that satisfies pred.
func (c *Classifier) lookAhead(i int, window float64, pred func(*domain.RawEvent) bool) *domain.RawEvent {
	ev := &c.events[i]
	for j := i + 1; j < len(c.events); j++ {
		next := &c.events[j]
		if next.Period != ev.Period {
			return nil
		}
		if next.TimeElapsed-ev.TimeElapsed > window {
			return nil
		}
		if pred(next) {
			return next
		}
	}
	return nil
}

func sameTeam(a, b *domain.RawEvent) bool {
	return a.TeamID != nil && b.TeamID != nil && *a.TeamID == *b.TeamID
}

func opposingTeam(a, b *domain.RawEvent) bool {
	return a.TeamID != nil && b.TeamID != nil && *a.TeamID != *b.TeamID
}

func (c *Classifier) classifyShot(i int) {
	ev := &c.events[i]

	distance, angle := ShotGeometry(ev.X, ev.Y)
	isGoal := strings.ToLower(ev.EventType) == "goal" || ev.IsScoringPlay

	rush := c.lookBack(i, constants.RushWindow, func(prev *domain.RawEvent) bool {
		if !sameTeam(prev, ev) {
			return false
		}
		z := ZoneFor(prev.X)
		return z == domain.ZoneNeutral || z == domain.ZoneDefensive
	}) != nil

	rebound := c.lookBack(i, constants.ReboundWindow, func(prev *domain.RawEvent) bool {
		return shotEventTypes[strings.ToLower(prev.EventType)]
	}) != nil

	shotType := ev.ShotType
	if shotType == "" {
		shotType = "wrist"
	}

	shot := domain.ClassifiedShot{
		EventID:           ev.ID,
		ShotType:          shotType,
		Distance:          distance,
		Angle:             angle,
		Goal:              isGoal,
		ShooterID:         ev.PlayerID,
		GoalieID:          ev.GoalieID,
		PrimaryAssistID:   ev.PrimaryAssistID,
		SecondaryAssistID: ev.SecondaryAssistID,
		ScoringChance:     isScoringChance(distance, angle),
		HighDanger:        isHighDanger(distance, angle),
		RushShot:          rush,
		ReboundShot:       rebound,
	}

	if prev := c.lookBack(i, constants.PrecedingWindow, func(*domain.RawEvent) bool { return true }); prev != nil {
		shot.PrecedingEventID = &prev.ID
	}

	shot.XG = ExpectedGoals(distance, angle, shot.ShotType, rush, rebound, ev.Situation)

	c.derived.Shots = append(c.derived.Shots, shot)
}

func isScoringChance(distance, angle *float64) bool {
	if distance == nil || angle == nil {
		return false
	}
	return *distance < constants.ScoringChanceDistance || *angle < constants.ScoringChanceAngle
}

func isHighDanger(distance, angle *float64) bool {
	if distance == nil || angle == nil {
		return false
	}
	return *distance < constants.HighDangerDistance || *angle < constants.HighDangerAngle
}

// isInferredEntry recognizes unlabeled zone entries: the event lands in
// the offensive zone and either the team was just in the neutral or
// defensive zone, or this is the team's first touch there.
func (c *Classifier) isInferredEntry(i int) bool {
	ev := &c.events[i]
	if ev.TeamID == nil || ZoneFor(ev.X) != domain.ZoneOffensive {
		return false
	}

	prevBehind := c.lookBack(i, constants.EntryInferWindow, func(prev *domain.RawEvent) bool {
		if !sameTeam(prev, ev) {
			return false
		}
		z := ZoneFor(prev.X)
		return z == domain.ZoneNeutral || z == domain.ZoneDefensive
	})
	if prevBehind != nil {
		return true
	}

	anyRecent := c.lookBack(i, constants.FirstTouchWindow, func(prev *domain.RawEvent) bool {
		return sameTeam(prev, ev)
	})
	return anyRecent == nil
}

func (c *Classifier) classifyEntry(i int) {
	ev := &c.events[i]

	entryType, controlled := entryStyle(ev.EventType)
	entry := domain.ZoneEntry{
		EventID:     ev.ID,
		EntryType:   entryType,
		Controlled:  controlled,
		PlayerID:    ev.PlayerID,
		AttackSpeed: c.entryAttackSpeed(i),
	}

	c.derived.Entries = append(c.derived.Entries, entry)
}

// entryStyle reads the entry mechanism off the event label. Dump-ins
// surrender possession; pass and carry entries keep it. Events with no
// hint are treated as carries.
func entryStyle(eventType string) (string, bool) {
	label := strings.ToLower(eventType)
	switch {
	case strings.Contains(label, "dump"):
		return "dump", false
	case strings.Contains(label, "pass"):
		return "pass", true
	default:
		return "carry", true
	}
}

func (c *Classifier) entryAttackSpeed(i int) string {
	ev := &c.events[i]
	fast := c.lookBack(i, constants.RushWindow, func(prev *domain.RawEvent) bool {
		if !sameTeam(prev, ev) {
			return false
		}
		switch ZoneFor(prev.X) {
		case domain.ZoneDefensive:
			return true
		case domain.ZoneNeutral:
			return ev.TimeElapsed-prev.TimeElapsed <= constants.RushEntryNZWindow
		}
		return false
	})
	if fast != nil {
		return "RUSH"
	}
	return "CONTROLLED"
}

// findPassRecipient infers the recipient of a pass as the player of the
// next same-team event by a different player within the recipient
// window. Returns nil when no candidate exists.
func (c *Classifier) findPassRecipient(i int) *string {
	ev := &c.events[i]
	if ev.TeamID == nil || ev.PlayerID == nil {
		return nil
	}
	next := c.lookAhead(i, constants.PassRecipientWindow, func(n *domain.RawEvent) bool {
		return sameTeam(n, ev) && n.PlayerID != nil && *n.PlayerID != *ev.PlayerID
	})
	if next == nil {
		return nil
	}
	return next.PlayerID
}

func (c *Classifier) classifyPass(i int) {
	ev := &c.events[i]

	recipient := c.findPassRecipient(i)

	p := domain.ClassifiedPass{
		EventID:     ev.ID,
		PasserID:    ev.PlayerID,
		RecipientID: recipient,
		PassType:    "direct",
		Zone:        ZoneFor(ev.X),
		Completed:   recipient != nil,
	}

	if !p.Completed {
		interceptor := c.lookAhead(i, constants.InterceptionWindow, func(n *domain.RawEvent) bool {
			return opposingTeam(n, ev) && n.PlayerID != nil
		})
		if interceptor != nil {
			p.Intercepted = true
			p.InterceptedByID = interceptor.PlayerID
		}
	}

	c.derived.Passes = append(c.derived.Passes, p)
}

func (c *Classifier) classifyTakeaway(i int) {
	ev := &c.events[i]

	possession := c.lookAhead(i, constants.PossessionWindow, func(n *domain.RawEvent) bool {
		return sameTeam(n, ev)
	}) != nil

	rec := domain.PuckRecovery{
		EventID:          ev.ID,
		PlayerID:         ev.PlayerID,
		Zone:             ZoneFor(ev.X),
		RecoveryType:     "takeaway",
		LeadToPossession: possession,
	}
	if prev := c.lookBack(i, constants.PossessionWindow, func(*domain.RawEvent) bool { return true }); prev != nil {
		rec.PrecededByID = &prev.ID
	}

	c.derived.Recoveries = append(c.derived.Recoveries, rec)
}

// classifyGiveaway credits a recovery to the opposing player who takes
// the puck within the possession window. A giveaway nobody picks up
// produces no record.
func (c *Classifier) classifyGiveaway(i int) {
	ev := &c.events[i]
	if ev.TeamID == nil {
		return
	}

	touch := c.lookAhead(i, constants.PossessionWindow, func(n *domain.RawEvent) bool {
		return opposingTeam(n, ev) && n.PlayerID != nil
	})
	if touch == nil {
		return
	}

	zone := ZoneFor(touch.X)
	recoveryType := "loose"
	if zone == domain.ZoneOffensive {
		recoveryType = "forecheck"
	}

	rec := domain.PuckRecovery{
		EventID:          ev.ID,
		PlayerID:         touch.PlayerID,
		Zone:             zone,
		RecoveryType:     recoveryType,
		LeadToPossession: true,
		PrecededByID:     &ev.ID,
	}

	c.derived.Recoveries = append(c.derived.Recoveries, rec)
}

func (c *Classifier) countFaceoff(ev *domain.RawEvent) {
	// The feed attributes the faceoff to the winner.
	if ev.PlayerID != nil {
		s := c.playerStats(*ev.PlayerID)
		s.FaceoffsTaken++
		s.FaceoffsWon++
	}
	if ev.FaceoffLoserID != nil {
		c.playerStats(*ev.FaceoffLoserID).FaceoffsTaken++
	}
	if ev.TeamID != nil {
		ts := c.teamStats(*ev.TeamID)
		ts.FaceoffsTaken++
		ts.FaceoffsWon++
		if other, ok := c.otherTeam(*ev.TeamID); ok {
			c.teamStats(other).FaceoffsTaken++
		}
	}
}

func (c *Classifier) countHit(ev *domain.RawEvent) {
	if ev.PlayerID != nil {
		c.playerStats(*ev.PlayerID).Hits++
	}
	if ev.TeamID != nil {
		c.teamStats(*ev.TeamID).Hits++
	}
}

func (c *Classifier) countPenalty(ev *domain.RawEvent) {
	minutes := ev.PenaltyMinutes
	if minutes <= 0 {
		// Unknown duration counts as a minor.
		minutes = 2
	}
	if ev.PlayerID != nil {
		c.playerStats(*ev.PlayerID).PIM += minutes
	}
	if ev.TeamID != nil {
		c.teamStats(*ev.TeamID).PIM += minutes
	}
}

func (c *Classifier) countBlock(ev *domain.RawEvent) {
	// Blocked-shot events are owned by the shooting team; the block
	// belongs to the opponent.
	if ev.BlockerID != nil {
		c.playerStats(*ev.BlockerID).Blocks++
	}
	if ev.TeamID == nil {
		return
	}
	if other, ok := c.otherTeam(*ev.TeamID); ok {
		c.teamStats(other).Blocks++
	}
}
