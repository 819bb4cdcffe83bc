package engine

import (
	"sort"

	"github.com/rs/zerolog"

	"puckpattern/internal/constants"
	"puckpattern/internal/domain"
)

// LinkResult carries the causal annotations that span multiple derived
// records: accumulated pass-shot xG deltas per passer and the per-team
// sequence counts.
type LinkResult struct {
	XGDeltaByPasser map[string]float64
	RushPlaysByTeam map[string]int
	CyclesByTeam    map[string]int
}

// Linker annotates already-classified events with causal links:
// pass-to-shot assists, entry-to-shot conversion, rush plays and
// offensive-zone cycles.
type Linker struct {
	events    []domain.RawEvent
	eventByID map[string]*domain.RawEvent
	logger    zerolog.Logger
}

func NewLinker(events []domain.RawEvent, logger zerolog.Logger) *Linker {
	byID := make(map[string]*domain.RawEvent, len(events))
	for i := range events {
		byID[events[i].ID] = &events[i]
	}
	return &Linker{events: events, eventByID: byID, logger: logger}
}

// Link mutates the derived records in place (assist attribution, entry
// conversion flags) and returns the accumulated link metrics.
func (l *Linker) Link(d *GameDerived) *LinkResult {
	res := &LinkResult{
		XGDeltaByPasser: map[string]float64{},
		RushPlaysByTeam: map[string]int{},
		CyclesByTeam:    map[string]int{},
	}

	l.linkPassShots(d, res)
	l.linkEntryShots(d)
	l.detectRushPlays(d, res)
	l.detectCycles(d, res)

	return res
}

// linkPassShots searches forward from each completed pass for a shot by
// the recipient. The pass-shot xG delta measures the value added by
// moving the puck to a better location; a goal with no assist yet gets
// the passer as primary assist.
func (l *Linker) linkPassShots(d *GameDerived, res *LinkResult) {
	for i := range d.Passes {
		p := &d.Passes[i]
		if !p.Completed || p.RecipientID == nil || p.PasserID == nil {
			continue
		}
		passEv := l.eventByID[p.EventID]
		if passEv == nil {
			continue
		}

		shot := l.findShotAfter(d, passEv, constants.AssistWindow, func(s *domain.ClassifiedShot) bool {
			return s.ShooterID != nil && *s.ShooterID == *p.RecipientID
		})
		if shot == nil {
			continue
		}

		hypothetical := 0.0
		if passEv.X != nil && passEv.Y != nil {
			dist, angle := ShotGeometry(passEv.X, passEv.Y)
			hypothetical = ExpectedGoals(dist, angle, "", false, false, domain.SituationEvenStrength)
		}
		delta := shot.XG - hypothetical
		if delta < 0 {
			delta = 0
		}
		res.XGDeltaByPasser[*p.PasserID] += delta

		if shot.Goal && shot.PrimaryAssistID == nil {
			shot.PrimaryAssistID = p.PasserID
			l.logger.Debug().
				Str("pass_event", p.EventID).
				Str("shot_event", shot.EventID).
				Msg("primary assist attributed from pass")
		}
	}
}

// linkEntryShots flags controlled entries followed by a same-team shot
// within the entry-shot window.
func (l *Linker) linkEntryShots(d *GameDerived) {
	for i := range d.Entries {
		e := &d.Entries[i]
		if !e.Controlled {
			continue
		}
		entryEv := l.eventByID[e.EventID]
		if entryEv == nil || entryEv.TeamID == nil {
			continue
		}

		shot := l.findShotAfter(d, entryEv, constants.EntryShotWindow, func(s *domain.ClassifiedShot) bool {
			shotEv := l.eventByID[s.EventID]
			return shotEv != nil && shotEv.TeamID != nil && *shotEv.TeamID == *entryEv.TeamID
		})
		if shot == nil {
			continue
		}

		shotEv := l.eventByID[shot.EventID]
		dt := shotEv.TimeElapsed - entryEv.TimeElapsed
		e.LeadToShot = true
		e.LeadToShotTime = &dt
	}
}

// findShotAfter returns the earliest shot strictly after the given
// event, in the same period and within window seconds, matching pred.
func (l *Linker) findShotAfter(d *GameDerived, after *domain.RawEvent, window float64, pred func(*domain.ClassifiedShot) bool) *domain.ClassifiedShot {
	var best *domain.ClassifiedShot
	var bestTime float64
	for i := range d.Shots {
		s := &d.Shots[i]
		ev := l.eventByID[s.EventID]
		if ev == nil || ev.Period != after.Period {
			continue
		}
		dt := ev.TimeElapsed - after.TimeElapsed
		if dt <= 0 || dt > window {
			continue
		}
		if !pred(s) {
			continue
		}
		if best == nil || ev.TimeElapsed < bestTime {
			best = s
			bestTime = ev.TimeElapsed
		}
	}
	return best
}

// detectRushPlays finds same-team runs of three or more events that
// progress from the defensive or neutral zone into the offensive zone
// within the rush window.
func (l *Linker) detectRushPlays(d *GameDerived, res *LinkResult) {
	for _, team := range d.Teams {
		var teamEvents []*domain.RawEvent
		for i := range l.events {
			ev := &l.events[i]
			if ev.TeamID != nil && *ev.TeamID == team {
				teamEvents = append(teamEvents, ev)
			}
		}

		span := constants.RushPlayMinEvents - 1
		for i := 0; i+span < len(teamEvents); {
			start := teamEvents[i]
			end := teamEvents[i+span]

			if start.Period != end.Period ||
				end.TimeElapsed-start.TimeElapsed > constants.RushPlayWindow {
				i++
				continue
			}

			startZone := ZoneFor(start.X)
			endZone := ZoneFor(end.X)
			if (startZone == domain.ZoneDefensive || startZone == domain.ZoneNeutral) &&
				endZone == domain.ZoneOffensive {
				res.RushPlaysByTeam[team]++
				i += constants.RushPlayMinEvents
				continue
			}
			i++
		}
	}
}

// detectCycles counts offensive-zone cycling: three or more consecutive
// completed passes by the same team, each within the cycle gap of the
// previous, in one period. Shorter runs are discarded.
func (l *Linker) detectCycles(d *GameDerived, res *LinkResult) {
	type timedPass struct {
		period int
		t      float64
	}

	byTeam := map[string][]timedPass{}
	for i := range d.Passes {
		p := &d.Passes[i]
		if !p.Completed || p.Zone != domain.ZoneOffensive {
			continue
		}
		ev := l.eventByID[p.EventID]
		if ev == nil || ev.TeamID == nil {
			continue
		}
		byTeam[*ev.TeamID] = append(byTeam[*ev.TeamID], timedPass{period: ev.Period, t: ev.TimeElapsed})
	}

	for team, passes := range byTeam {
		sort.Slice(passes, func(a, b int) bool {
			if passes[a].period != passes[b].period {
				return passes[a].period < passes[b].period
			}
			return passes[a].t < passes[b].t
		})

		run := 1
		for i := 1; i <= len(passes); i++ {
			if i < len(passes) &&
				passes[i].period == passes[i-1].period &&
				passes[i].t-passes[i-1].t <= constants.CycleGapWindow {
				run++
				continue
			}
			if run >= constants.CycleMinPasses {
				res.CyclesByTeam[team]++
			}
			run = 1
		}
	}
}
