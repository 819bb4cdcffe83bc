package engine

import (
	"math"

	"puckpattern/internal/constants"
	"puckpattern/internal/domain"
)

// EntryConversionRate is the fraction of controlled entries that led to
// a shot. Zero controlled entries yields 0, not an error.
func EntryConversionRate(entries []domain.ZoneEntry) float64 {
	controlled := 0
	converted := 0
	for i := range entries {
		if !entries[i].Controlled {
			continue
		}
		controlled++
		if entries[i].LeadToShot {
			converted++
		}
	}
	if controlled == 0 {
		return 0.0
	}
	return float64(converted) / float64(controlled)
}

// RecoveryImpact is the PRI sum: zone weight times type weight times
// outcome weight per recovery. Unbounded, not a percentage.
func RecoveryImpact(recoveries []domain.PuckRecovery) float64 {
	total := 0.0
	for i := range recoveries {
		r := &recoveries[i]

		zoneWeight := constants.PRIZoneNeutral
		switch r.Zone {
		case domain.ZoneOffensive:
			zoneWeight = constants.PRIZoneOffensive
		case domain.ZoneDefensive:
			zoneWeight = constants.PRIZoneDefensive
		}

		typeWeight := constants.PRILoose
		switch r.RecoveryType {
		case "takeaway":
			typeWeight = constants.PRITakeaway
		case "forecheck":
			typeWeight = constants.PRIForecheck
		}

		outcomeWeight := 1.0
		if r.LeadToPossession {
			outcomeWeight = constants.PRIPossession
		}

		total += zoneWeight * typeWeight * outcomeWeight
	}
	return total
}

// DisruptionIndex is the PDI weighted sum. Entry denials require known
// defender attribution; callers pass 0 when team context is ambiguous
// rather than guessing.
func DisruptionIndex(interceptions, entriesDenied, takeaways int) float64 {
	return constants.PDIInterception*float64(interceptions) +
		constants.PDIEntryDenial*float64(entriesDenied) +
		constants.PDITakeaway*float64(takeaways)
}

// ComputeShotMetrics returns the shot-quality bundle for a scope. An
// empty shot set yields the zero bundle, never NaN.
func ComputeShotMetrics(shots []domain.ClassifiedShot) domain.ShotMetrics {
	m := domain.ShotMetrics{TotalShots: len(shots)}
	if m.TotalShots == 0 {
		return m
	}
	for i := range shots {
		if shots[i].Goal {
			m.Goals++
		}
		m.TotalXG += shots[i].XG
	}
	m.ShootingPercentage = float64(m.Goals) / float64(m.TotalShots) * 100
	m.AvgXG = m.TotalXG / float64(m.TotalShots)
	m.XGPerformance = float64(m.Goals) - m.TotalXG
	return m
}

// GameAggregation is the wholesale output of aggregating one game.
type GameAggregation struct {
	Players  []domain.PlayerGameMetrics
	Teams    []domain.TeamGameMetrics
	Profiles []domain.TeamSystemProfile
}

// AggregateGame recomputes every per-player and per-team aggregate for
// one game from its classified and linked events. The result replaces
// any previous aggregate for the game.
func AggregateGame(gameID string, events []domain.RawEvent, d *GameDerived, links *LinkResult) *GameAggregation {
	eventByID := make(map[string]*domain.RawEvent, len(events))
	for i := range events {
		eventByID[events[i].ID] = &events[i]
	}

	agg := &GameAggregation{}

	for playerID := range playerScope(d) {
		agg.Players = append(agg.Players, aggregatePlayer(gameID, playerID, d, links))
	}

	for _, teamID := range d.Teams {
		team, profile := aggregateTeam(gameID, teamID, events, eventByID, d, links)
		agg.Teams = append(agg.Teams, team)
		agg.Profiles = append(agg.Profiles, profile)
	}

	return agg
}

func playerScope(d *GameDerived) map[string]bool {
	players := map[string]bool{}
	for i := range d.Shots {
		addRef(players, d.Shots[i].ShooterID)
		addRef(players, d.Shots[i].PrimaryAssistID)
		addRef(players, d.Shots[i].SecondaryAssistID)
	}
	for i := range d.Entries {
		addRef(players, d.Entries[i].PlayerID)
	}
	for i := range d.Passes {
		addRef(players, d.Passes[i].PasserID)
		addRef(players, d.Passes[i].InterceptedByID)
	}
	for i := range d.Recoveries {
		addRef(players, d.Recoveries[i].PlayerID)
	}
	for playerID := range d.PlayerCounting {
		players[playerID] = true
	}
	return players
}

func addRef(set map[string]bool, id *string) {
	if id != nil {
		set[*id] = true
	}
}

func aggregatePlayer(gameID, playerID string, d *GameDerived, links *LinkResult) domain.PlayerGameMetrics {
	m := domain.PlayerGameMetrics{
		GameID:   gameID,
		PlayerID: playerID,
	}
	if team, ok := d.PlayerTeam[playerID]; ok {
		m.TeamID = &team
	}

	var shots []domain.ClassifiedShot
	for i := range d.Shots {
		s := &d.Shots[i]
		if s.ShooterID != nil && *s.ShooterID == playerID {
			shots = append(shots, *s)
		}
		if s.Goal && refEquals(s.PrimaryAssistID, playerID) {
			m.Assists++
		}
		if s.Goal && refEquals(s.SecondaryAssistID, playerID) {
			m.Assists++
		}
	}

	var entries []domain.ZoneEntry
	entriesDenied := 0
	for i := range d.Entries {
		e := &d.Entries[i]
		if refEquals(e.PlayerID, playerID) {
			entries = append(entries, *e)
		}
		if refEquals(e.DefenderID, playerID) {
			entriesDenied++
		}
	}

	interceptions := 0
	for i := range d.Passes {
		if refEquals(d.Passes[i].InterceptedByID, playerID) {
			interceptions++
		}
	}

	var recoveries []domain.PuckRecovery
	takeaways := 0
	for i := range d.Recoveries {
		r := &d.Recoveries[i]
		if refEquals(r.PlayerID, playerID) {
			recoveries = append(recoveries, *r)
			if r.RecoveryType == "takeaway" {
				takeaways++
			}
		}
	}

	shotMetrics := ComputeShotMetrics(shots)
	m.Shots = shotMetrics.TotalShots
	m.Goals = shotMetrics.Goals
	m.TotalXG = shotMetrics.TotalXG

	if counting, ok := d.PlayerCounting[playerID]; ok {
		m.Hits = counting.Hits
		m.Blocks = counting.Blocks
		m.PIM = counting.PIM
		m.FaceoffsTaken = counting.FaceoffsTaken
		m.FaceoffsWon = counting.FaceoffsWon
	}

	m.ECR = EntryConversionRate(entries)
	m.PRI = RecoveryImpact(recoveries)
	m.PDI = DisruptionIndex(interceptions, entriesDenied, takeaways)
	m.XGDeltaPSM = links.XGDeltaByPasser[playerID]
	m.ICEPlus = ICEPlus(m.ECR, m.PRI, m.PDI, m.XGDeltaPSM)

	return m
}

func refEquals(id *string, want string) bool {
	return id != nil && *id == want
}

func aggregateTeam(gameID, teamID string, events []domain.RawEvent, eventByID map[string]*domain.RawEvent, d *GameDerived, links *LinkResult) (domain.TeamGameMetrics, domain.TeamSystemProfile) {
	m := domain.TeamGameMetrics{
		GameID: gameID,
		TeamID: teamID,
	}

	var teamShots, shotsAgainst []domain.ClassifiedShot
	for i := range d.Shots {
		s := &d.Shots[i]
		ev := eventByID[s.EventID]
		if ev == nil || ev.TeamID == nil {
			continue
		}
		if *ev.TeamID == teamID {
			teamShots = append(teamShots, *s)
		} else {
			shotsAgainst = append(shotsAgainst, *s)
		}
	}

	var entries []domain.ZoneEntry
	for i := range d.Entries {
		ev := eventByID[d.Entries[i].EventID]
		if ev != nil && ev.TeamID != nil && *ev.TeamID == teamID {
			entries = append(entries, d.Entries[i])
		}
	}

	var recoveries []domain.PuckRecovery
	takeaways := 0
	for i := range d.Recoveries {
		r := &d.Recoveries[i]
		if r.PlayerID == nil {
			continue
		}
		if d.PlayerTeam[*r.PlayerID] != teamID {
			continue
		}
		recoveries = append(recoveries, *r)
		if r.RecoveryType == "takeaway" {
			takeaways++
		}
	}

	interceptions := 0
	for i := range d.Passes {
		p := &d.Passes[i]
		if p.InterceptedByID != nil && d.PlayerTeam[*p.InterceptedByID] == teamID {
			interceptions++
		}
	}

	shotMetrics := ComputeShotMetrics(teamShots)
	m.Shots = shotMetrics.TotalShots
	m.Goals = shotMetrics.Goals
	m.TotalXG = shotMetrics.TotalXG

	if counting, ok := d.TeamCounting[teamID]; ok {
		m.Hits = counting.Hits
		m.Blocks = counting.Blocks
		m.PIM = counting.PIM
		m.FaceoffWins = counting.FaceoffsWon
		m.FaceoffLosses = counting.FaceoffsTaken - counting.FaceoffsWon
	}

	m.ECR = EntryConversionRate(entries)
	m.PRI = RecoveryImpact(recoveries)
	m.PDI = DisruptionIndex(interceptions, 0, takeaways)
	m.RushPlays = links.RushPlaysByTeam[teamID]
	m.Cycles = links.CyclesByTeam[teamID]

	profile := detectSystems(gameID, teamID, events, eventByID, d, recoveries, shotsAgainst)
	m.ForecheckStyle = profile.ForecheckStyle
	m.DefensiveStructure = profile.DefensiveStructure
	m.PPFormation = profile.PPFormation
	m.PKFormation = profile.PKFormation

	return m, profile
}

// System detection thresholds. Categorical labels only; the underlying
// signals are kept on the profile so callers can inspect the inputs.
const (
	forecheckAggressiveOZRatio = 0.40
	forecheckAggressiveDepth   = 10.0
	forecheckForecheckRatio    = 0.50
	forecheckPassiveOZRatio    = 0.15
	forecheckPassiveDepth      = -5.0

	structureCollapseBlockPct   = 0.30
	structureCollapseSuppress   = 0.70
	structureAggressiveBlockPct = 0.10
	structureAggressiveSpread   = 25.0
	structureManOnManSpread     = 12.0
	structureZoneSuppress       = 0.80

	formationMinSample = 3

	ppUmbrellaDepthX  = 55.0
	ppUmbrellaSpreadY = 12.0
	ppOverloadMeanY   = 10.0
	ppSpreadSpreadY   = 18.0
	ppSpreadSpreadX   = 12.0
	ppDiamondSpreadX  = 15.0

	pkDiamondSpreadX  = 12.0
	pkDiamondSpreadY  = 8.0
	pkWedgeSpreadY    = 12.0
	pkWedgeSpreadX    = 8.0
	pkTriangleDepthX  = -60.0
)

func detectSystems(gameID, teamID string, events []domain.RawEvent, eventByID map[string]*domain.RawEvent, d *GameDerived, recoveries []domain.PuckRecovery, shotsAgainst []domain.ClassifiedShot) domain.TeamSystemProfile {
	profile := domain.TeamSystemProfile{
		GameID: gameID,
		TeamID: teamID,
	}

	profile.ForecheckStyle, profile.OZRecoveryRatio, profile.AvgRecoveryDepth =
		detectForecheckStyle(recoveries, eventByID)
	profile.DefensiveStructure, profile.BlockPct, profile.ShotDispersion, profile.HighDangerSuppression =
		detectDefensiveStructure(teamID, eventByID, d, shotsAgainst)
	profile.PPFormation = detectPPFormation(teamID, eventByID, d)
	profile.PKFormation = detectPKFormation(teamID, events)

	return profile
}

func detectForecheckStyle(recoveries []domain.PuckRecovery, eventByID map[string]*domain.RawEvent) (string, float64, float64) {
	if len(recoveries) == 0 {
		return "STANDARD", 0, 0
	}

	ozCount := 0
	forecheckCount := 0
	depthSum := 0.0
	depthN := 0
	for i := range recoveries {
		r := &recoveries[i]
		if r.Zone == domain.ZoneOffensive {
			ozCount++
		}
		if r.RecoveryType == "forecheck" {
			forecheckCount++
		}
		if ev := eventByID[r.EventID]; ev != nil && ev.X != nil {
			depthSum += *ev.X
			depthN++
		}
	}

	ozRatio := float64(ozCount) / float64(len(recoveries))
	forecheckRatio := float64(forecheckCount) / float64(len(recoveries))
	avgDepth := 0.0
	if depthN > 0 {
		avgDepth = depthSum / float64(depthN)
	}

	switch {
	case ozRatio > forecheckAggressiveOZRatio,
		forecheckRatio > forecheckForecheckRatio && avgDepth > forecheckAggressiveDepth:
		return "AGGRESSIVE", ozRatio, avgDepth
	case ozRatio < forecheckPassiveOZRatio && avgDepth < forecheckPassiveDepth:
		return "PASSIVE", ozRatio, avgDepth
	default:
		return "STANDARD", ozRatio, avgDepth
	}
}

func detectDefensiveStructure(teamID string, eventByID map[string]*domain.RawEvent, d *GameDerived, shotsAgainst []domain.ClassifiedShot) (string, float64, float64, float64) {
	if len(shotsAgainst) == 0 {
		return "HYBRID", 0, 0, 0
	}

	blocks := 0
	if counting, ok := d.TeamCounting[teamID]; ok {
		blocks = counting.Blocks
	}
	blockPct := float64(blocks) / float64(len(shotsAgainst))

	dispersion := shotDispersion(shotsAgainst, eventByID)

	highDanger := 0
	for i := range shotsAgainst {
		if shotsAgainst[i].HighDanger {
			highDanger++
		}
	}
	suppression := 1.0 - float64(highDanger)/float64(len(shotsAgainst))

	switch {
	case blockPct >= structureCollapseBlockPct && suppression >= structureCollapseSuppress:
		return "COLLAPSE", blockPct, dispersion, suppression
	case blockPct < structureAggressiveBlockPct && dispersion >= structureAggressiveSpread:
		return "AGGRESSIVE", blockPct, dispersion, suppression
	case dispersion < structureManOnManSpread:
		return "MAN_ON_MAN", blockPct, dispersion, suppression
	case suppression >= structureZoneSuppress:
		return "ZONE", blockPct, dispersion, suppression
	default:
		return "HYBRID", blockPct, dispersion, suppression
	}
}

// shotDispersion is the mean of the x and y standard deviations of the
// shots' locations. Wide dispersion reads as shots allowed from
// everywhere; tight dispersion as shots funneled to one area.
func shotDispersion(shots []domain.ClassifiedShot, eventByID map[string]*domain.RawEvent) float64 {
	var xs, ys []float64
	for i := range shots {
		ev := eventByID[shots[i].EventID]
		if ev == nil || ev.X == nil || ev.Y == nil {
			continue
		}
		xs = append(xs, *ev.X)
		ys = append(ys, *ev.Y)
	}
	if len(xs) < 2 {
		return 0
	}
	return (stddev(xs) + stddev(ys)) / 2
}

func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

func detectPPFormation(teamID string, eventByID map[string]*domain.RawEvent, d *GameDerived) string {
	var xs, ys []float64

	collect := func(eventID string) {
		ev := eventByID[eventID]
		if ev == nil || ev.TeamID == nil || *ev.TeamID != teamID {
			return
		}
		if ev.Situation != domain.SituationPowerPlay || ev.X == nil || ev.Y == nil {
			return
		}
		if ZoneFor(ev.X) != domain.ZoneOffensive {
			return
		}
		xs = append(xs, *ev.X)
		ys = append(ys, *ev.Y)
	}

	for i := range d.Shots {
		collect(d.Shots[i].EventID)
	}
	for i := range d.Passes {
		if d.Passes[i].Completed {
			collect(d.Passes[i].EventID)
		}
	}

	if len(xs) < formationMinSample {
		return "1-3-1"
	}

	meanX := mean(xs)
	meanY := mean(ys)
	spreadX := stddev(xs)
	spreadY := stddev(ys)

	switch {
	case meanX < ppUmbrellaDepthX && spreadY > ppUmbrellaSpreadY:
		return "UMBRELLA"
	case math.Abs(meanY) > ppOverloadMeanY:
		return "OVERLOAD"
	case spreadY > ppSpreadSpreadY && spreadX > ppSpreadSpreadX:
		return "SPREAD"
	case spreadX > ppDiamondSpreadX:
		return "DIAMOND+1"
	default:
		return "1-3-1"
	}
}

func detectPKFormation(teamID string, events []domain.RawEvent) string {
	var xs, ys []float64
	for i := range events {
		ev := &events[i]
		if ev.TeamID == nil || *ev.TeamID != teamID {
			continue
		}
		if ev.Situation != domain.SituationShortHanded || ev.X == nil || ev.Y == nil {
			continue
		}
		xs = append(xs, *ev.X)
		ys = append(ys, *ev.Y)
	}

	if len(xs) < formationMinSample {
		return "BOX"
	}

	meanX := mean(xs)
	spreadX := stddev(xs)
	spreadY := stddev(ys)

	switch {
	case spreadX > pkDiamondSpreadX && spreadY <= pkDiamondSpreadY:
		return "DIAMOND"
	case spreadY > pkWedgeSpreadY && spreadX <= pkWedgeSpreadX:
		return "WEDGE+1"
	case meanX < pkTriangleDepthX:
		return "PASSIVE_TRIANGLE"
	default:
		return "BOX"
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
