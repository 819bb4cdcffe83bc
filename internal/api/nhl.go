package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"puckpattern/internal/config"

	"github.com/valyala/fasthttp"
)

// NHLClient talks to the public NHL APIs: api-web.nhle.com for
// play-by-play, rosters and schedules, api.nhle.com/stats for the team
// directory. No API key is required.
type NHLClient struct {
	webBaseURL   string
	statsBaseURL string
	client       *fasthttp.Client
}

func NewNHLClient(cfg *config.Config) *NHLClient {
	return &NHLClient{
		webBaseURL:   cfg.NHLWebAPIURL,
		statsBaseURL: cfg.NHLStatsAPIURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *NHLClient) GetPlayByPlay(ctx context.Context, gameID string) (*PlayByPlayResponse, error) {
	url := fmt.Sprintf("%s/v1/gamecenter/%s/play-by-play", c.webBaseURL, gameID)
	return doRequest[PlayByPlayResponse](ctx, c, url)
}

func (c *NHLClient) GetRoster(ctx context.Context, teamAbbrev, season string) (*RosterResponse, error) {
	url := fmt.Sprintf("%s/v1/roster/%s/%s", c.webBaseURL, teamAbbrev, season)
	return doRequest[RosterResponse](ctx, c, url)
}

func (c *NHLClient) GetSchedule(ctx context.Context, teamAbbrev, season string) (*ScheduleResponse, error) {
	url := fmt.Sprintf("%s/v1/club-schedule-season/%s/%s", c.webBaseURL, teamAbbrev, season)
	return doRequest[ScheduleResponse](ctx, c, url)
}

func (c *NHLClient) GetTeams(ctx context.Context) (*TeamsResponse, error) {
	url := fmt.Sprintf("%s/stats/rest/en/team", c.statsBaseURL)
	return doRequest[TeamsResponse](ctx, c, url)
}

func doRequest[T any](ctx context.Context, client *NHLClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("NHL API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type PlayByPlayResponse struct {
	ID        int64        `json:"id"`
	Season    int64        `json:"season"`
	GameType  int          `json:"gameType"`
	GameDate  string       `json:"gameDate"`
	GameState string       `json:"gameState"`
	HomeTeam  GameTeamInfo `json:"homeTeam"`
	AwayTeam  GameTeamInfo `json:"awayTeam"`
	Plays     []Play       `json:"plays"`
}

type GameTeamInfo struct {
	ID     int64  `json:"id"`
	Abbrev string `json:"abbrev"`
	Score  int    `json:"score"`
}

type Play struct {
	EventID          int64            `json:"eventId"`
	PeriodDescriptor PeriodDescriptor `json:"periodDescriptor"`
	TimeInPeriod     string           `json:"timeInPeriod"`
	TimeRemaining    string           `json:"timeRemaining"`
	SituationCode    string           `json:"situationCode"`
	TypeDescKey      string           `json:"typeDescKey"`
	SortOrder        int              `json:"sortOrder"`
	Details          PlayDetails      `json:"details"`
}

type PeriodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}

type PlayDetails struct {
	XCoord              *float64 `json:"xCoord"`
	YCoord              *float64 `json:"yCoord"`
	EventOwnerTeamID    *int64   `json:"eventOwnerTeamId"`
	ShotType            string   `json:"shotType"`
	ShootingPlayerID    *int64   `json:"shootingPlayerId"`
	GoalieInNetID       *int64   `json:"goalieInNetId"`
	ScoringPlayerID     *int64   `json:"scoringPlayerId"`
	Assist1PlayerID     *int64   `json:"assist1PlayerId"`
	Assist2PlayerID     *int64   `json:"assist2PlayerId"`
	WinningPlayerID     *int64   `json:"winningPlayerId"`
	LosingPlayerID      *int64   `json:"losingPlayerId"`
	HittingPlayerID     *int64   `json:"hittingPlayerId"`
	HitteePlayerID      *int64   `json:"hitteePlayerId"`
	BlockingPlayerID    *int64   `json:"blockingPlayerId"`
	CommittedByPlayerID *int64   `json:"committedByPlayerId"`
	PlayerID            *int64   `json:"playerId"`
	Duration            *int     `json:"duration"`
}

type RosterResponse struct {
	Forwards   []RosterPlayer `json:"forwards"`
	Defensemen []RosterPlayer `json:"defensemen"`
	Goalies    []RosterPlayer `json:"goalies"`
}

type RosterPlayer struct {
	ID           int64         `json:"id"`
	FirstName    LocalizedName `json:"firstName"`
	LastName     LocalizedName `json:"lastName"`
	PositionCode string        `json:"positionCode"`
}

type LocalizedName struct {
	Default string `json:"default"`
}

type ScheduleResponse struct {
	Games []ScheduledGame `json:"games"`
}

type ScheduledGame struct {
	ID        int64        `json:"id"`
	Season    int64        `json:"season"`
	GameType  int          `json:"gameType"`
	GameDate  string       `json:"gameDate"`
	GameState string       `json:"gameState"`
	HomeTeam  GameTeamInfo `json:"homeTeam"`
	AwayTeam  GameTeamInfo `json:"awayTeam"`
}

type TeamsResponse struct {
	Data []TeamRecord `json:"data"`
}

type TeamRecord struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	TriCode  string `json:"triCode"`
}
