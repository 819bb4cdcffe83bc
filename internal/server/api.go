package server

import (
	"encoding/json"
	"net/http"

	"puckpattern/internal/service"

	"github.com/rs/zerolog"
)

// APIServer exposes the ingest, processing and metrics operations over
// JSON HTTP.
type APIServer struct {
	ingestSvc    *service.IngestService
	processorSvc *service.ProcessorService
	metricsSvc   *service.MetricsService
	logger       zerolog.Logger
}

func NewAPIServer(ingestSvc *service.IngestService, processorSvc *service.ProcessorService, metricsSvc *service.MetricsService, logger zerolog.Logger) *APIServer {
	return &APIServer{
		ingestSvc:    ingestSvc,
		processorSvc: processorSvc,
		metricsSvc:   metricsSvc,
		logger:       logger,
	}
}

func (s *APIServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/health", s.handleHealth)

	mux.HandleFunc("POST /api/v1/sync/teams", s.handleSyncTeams)
	mux.HandleFunc("POST /api/v1/sync/rosters/{team}", s.handleSyncRoster)
	mux.HandleFunc("POST /api/v1/sync/schedule/{team}", s.handleSyncSchedule)

	mux.HandleFunc("GET /api/v1/teams", s.handleListTeams)
	mux.HandleFunc("GET /api/v1/games", s.handleListGames)
	mux.HandleFunc("GET /api/v1/games/{gameID}", s.handleGetGame)
	mux.HandleFunc("GET /api/v1/players/{playerID}", s.handleGetPlayer)

	mux.HandleFunc("POST /api/v1/games/{gameID}/ingest", s.handleIngestGame)
	mux.HandleFunc("POST /api/v1/games/{gameID}/process", s.handleProcessGame)
	mux.HandleFunc("POST /api/v1/games/process", s.handleProcessGames)

	mux.HandleFunc("GET /api/v1/games/{gameID}/metrics", s.handleGameMetrics)
	mux.HandleFunc("GET /api/v1/games/{gameID}/shots", s.handleGameShots)
	mux.HandleFunc("GET /api/v1/players/{playerID}/metrics", s.handlePlayerMetrics)
	mux.HandleFunc("GET /api/v1/teams/{teamID}/metrics", s.handleTeamMetrics)
}

func (s *APIServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *APIServer) handleSyncTeams(w http.ResponseWriter, r *http.Request) {
	count, err := s.ingestSvc.SyncTeams(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"teams": count})
}

func (s *APIServer) handleSyncRoster(w http.ResponseWriter, r *http.Request) {
	team := r.PathValue("team")
	season := r.URL.Query().Get("season")
	if season == "" {
		s.writeErrorMessage(w, http.StatusBadRequest, "season query parameter is required")
		return
	}

	count, err := s.ingestSvc.SyncRoster(r.Context(), team, season)
	if err != nil {
		s.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"players": count})
}

func (s *APIServer) handleSyncSchedule(w http.ResponseWriter, r *http.Request) {
	team := r.PathValue("team")
	season := r.URL.Query().Get("season")
	if season == "" {
		s.writeErrorMessage(w, http.StatusBadRequest, "season query parameter is required")
		return
	}

	count, err := s.ingestSvc.SyncSchedule(r.Context(), team, season)
	if err != nil {
		s.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"games": count})
}

func (s *APIServer) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.metricsSvc.ListTeams(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"teams": teams})
}

func (s *APIServer) handleListGames(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")
	if season == "" {
		s.writeErrorMessage(w, http.StatusBadRequest, "season query parameter is required")
		return
	}

	games, err := s.metricsSvc.ListGames(r.Context(), season)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": games})
}

func (s *APIServer) handleGetGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameID")

	game, err := s.metricsSvc.GetGame(r.Context(), gameID)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	if game == nil {
		s.writeErrorMessage(w, http.StatusNotFound, "game not found")
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (s *APIServer) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := r.PathValue("playerID")

	player, err := s.metricsSvc.GetPlayer(r.Context(), playerID)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	if player == nil {
		s.writeErrorMessage(w, http.StatusNotFound, "player not found")
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (s *APIServer) handleIngestGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameID")

	count, err := s.ingestSvc.IngestGame(r.Context(), gameID)
	if err != nil {
		s.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"game_id": gameID,
		"events":  count,
	})
}

func (s *APIServer) handleProcessGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameID")

	result, err := s.processorSvc.ProcessGame(r.Context(), gameID)
	if err != nil {
		s.writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type processGamesRequest struct {
	GameIDs []string `json:"game_ids"`
}

func (s *APIServer) handleProcessGames(w http.ResponseWriter, r *http.Request) {
	var req processGamesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.GameIDs) == 0 {
		s.writeErrorMessage(w, http.StatusBadRequest, "game_ids is required")
		return
	}

	results, err := s.processorSvc.ProcessGames(r.Context(), req.GameIDs)
	if err != nil {
		// Games that processed fine are still reported alongside the
		// joined failures.
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"results": results,
			"error":   err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *APIServer) handleGameMetrics(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameID")

	players, teams, err := s.metricsSvc.GetGameMetrics(r.Context(), gameID)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"game_id": gameID,
		"players": players,
		"teams":   teams,
	})
}

func (s *APIServer) handleGameShots(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameID")

	metrics, err := s.metricsSvc.GetGameShotMetrics(r.Context(), gameID)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (s *APIServer) handlePlayerMetrics(w http.ResponseWriter, r *http.Request) {
	playerID := r.PathValue("playerID")
	season := r.URL.Query().Get("season")

	summary, err := s.metricsSvc.GetPlayerSummary(r.Context(), playerID, season)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *APIServer) handleTeamMetrics(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("teamID")
	season := r.URL.Query().Get("season")

	summary, err := s.metricsSvc.GetTeamSummary(r.Context(), teamID, season)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *APIServer) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *APIServer) writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
