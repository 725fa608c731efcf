// Package httpserver exposes the quiz over HTTP.
//
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /api/start-game, POST /api/submit-answer,
//     GET /api/session/{id}.
//
// The server owns session sizing: a pipeline that comes back short is
// topped up from the static fallback pool so every session starts with
// exactly the configured number of challenges.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/vocatinder/internal/exercise"
	"github.com/abhisek/vocatinder/internal/game"
)

// ChallengeGenerator produces quiz challenges. Satisfied by the
// exercise pipeline.
type ChallengeGenerator interface {
	Generate(ctx context.Context, count int, level exercise.Level) ([]exercise.Challenge, error)
}

// Config holds the server's behavior knobs.
type Config struct {
	// Rounds is the challenge count per session.
	Rounds int

	// ClientOrigin is the allowed CORS origin ("*" for any).
	ClientOrigin string
}

// Server bundles the router, the challenge pipeline, and the game
// state machine.
type Server struct {
	r         *chi.Mux
	generator ChallengeGenerator
	machine   *game.Machine
	cfg       Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(generator ChallengeGenerator, machine *game.Machine, cfg Config) *Server {
	if cfg.Rounds <= 0 {
		cfg.Rounds = 10
	}
	if cfg.ClientOrigin == "" {
		cfg.ClientOrigin = "*"
	}

	s := &Server{r: chi.NewRouter(), generator: generator, machine: machine, cfg: cfg}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.ClientOrigin))

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"vocatinder","endpoints":["/health","POST /api/start-game","POST /api/submit-answer","GET /api/session/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy","message":"French Gender Swipe API is running"}`))
	})

	s.r.Post("/api/start-game", s.handleStartGame)
	s.r.Post("/api/submit-answer", s.handleSubmitAnswer)
	s.r.Get("/api/session/{id}", s.handleSessionStatus)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("http server listening")
	return http.ListenAndServe(addr, s.r)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

type startGameReq struct {
	Level  string `json:"level"`
	Rounds int    `json:"rounds"`
}

type startGameRes struct {
	SessionID   string     `json:"session_id"`
	TotalRounds int        `json:"total_rounds"`
	Round       game.Round `json:"round"`
}

// handleStartGame generates a challenge list and opens a session. An
// empty or invalid body starts a default session: the frontend's first
// call carries no arguments.
func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	rounds := req.Rounds
	if rounds <= 0 || rounds > 50 {
		rounds = s.cfg.Rounds
	}
	level := exercise.ParseLevel(req.Level)

	challenges, err := s.generator.Generate(r.Context(), rounds, level)
	if err != nil {
		log.Warn().Err(err).Msg("challenge generation failed, using fallback pool")
		challenges = nil
	}
	challenges = exercise.TopUp(challenges, rounds)

	session, round, err := s.machine.StartSession(challenges)
	if err != nil {
		log.Error().Err(err).Msg("start session")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}

	writeJSON(w, http.StatusOK, startGameRes{
		SessionID:   session.ID,
		TotalRounds: rounds,
		Round:       round,
	})
}

type submitAnswerReq struct {
	RoundID    string `json:"round_id"`
	UserChoice string `json:"user_choice"`
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.UserChoice != game.ChoiceLeft && req.UserChoice != game.ChoiceRight {
		writeError(w, http.StatusBadRequest, "invalid_choice")
		return
	}

	fb, err := s.machine.SubmitAnswer(r.Context(), req.RoundID, req.UserChoice)
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session_not_found")
		return
	case errors.Is(err, game.ErrStaleRound):
		writeError(w, http.StatusConflict, "stale_round")
		return
	case err != nil:
		log.Error().Err(err).Str("round_id", req.RoundID).Msg("submit answer")
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	writeJSON(w, http.StatusOK, fb)
}

func (s *Server) handleSessionStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	status, err := s.machine.GetStatus(id)
	if errors.Is(err, game.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session_not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "status_failed")
		return
	}

	writeJSON(w, http.StatusOK, status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows the configured browser origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
