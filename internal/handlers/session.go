package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"wordingo/internal/engine"
	"wordingo/internal/models"
)

// SessionHandler exposes the game engine over HTTP. Each device plays
// against its own engine instance from the hub.
type SessionHandler struct {
	hub *EngineHub
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(hub *EngineHub) *SessionHandler {
	return &SessionHandler{hub: hub}
}

type startSessionRequest struct {
	GameTypes []string `json:"gameTypes"`
}

type sessionResponse struct {
	ID        int64             `json:"id"`
	Round     int               `json:"round"`
	Streak    int               `json:"streak"`
	Score     int               `json:"score"`
	StartedAt time.Time         `json:"startedAt"`
	Active    bool              `json:"active"`
	GameTypes []models.GameType `json:"gameTypes"`
}

func toSessionResponse(s *engine.Session) sessionResponse {
	return sessionResponse{
		ID:        s.ID,
		Round:     s.Round,
		Streak:    s.Streak,
		Score:     s.Score,
		StartedAt: s.StartedAt,
		Active:    s.Active,
		GameTypes: s.Types,
	}
}

// challengeResponse is the client's view of a challenge. The answer never
// leaves the server.
type challengeResponse struct {
	GameType   models.GameType `json:"gameType"`
	Question   string          `json:"question"`
	Options    []string        `json:"options,omitempty"`
	Difficulty int             `json:"difficulty"`
	Mode       string          `json:"mode,omitempty"`
	MaxGuesses int             `json:"maxGuesses,omitempty"`
	Clue       string          `json:"clue,omitempty"`
}

func toChallengeResponse(ch *engine.Challenge) challengeResponse {
	return challengeResponse{
		GameType:   ch.GameType,
		Question:   ch.Question,
		Options:    ch.Options,
		Difficulty: ch.Difficulty,
		Mode:       string(ch.Mode),
		MaxGuesses: ch.MaxGuesses,
		Clue:       ch.Clue,
	}
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type answerResponse struct {
	Correct       bool            `json:"correct"`
	CorrectAnswer string          `json:"correctAnswer"`
	Points        int             `json:"points"`
	TimeTakenMs   int64           `json:"timeTakenMs"`
	Session       sessionResponse `json:"session"`
}

// StartSession begins a new session for the device, optionally restricted
// to the requested game types
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if r.Body != nil {
		// An empty body means all game types
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	var resp sessionResponse
	err := h.hub.Do(deviceID(r), func(e *engine.Engine) error {
		session, err := e.StartNewSession(req.GameTypes)
		if err != nil {
			return err
		}
		resp = toSessionResponse(session)
		return nil
	})
	if err != nil {
		respondWithEngineError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}

// NextChallenge serves the next puzzle, or 204 when the session is over or
// no content is available
func (h *SessionHandler) NextChallenge(w http.ResponseWriter, r *http.Request) {
	var challenge *engine.Challenge
	err := h.hub.Do(deviceID(r), func(e *engine.Engine) error {
		var err error
		challenge, err = e.NextChallenge()
		return err
	})
	if err != nil {
		respondWithEngineError(w, err)
		return
	}
	if challenge == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondWithJSON(w, http.StatusOK, toChallengeResponse(challenge))
}

// SubmitAnswer grades the answer to the outstanding challenge
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	var resp answerResponse
	err := h.hub.Do(deviceID(r), func(e *engine.Engine) error {
		result, err := e.SubmitAnswer(req.Answer)
		if err != nil {
			return err
		}
		resp = answerResponse{
			Correct:       result.IsCorrect,
			CorrectAnswer: result.CorrectAnswer,
			Points:        result.Points,
			TimeTakenMs:   result.TimeTaken.Milliseconds(),
			Session:       toSessionResponse(e.CurrentSession()),
		}
		return nil
	})
	if err != nil {
		respondWithEngineError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// EndSession finishes the device's session early
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	err := h.hub.Do(deviceID(r), func(e *engine.Engine) error {
		return e.EndSession()
	})
	if err != nil {
		respondWithEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SessionSummary reports the stored results of any session, current or past
func (h *SessionHandler) SessionSummary(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid session id", err)
		return
	}

	var summary *engine.SessionSummary
	err = h.hub.Do(deviceID(r), func(e *engine.Engine) error {
		var err error
		summary, err = e.SessionSummary(sessionID)
		return err
	})
	if err != nil {
		respondWithEngineError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}
