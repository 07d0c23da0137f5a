package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"wordingo/internal/engine"
)

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil {
		log.Error().Err(err).Int("status", status).Msg(userMsg)
	}
	respondWithJSON(w, status, map[string]string{"error": userMsg})
}

// respondWithEngineError maps engine error types onto HTTP statuses:
// a misconfigured catalog is the client's request problem (422), calling
// an operation out of order is a conflict (409), anything else is a
// storage failure (500).
func respondWithEngineError(w http.ResponseWriter, err error) {
	var confErr *engine.ConfigurationError
	if errors.As(err, &confErr) {
		respondWithError(w, http.StatusUnprocessableEntity, confErr.Reason, nil)
		return
	}

	var stateErr *engine.InvalidStateError
	if errors.As(err, &stateErr) {
		respondWithError(w, http.StatusConflict, stateErr.Error(), nil)
		return
	}

	respondWithError(w, http.StatusInternalServerError, "internal error", err)
}
