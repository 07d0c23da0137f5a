package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"wordingo/internal/config"
	"wordingo/internal/repository"
)

// NewRouter wires the API routes. All session and stats endpoints require
// a device token; registration and health do not.
func NewRouter(cfg *config.Config, store *repository.Store) http.Handler {
	hub := NewEngineHub(store)
	secret := []byte(cfg.TokenSecret)

	device := NewDeviceHandler(secret, cfg.TokenDuration)
	session := NewSessionHandler(hub)
	stats := NewStatsHandler(store.Stats)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/device", device.RegisterDevice)

		r.Group(func(r chi.Router) {
			r.Use(RequireDevice(secret))

			r.Post("/session", session.StartSession)
			r.Post("/session/next", session.NextChallenge)
			r.Post("/session/answer", session.SubmitAnswer)
			r.Post("/session/end", session.EndSession)
			r.Get("/session/{id}/summary", session.SessionSummary)

			r.Get("/stats", stats.GetStats)
		})
	})

	return r
}
